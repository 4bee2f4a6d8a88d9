package imgvalid_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgvalid/imgvalid"
	"github.com/imgvalid/imgvalid/imagemeta"
	"github.com/imgvalid/imgvalid/registry"
	"github.com/imgvalid/imgvalid/rule"
	"github.com/imgvalid/imgvalid/schema"
)

func testSchema() *schema.Schema {
	s := schema.New()
	s.AddField("myapp", "Profile", "avatar")
	s.AddField("myapp", "Article", "cover")
	return s
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("builds eagerly and validates uploads", func(t *testing.T) {
		reg, err := imgvalid.Init(registry.Config{
			{Key: "myapp.models", Rules: map[string]any{
				"FORMAT": []any{"jpeg", "png"},
			}},
			{Key: "myapp.models.Profile.avatar", Rules: map[string]any{
				"FORMAT":     "jpeg",
				"DIMENSIONS": map[string]any{"w": map[string]any{"lte": 1000}},
			}},
		}, testSchema())
		require.NoError(t, err)

		meta, err := imagemeta.DecodeBytes(encodePNG(t, 400, 300))
		require.NoError(t, err)

		// The avatar field was overridden to jpeg-only.
		err = reg.Validate(schema.Field{App: "myapp", Model: "Profile", Name: "avatar"}, meta)
		vs := rule.AsViolations(err)
		require.Len(t, vs, 1)
		assert.Equal(t, rule.Format, vs[0].Rule)

		// Other fields still accept png.
		assert.NoError(t, reg.Validate(schema.Field{App: "myapp", Model: "Article", Name: "cover"}, meta))
	})

	t.Run("configuration problems fail init", func(t *testing.T) {
		_, err := imgvalid.Init(registry.Config{
			{Key: "myapp.models", Rules: map[string]any{
				"SIZE": map[string]any{"eq": 100, "gt": 50},
			}},
		}, testSchema())
		assert.ErrorIs(t, err, rule.ErrConflictingOperators)
	})
}

func TestInitFromEnv(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	doc := "myapp.models:\n  DIMENSIONS:\n    w: {lte: 500}\n"
	require.NoError(t, os.WriteFile(rulesFile, []byte(doc), 0o600))

	t.Setenv("IMGVALID_RULES_FILE", rulesFile)
	t.Setenv("IMGVALID_LOG_LEVEL", "error")

	reg, err := imgvalid.InitFromEnv(testSchema())
	require.NoError(t, err)

	meta, err := imagemeta.DecodeBytes(encodePNG(t, 600, 100))
	require.NoError(t, err)

	err = reg.Validate(schema.Field{App: "myapp", Model: "Profile", Name: "avatar"}, meta)
	vs := rule.AsViolations(err)
	require.Len(t, vs, 1)
	assert.Contains(t, vs[0].Message, "Width less than or equal to 500px")
}

func TestInitFromEnvMissingRules(t *testing.T) {
	t.Setenv("IMGVALID_RULES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := imgvalid.InitFromEnv(testSchema())
	assert.Error(t, err)
}
