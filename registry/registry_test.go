package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgvalid/imgvalid/imagemeta"
	"github.com/imgvalid/imgvalid/registry"
	"github.com/imgvalid/imgvalid/rule"
	"github.com/imgvalid/imgvalid/schema"
)

func testSchema() *schema.Schema {
	s := schema.New()
	s.AddField("a", "M", "img")
	s.AddField("a", "M", "thumb")
	s.AddField("a", "N", "photo")
	return s
}

func field(model, name string) schema.Field {
	return schema.Field{App: "a", Model: model, Name: name}
}

func meta(sizeKB, width, height int, format string) imagemeta.Meta {
	return imagemeta.Meta{
		Size:   int64(sizeKB) * 1024,
		Width:  width,
		Height: height,
		Format: format,
	}
}

func TestRegistryValidate(t *testing.T) {
	t.Parallel()

	t.Run("app-wide size rule applies to every field", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{"SIZE": 100}},
		}, testSchema())

		for _, f := range []schema.Field{field("M", "img"), field("M", "thumb"), field("N", "photo")} {
			assert.NoError(t, reg.Validate(f, meta(100, 10, 10, "jpeg")), f.String())

			err := reg.Validate(f, meta(101, 10, 10, "jpeg"))
			vs := rule.AsViolations(err)
			require.Len(t, vs, 1, f.String())
			assert.Equal(t, rule.Size, vs[0].Rule)
			assert.Contains(t, vs[0].Message, "SIZE")
			assert.Contains(t, vs[0].Message, "100")
		}
	})

	t.Run("field override wins over app-wide rule", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{"FORMAT": []any{"jpeg", "png"}}},
			{Key: "a.models.M.img", Rules: map[string]any{"FORMAT": "jpeg"}},
		}, testSchema())

		// The overridden field accepts only jpeg.
		err := reg.Validate(field("M", "img"), meta(1, 10, 10, "png"))
		vs := rule.AsViolations(err)
		require.Len(t, vs, 1)
		assert.Equal(t, rule.Format, vs[0].Rule)

		// Every other field still accepts png.
		assert.NoError(t, reg.Validate(field("M", "thumb"), meta(1, 10, 10, "png")))
		assert.NoError(t, reg.Validate(field("N", "photo"), meta(1, 10, 10, "png")))
	})

	t.Run("unconfigured field validates nothing", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models.M.img", Rules: map[string]any{"SIZE": 10}},
		}, testSchema())
		assert.NoError(t, reg.Validate(field("N", "photo"), meta(9999, 1, 1, "bmp")))
	})

	t.Run("all violations are reported together", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models.M.img", Rules: map[string]any{
				"SIZE":   map[string]any{"lte": 50},
				"FORMAT": "jpeg",
			}},
		}, testSchema())

		err := reg.Validate(field("M", "img"), meta(100, 10, 10, "png"))
		vs := rule.AsViolations(err)
		require.Len(t, vs, 2)
		assert.Equal(t, []rule.Name{rule.Size, rule.Format}, vs.Rules())
	})
}

func TestRegistryMerge(t *testing.T) {
	t.Parallel()

	t.Run("merge is additive across rule names and overriding within one", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{"FORMAT": "jpeg", "SIZE": 100}},
			{Key: "a.models.M", Rules: map[string]any{"FORMAT": "png"}},
		}, testSchema())

		set, err := reg.RulesFor(field("M", "img"))
		require.NoError(t, err)
		require.Len(t, set, 2)

		format := set[rule.Format].(*rule.FormatRule)
		assert.Equal(t, []string{"png"}, format.Formats)

		size := set[rule.Size].(*rule.SizeRule)
		assert.Equal(t, map[rule.Operator]int{rule.EQ: 100}, size.Bounds)

		// Fields outside model M keep the app-wide FORMAT.
		other, err := reg.RulesFor(field("N", "photo"))
		require.NoError(t, err)
		assert.Equal(t, []string{"jpeg"}, other[rule.Format].(*rule.FormatRule).Formats)
	})

	t.Run("specificity override is monotonic", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{"SIZE": 100}},
			{Key: "a.models.M.img", Rules: map[string]any{"SIZE": 50}},
		}, testSchema())

		img, err := reg.RulesFor(field("M", "img"))
		require.NoError(t, err)
		assert.Equal(t, map[rule.Operator]int{rule.EQ: 50}, img[rule.Size].(*rule.SizeRule).Bounds)

		thumb, err := reg.RulesFor(field("M", "thumb"))
		require.NoError(t, err)
		assert.Equal(t, map[rule.Operator]int{rule.EQ: 100}, thumb[rule.Size].(*rule.SizeRule).Bounds)
	})

	t.Run("declaration order breaks equal-specificity ties", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models.M", Rules: map[string]any{"SIZE": 100}},
			{Key: "a.models", Rules: map[string]any{"SIZE": 200}},
		}, testSchema())

		// Different specificities: the model entry wins regardless of order.
		set, err := reg.RulesFor(field("M", "img"))
		require.NoError(t, err)
		assert.Equal(t, map[rule.Operator]int{rule.EQ: 100}, set[rule.Size].(*rule.SizeRule).Bounds)

		// Equal specificity on the same field: the later entry wins.
		reg = registry.New(registry.Config{
			{Key: "a.models.M.img", Rules: map[string]any{"SIZE": 10}},
			{Key: "a.models.M.img", Rules: map[string]any{"SIZE": 20}},
		}, testSchema())
		set, err = reg.RulesFor(field("M", "img"))
		require.NoError(t, err)
		assert.Equal(t, map[rule.Operator]int{rule.EQ: 20}, set[rule.Size].(*rule.SizeRule).Bounds)
	})
}

func TestRegistryBuild(t *testing.T) {
	t.Parallel()

	t.Run("conflicting operators fail the build before any image", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{
				"SIZE": map[string]any{"eq": 100, "gt": 50},
			}},
		}, testSchema())

		err := reg.Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, rule.ErrConflictingOperators)

		// Lookups surface the same build error.
		_, err = reg.ValidatorsFor(field("M", "img"))
		assert.ErrorIs(t, err, rule.ErrConflictingOperators)
	})

	t.Run("bad key fails the build", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.views.M", Rules: map[string]any{"SIZE": 100}},
		}, testSchema())
		assert.ErrorIs(t, reg.Build(), schema.ErrInvalidKey)
	})

	t.Run("unresolvable field fails the build", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models.M.missing", Rules: map[string]any{"SIZE": 100}},
		}, testSchema())
		assert.ErrorIs(t, reg.Build(), schema.ErrUnknownField)
	})

	t.Run("empty configuration fails the build", func(t *testing.T) {
		reg := registry.New(registry.Config{}, testSchema())
		assert.ErrorIs(t, reg.Build(), registry.ErrEmptyConfig)
	})

	t.Run("build is idempotent", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{"SIZE": 100}},
		}, testSchema())
		require.NoError(t, reg.Build())
		require.NoError(t, reg.Build())
	})

	t.Run("invalidate allows a rebuild", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models", Rules: map[string]any{
				"SIZE": map[string]any{"eq": 100, "gt": 50},
			}},
		}, testSchema())
		require.Error(t, reg.Build())

		reg.Invalidate()
		// Same config, same failure; invalidation resets the cached outcome.
		require.Error(t, reg.Build())
	})

	t.Run("fields lists every configured field sorted", func(t *testing.T) {
		reg := registry.New(registry.Config{
			{Key: "a.models.M", Rules: map[string]any{"SIZE": 100}},
		}, testSchema())
		fields, err := reg.Fields()
		require.NoError(t, err)
		assert.Equal(t, []schema.Field{field("M", "img"), field("M", "thumb")}, fields)
	})
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	cfg := registry.FromMap(map[string]map[string]any{
		"b.models": {"SIZE": 1},
		"a.models": {"SIZE": 2},
	})
	require.Len(t, cfg, 2)
	assert.Equal(t, "a.models", cfg[0].Key)
	assert.Equal(t, "b.models", cfg[1].Key)
}
