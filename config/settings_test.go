package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgvalid/imgvalid/config"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := config.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, "imgvalid.yaml", s.RulesFile)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, "text", s.LogFormat)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("IMGVALID_RULES_FILE", "/etc/imgvalid/rules.yaml")
		t.Setenv("IMGVALID_LOG_LEVEL", "debug")
		t.Setenv("IMGVALID_LOG_FORMAT", "json")

		s, err := config.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, "/etc/imgvalid/rules.yaml", s.RulesFile)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, "json", s.LogFormat)
	})
}
