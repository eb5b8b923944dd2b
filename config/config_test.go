package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SwallowMC/Geyser/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.True(t, cfg.SynthesizeExtraItem)
	require.True(t, cfg.CommandSuggestionsEnabled)
}

func TestLoadHonorsOverrides(t *testing.T) {
	t.Setenv("SYNTHESIZE_EXTRA_ITEM", "false")
	t.Setenv("COMMAND_SUGGESTIONS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.False(t, cfg.SynthesizeExtraItem)
	require.False(t, cfg.CommandSuggestionsEnabled)
}

func TestLoadRejectsInvalidBool(t *testing.T) {
	t.Setenv("SYNTHESIZE_EXTRA_ITEM", "not-a-bool")

	_, err := config.Load()
	require.Error(t, err)
}
