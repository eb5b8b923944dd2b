// Package config loads the bridge's runtime settings from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the two toggles the original connector exposes for this
// subsystem: whether to synthesize the non-bedrock furnace_minecart
// component item, and whether to populate command suggestions at all
// (spec.md §4.2 step 6, §4.4 "suggestions disabled").
type Config struct {
	SynthesizeExtraItem       bool `env:"SYNTHESIZE_EXTRA_ITEM" envDefault:"true"`
	CommandSuggestionsEnabled bool `env:"COMMAND_SUGGESTIONS_ENABLED" envDefault:"true"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
