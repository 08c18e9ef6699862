// Package config loads the handful of operator-tunable knobs this module
// exposes: the catalog endpoint, whether autotagging runs interactively, and
// optional overrides for the recommendation thresholds. The distance weights
// themselves are fixed constants and cannot be overridden here.
//
// Grounded on stojg-playlist-sorter/config/config.go: a flat settings struct
// loaded from a TOML file via github.com/BurntSushi/toml, falling back to
// library defaults when the file is absent. Demlo's own configuration is a
// full Lua script (luascript.go's LoadConfig) — too heavy a vehicle for this
// module's short, flat settings list.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ambrevar/tagmatch"
)

// Config is the top-level settings structure.
type Config struct {
	Catalog   CatalogConfig   `toml:"catalog"`
	Tagging   TaggingConfig   `toml:"tagging"`
	Weights   WeightsConfig   `toml:"weights"`
	PluginLua PluginLuaConfig `toml:"plugin_lua"`
}

// CatalogConfig configures the MusicBrainz-backed catalog adapter.
type CatalogConfig struct {
	Endpoint  string `toml:"endpoint"`
	UserAgent string `toml:"user_agent"`
}

// TaggingConfig configures the album/track tagger state machine.
type TaggingConfig struct {
	// InteractiveAutotag, when true, disables the catalog-ID STRONG
	// short-circuit: the ID match competes with search results instead of
	// returning immediately.
	InteractiveAutotag bool `toml:"interactive_autotag"`
}

// WeightsConfig lets an operator retune the recommendation thresholds
// without recompiling. Zero values fall back to the library defaults,
// never to zero weights.
type WeightsConfig struct {
	StrongRecThresh float64 `toml:"strong_rec_thresh"`
	MediumRecThresh float64 `toml:"medium_rec_thresh"`
	RecGapThresh    float64 `toml:"rec_gap_thresh"`
}

// PluginLuaConfig points at an optional Lua script implementing the
// tagmatch.PluginSource contract (see the pluginlua package).
type PluginLuaConfig struct {
	ScriptPath string `toml:"script_path"`
}

// Default returns the library defaults: public MusicBrainz, non-interactive
// autotagging, and the standard recommendation thresholds.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			Endpoint:  "https://musicbrainz.org/ws/2",
			UserAgent: "tagmatch/1.0",
		},
		Weights: WeightsConfig{
			StrongRecThresh: tagmatch.StrongRecThresh,
			MediumRecThresh: tagmatch.MediumRecThresh,
			RecGapThresh:    tagmatch.RecGapThresh,
		},
	}
}

// Load reads a TOML file at path, filling any field left at its zero value
// with the library default. A missing file is not an error: it returns
// Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Weights.StrongRecThresh == 0 {
		cfg.Weights.StrongRecThresh = Default().Weights.StrongRecThresh
	}
	if cfg.Weights.MediumRecThresh == 0 {
		cfg.Weights.MediumRecThresh = Default().Weights.MediumRecThresh
	}
	if cfg.Weights.RecGapThresh == 0 {
		cfg.Weights.RecGapThresh = Default().Weights.RecGapThresh
	}
	if cfg.Catalog.Endpoint == "" {
		cfg.Catalog.Endpoint = Default().Catalog.Endpoint
	}
	if cfg.Catalog.UserAgent == "" {
		cfg.Catalog.UserAgent = Default().Catalog.UserAgent
	}

	return cfg, nil
}
