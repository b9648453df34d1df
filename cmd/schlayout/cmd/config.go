package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/schlayout/pkg/layout"
)

// loadConfig reads a TOML configuration file over the engine defaults.
// An empty path returns the defaults unchanged.
func loadConfig(path string, logger *log.Logger) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warnf("config %s: unknown keys ignored: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}
