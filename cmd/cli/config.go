package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	outputText = "text"
	outputJSON = "json"

	envPrefix = "TAKEQL_"
)

type cliConfig struct {
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
	NoColor bool   `koanf:"no_color"`
}

// loadConfig merges defaults, TAKEQL_* environment variables and explicitly
// set flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet) (*cliConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":   outputText,
		"verbose":  false,
		"no_color": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// TAKEQL_NO_COLOR -> no_color
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg cliConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if cfg.Output != outputText && cfg.Output != outputJSON {
		return nil, fmt.Errorf("invalid output format %q (expected text or json)", cfg.Output)
	}

	return &cfg, nil
}
