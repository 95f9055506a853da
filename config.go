package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentflare-ai/go-docmat/internal/builder"
	"github.com/agentflare-ai/go-docmat/internal/docitem"
)

const configName = "docmat"

// defaultModules are the top-level packages of the Accelerator Toolbox,
// rendered in this order.
var defaultModules = []string{
	"atphysics",
	"atplot",
	"attrack",
	"atutils",
	"lattice",
	"atmat",
	"atmatch",
}

// Config is the build configuration read from docmat.yaml, DOCMAT_*
// environment variables and command-line flags, in increasing priority.
type Config struct {
	// Root is the scanned directory, relative to the source directory.
	Root string `mapstructure:"root"`
	// Dest receives the api/ pages, relative to the source directory.
	Dest          string   `mapstructure:"dest"`
	Format        string   `mapstructure:"format"`
	Modules       []string `mapstructure:"modules"`
	Recursive     bool     `mapstructure:"recursive"`
	ScriptFailure string   `mapstructure:"script_failure"`
	// IgnoreFile uses gitignore syntax, relative to Root.
	IgnoreFile string `mapstructure:"ignore_file"`
	NoColor    bool   `mapstructure:"no_color"`
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"root":           "root",
	"dest":           "dest",
	"format":         "format",
	"modules":        "module",
	"recursive":      "recursive",
	"script_failure": "script-failure",
	"ignore_file":    "ignore-file",
	"no_color":       "no-color",
}

// loadConfig reads docmat.yaml from source (or the explicit file path) and
// layers the environment and flags on top.
func loadConfig(source, path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("root", "atmat")
	v.SetDefault("dest", filepath.Join("docs", "m"))
	v.SetDefault("format", "rst")
	v.SetDefault("modules", defaultModules)
	v.SetDefault("recursive", true)
	v.SetDefault("script_failure", "abort")
	v.SetDefault("ignore_file", ".docmatignore")
	v.SetDefault("no_color", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(source)
	}

	v.SetEnvPrefix("DOCMAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Root) == "" {
		return errors.New("root must not be empty")
	}
	if strings.TrimSpace(cfg.Dest) == "" {
		return errors.New("dest must not be empty")
	}
	if len(cfg.Modules) == 0 {
		return errors.New("at least one module is required")
	}
	if _, err := builder.Lookup(cfg.Format); err != nil {
		return err
	}
	if _, err := docitem.ParseScriptFailure(cfg.ScriptFailure); err != nil {
		return err
	}
	return nil
}

// resolve makes p absolute against base unless it already is.
func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
