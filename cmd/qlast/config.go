package main

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/yaml"
	"go.uber.org/zap"
)

func loadConfig(name string) (cfg Config, rerr error) {
	defer func() {
		if rerr != nil {
			return
		}
		// Environment variable has higher precedence.
		if lang := os.Getenv("QLAST_LANG"); lang != "" {
			if err := cfg.Language.Set(lang); err != nil {
				rerr = errors.Wrap(err, "QLAST_LANG")
				return
			}
		}
		cfg.setDefaults()
	}()

	if name == "" {
		name = "qlast.yml"
		if _, err := os.Stat(name); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(name))
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %q", name)
	}
	return cfg, nil
}

// Config is the qlast config.
type Config struct {
	Language Language `json:"language" yaml:"language"`
	Format   Format   `json:"format" yaml:"format"`
	// Parallel enables concurrent segment parsing of multi-segment queries.
	Parallel bool `json:"parallel" yaml:"parallel"`
	// Validate runs structural validation after every parse.
	Validate bool      `json:"validate" yaml:"validate"`
	Log      LogConfig `json:"log" yaml:"log"`
}

func (cfg *Config) setDefaults() {
	if cfg.Language == "" {
		cfg.Language = LangKQL
	}
	if cfg.Format == "" {
		cfg.Format = FormatTree
	}
	cfg.Log.setDefaults()
}

func (cfg Config) validate() error {
	if v := cfg.Language; v != "" {
		if err := new(Language).Set(string(v)); err != nil {
			return err
		}
	}
	if v := cfg.Format; v != "" {
		if err := new(Format).Set(string(v)); err != nil {
			return err
		}
	}
	if v := cfg.Log.Level; v != "" {
		if _, err := zap.ParseAtomicLevel(v); err != nil {
			return errors.Wrap(err, "log level")
		}
	}
	return nil
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

func (cfg *LogConfig) setDefaults() {
	if cfg.Level == "" {
		cfg.Level = "warn"
	}
}

// Build creates a logger writing to stderr.
func (cfg LogConfig) Build() (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "parse level")
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
