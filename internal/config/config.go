// Package config loads gridocr settings from defaults, an optional YAML file and GRIDOCR_* env vars.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	ocr "github.com/getcharzp/go-gridocr"
	"github.com/getcharzp/go-gridocr/gridocr"
)

const EnvPrefix = "GRIDOCR"

type Config struct {
	InputDir     string `mapstructure:"input_dir"`
	OutputDir    string `mapstructure:"output_dir"`
	ImageExt     string `mapstructure:"image_ext"`
	FontWidth    int    `mapstructure:"font_width"`
	ColStart     int    `mapstructure:"col_start"`
	NChar        int    `mapstructure:"n_char"`
	SignalCutoff int    `mapstructure:"signal_cutoff"`
	PrototypeDir string `mapstructure:"prototype_dir"` // empty: don't dump prototypes
	LogLevel     string `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and env binding but no file.
func New() *viper.Viper {
	v := viper.New()
	inputDir, outputDir := ocr.DefaultDatasetPaths()
	def := gridocr.DefaultConfig()

	v.SetDefault("input_dir", inputDir)
	v.SetDefault("output_dir", outputDir)
	v.SetDefault("image_ext", def.ImageExt)
	v.SetDefault("font_width", def.FontWidth)
	v.SetDefault("col_start", def.ColStart)
	v.SetDefault("n_char", def.NChar)
	v.SetDefault("signal_cutoff", def.SignalCutoff)
	v.SetDefault("prototype_dir", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path if it exists. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Engine converts to the recognizer configuration.
func (c *Config) Engine(logger *slog.Logger) gridocr.Config {
	return gridocr.Config{
		InputDir:     c.InputDir,
		OutputDir:    c.OutputDir,
		ImageExt:     c.ImageExt,
		FontWidth:    c.FontWidth,
		ColStart:     c.ColStart,
		NChar:        c.NChar,
		SignalCutoff: c.SignalCutoff,
		Logger:       logger,
	}
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
