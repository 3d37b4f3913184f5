package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Settings are the CLI defaults read from the settings file and environment.
type Settings struct {
	Palette     string  `mapstructure:"palette"`
	Scheme      string  `mapstructure:"scheme" validate:"required,scheme"`
	Format      string  `mapstructure:"format" validate:"required,oneof=table json yaml"`
	MinContrast float64 `mapstructure:"min_contrast" validate:"gte=1,lte=21"`
	LogLevel    string  `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DefaultSettingsPath returns the default settings file path.
func DefaultSettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "swatch", "config.yaml")
}

// LoadSettings reads settings from path, or the default path when empty,
// then applies SWATCH_* environment overrides. Only the default file may
// be missing.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("palette", "")
	v.SetDefault("scheme", "light")
	v.SetDefault("format", "table")
	v.SetDefault("min_contrast", 4.5)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("SWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultSettingsPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
		if explicit || !missing {
			return nil, swatcherrors.NewParseError(path, extractLine(err), err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, swatcherrors.NewParseError(path, 0, fmt.Errorf("decode settings: %w", err))
	}

	if err := validatorInstance().Struct(&settings); err != nil {
		return nil, convertValidationError(err)
	}

	return &settings, nil
}
