package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the contacts browser configuration.
type Config struct {
	Data    DataConfig
	Display DisplayConfig
	Log     LogConfig
}

// DataConfig locates the contacts file.
type DataConfig struct {
	// Path of a contacts JSON file. Empty means the bundled contacts.
	Path string
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// Density is the number of cells per inch fed to the scroll velocity
	// model. Lower values make smooth scrolls slower.
	Density float64
	// DensityScale selects the avatar variant (1, 2 or 3).
	DensityScale float64 `mapstructure:"density_scale"`
	// ItemWidth is the width of one avatar card in cells.
	ItemWidth int `mapstructure:"item_width"`
	// SnapTolerance is the distance in cells within which a card counts as
	// centered.
	SnapTolerance int `mapstructure:"snap_tolerance"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Path of the log file. Empty disables logging.
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix STRIP_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("data.path", "")
	v.SetDefault("display.density", 12.0)
	v.SetDefault("display.density_scale", 1.0)
	v.SetDefault("display.item_width", 16)
	v.SetDefault("display.snap_tolerance", 1)
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "contacts.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STRIP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "contacts"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STRIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Display.Density <= 0 {
		return fmt.Errorf("display.density must be positive, got %v", c.Display.Density)
	}
	if c.Display.ItemWidth <= 0 {
		return fmt.Errorf("display.item_width must be positive, got %d", c.Display.ItemWidth)
	}
	if c.Display.SnapTolerance < 0 {
		return fmt.Errorf("display.snap_tolerance must not be negative, got %d", c.Display.SnapTolerance)
	}
	return nil
}
