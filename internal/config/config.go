// Package config loads menuforge settings from flags, MENUFORGE_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/moasq/menuforge/internal/layout"
	"github.com/moasq/menuforge/internal/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. MENUFORGE_SKIN.
const EnvPrefix = "menuforge"

// Keys shared by flags, env vars and the config file.
const (
	KeySkin          = "skin"
	KeyMenu          = "menu"
	KeyLogLevel      = "log-level"
	KeyClear         = "clear"
	KeyStrategy      = "strategy"
	KeyMinHeight     = "min-height"
	KeyFixedHeight   = "fixed-height"
	KeyMinWidth      = "min-width"
	KeyMaxWidth      = "max-width"
	KeyTextboxLines  = "textbox-lines"
	KeyPaddingLines  = "padding-lines"
	KeyEnforceHeight = "enforce-height"
	KeyHistory       = "history"
	KeyHistoryDir    = "history-dir"
)

// Defaults for every key.
const (
	DefaultSkin          = "phoenix"
	DefaultMenu          = "main"
	DefaultLogLevel      = "warn"
	DefaultStrategy      = "min"
	DefaultMinHeight     = 25
	DefaultFixedHeight   = 25
	DefaultMinWidth      = 40
	DefaultMaxWidth      = 100
	DefaultTextboxLines  = 3
	DefaultPaddingLines  = 2
	DefaultEnforceHeight = true
	DefaultHistory       = true
)

// dataDirName is created under the home directory when history-dir is unset.
const dataDirName = ".menuforge"

// Config is the resolved configuration.
type Config struct {
	Skin     string
	Menu     string
	LogLevel slog.Level
	// Clear clears the screen before every menu even when height is not enforced.
	Clear  bool
	Layout layout.Constraints
	// HistoryDir holds history.json. Empty disables command history.
	HistoryDir string
	// File is the config file that was read, if any.
	File string
}

// Constraints returns the base layout constraints.
func (c *Config) Constraints() layout.Constraints {
	return c.Layout
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySkin, DefaultSkin)
	v.SetDefault(KeyMenu, DefaultMenu)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyClear, false)
	v.SetDefault(KeyStrategy, DefaultStrategy)
	v.SetDefault(KeyMinHeight, DefaultMinHeight)
	v.SetDefault(KeyFixedHeight, DefaultFixedHeight)
	v.SetDefault(KeyMinWidth, DefaultMinWidth)
	v.SetDefault(KeyMaxWidth, DefaultMaxWidth)
	v.SetDefault(KeyTextboxLines, DefaultTextboxLines)
	v.SetDefault(KeyPaddingLines, DefaultPaddingLines)
	v.SetDefault(KeyEnforceHeight, DefaultEnforceHeight)
	v.SetDefault(KeyHistory, DefaultHistory)
	v.SetDefault(KeyHistoryDir, "")
}

// New returns a viper instance with defaults and environment lookup wired.
// cfgFile names an explicit config file; when empty, .menuforge.yaml is
// searched for in the home directory and the working directory.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".menuforge")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the config file if one exists. A missing file is not an
// error unless it was named explicitly.
func ReadFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// RegisterFlags adds the layout and selection flags to fs. Flag defaults
// mirror SetDefaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeySkin, DefaultSkin, "skin to load menus from")
	fs.String(KeyMenu, DefaultMenu, "menu to start at")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.Bool(KeyClear, false, "clear the screen before every menu")
	fs.String(KeyStrategy, DefaultStrategy, "height strategy (min or fixed)")
	fs.Int(KeyMinHeight, DefaultMinHeight, "minimum menu height in lines")
	fs.Int(KeyFixedHeight, DefaultFixedHeight, "menu height for the fixed strategy")
	fs.Int(KeyMinWidth, DefaultMinWidth, "minimum separator width")
	fs.Int(KeyMaxWidth, DefaultMaxWidth, "maximum separator width")
	fs.Int(KeyTextboxLines, DefaultTextboxLines, "lines reserved for the input area")
	fs.Int(KeyPaddingLines, DefaultPaddingLines, "blank lines between menu and input area")
	fs.Bool(KeyEnforceHeight, DefaultEnforceHeight, "clear the screen and keep the input area on a fixed line")
	fs.Bool(KeyHistory, DefaultHistory, "record commands chosen in interactive sessions")
	fs.String(KeyHistoryDir, "", "directory for history.json (default $HOME/.menuforge)")
}

// BindFlags binds every flag in fs to the viper key of the same name, so an
// explicitly set flag wins over env and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var errs []error

	strategy, err := layout.ParseStrategy(v.GetString(KeyStrategy))
	if err != nil {
		errs = append(errs, err)
	}
	level, err := logging.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		errs = append(errs, err)
	}

	cfg := &Config{
		Skin:     strings.TrimSpace(v.GetString(KeySkin)),
		Menu:     strings.TrimSpace(v.GetString(KeyMenu)),
		LogLevel: level,
		Clear:    v.GetBool(KeyClear),
		File:     v.ConfigFileUsed(),
		Layout: layout.Constraints{
			Strategy:                strategy,
			MinHeight:               v.GetInt(KeyMinHeight),
			FixedHeight:             v.GetInt(KeyFixedHeight),
			MinWidth:                v.GetInt(KeyMinWidth),
			MaxWidth:                v.GetInt(KeyMaxWidth),
			TextboxLines:            v.GetInt(KeyTextboxLines),
			PaddingLines:            v.GetInt(KeyPaddingLines),
			EnforceConsistentHeight: v.GetBool(KeyEnforceHeight),
		},
	}

	if v.GetBool(KeyHistory) {
		cfg.HistoryDir = historyDir(v.GetString(KeyHistoryDir))
	}

	if cfg.Skin == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeySkin))
	}
	if cfg.Menu == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyMenu))
	}
	if err := cfg.Layout.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func historyDir(dir string) string {
	if dir = strings.TrimSpace(dir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dataDirName)
}
