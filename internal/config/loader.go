package config

import (
	"os"
	"path/filepath"

	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".progressview.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/progressview"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'progressview config init' to create one, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .progressview.yaml in current directory
// 3. .progressview.yaml in parent directories (stops at git root or home)
// 4. ~/.config/progressview/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && parent == home {
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads the config named by explicit, or the first one Find
// turns up, or returns defaults when there is none.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v)

	// A configured panel replaces the default one wholesale; decoding on top
	// of the default lines would leak their fields into the file's.
	cfg.Stats = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if !v.IsSet("stats") {
		cfg.Stats = DefaultStats()
	}

	return cfg, nil
}

// setDefaults registers scalar defaults so partially written files still
// produce a complete Config.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("preserve_previous_screen", d.PreservePreviousScreen)
	v.SetDefault("progress.header", d.Progress.Header)
	v.SetDefault("progress.symbol", d.Progress.Symbol)
	v.SetDefault("progress.type", d.Progress.Type)
	v.SetDefault("progress.max", d.Progress.Max)
	v.SetDefault("progress.colour", d.Progress.Colour)
	v.SetDefault("progress.background", d.Progress.Background)
	v.SetDefault("log.debug", false)
	v.SetDefault("demo.log_interval", d.Demo.LogInterval.String())
	v.SetDefault("demo.tick_interval", d.Demo.TickInterval.String())
	v.SetDefault("demo.step", d.Demo.Step)
	v.SetDefault("demo.pending_delay", d.Demo.PendingDelay.String())
	v.SetDefault("demo.linger", d.Demo.Linger.String())
}
