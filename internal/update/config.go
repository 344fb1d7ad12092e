package update

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type RuntimeConfig struct {
	Journal  JournalConfig `mapstructure:"journal"`
	UI       UIConfig      `mapstructure:"ui"`
	DebugLog string        `mapstructure:"debug_log"`
}

type JournalConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Name         string `mapstructure:"name"`
	HistoryLimit int    `mapstructure:"history_limit"`
}

type UIConfig struct {
	Width int `mapstructure:"width"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Journal: JournalConfig{
			Enabled:      true,
			Name:         "tasklist-journal",
			HistoryLimit: 10,
		},
		UI: UIConfig{
			Width: 58,
		},
		DebugLog: "",
	}
}

func LoadRuntimeConfig(base RuntimeConfig) (RuntimeConfig, error) {
	v := viper.New()
	v.SetDefault("journal.enabled", base.Journal.Enabled)
	v.SetDefault("journal.name", base.Journal.Name)
	v.SetDefault("journal.history_limit", base.Journal.HistoryLimit)
	v.SetDefault("ui.width", base.UI.Width)
	v.SetDefault("debug_log", base.DebugLog)

	v.SetEnvPrefix("TASKLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := strings.TrimSpace(os.Getenv("TASKLIST_CONFIG")); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return RuntimeConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg RuntimeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Journal.HistoryLimit <= 0 {
		cfg.Journal.HistoryLimit = base.Journal.HistoryLimit
	}
	if cfg.UI.Width <= 0 {
		cfg.UI.Width = base.UI.Width
	}
	return cfg, nil
}
