package config

import (
	"github.com/spf13/viper"
)

// Config carries everything handlers need. It is loaded once at startup and
// threaded through the dispatcher so handlers never read ambient state.
// A missing value disables the commands that depend on it; it never crashes
// the process at dispatch time.
type Config struct {
	ApplicationID string `mapstructure:"DISCORD_APPLICATION_ID"`
	BotToken      string `mapstructure:"DISCORD_TOKEN"`
	PublicKey     string `mapstructure:"DISCORD_PUBLIC_KEY"`
	ArchivePath   string `mapstructure:"ARCHIVE_DB_PATH"`
	ListenAddr    string `mapstructure:"LISTEN_ADDR"`
}

// configKeys lists every recognized option so viper picks each one up from
// the environment as well as the optional config file.
var configKeys = []string{
	"DISCORD_APPLICATION_ID",
	"DISCORD_TOKEN",
	"DISCORD_PUBLIC_KEY",
	"ARCHIVE_DB_PATH",
	"LISTEN_ADDR",
}

// LoadConfig reads config.yaml from the working directory if present, then
// overlays environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	for _, key := range configKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}
	viper.SetDefault("LISTEN_ADDR", ":8787")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; environment variables alone are fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
