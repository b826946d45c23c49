package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Mansion MansionConfig `mapstructure:"mansion"`
	Game    GameConfig    `mapstructure:"game"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Log     LogConfig     `mapstructure:"log"`
}

// Mansion blueprint selection
type MansionConfig struct {
	Path string `mapstructure:"path"` // JSON blueprint file
}

type GameConfig struct {
	Threshold int `mapstructure:"threshold"` // minimum clues backing an accusation
}

type LedgerConfig struct {
	Buckets int `mapstructure:"buckets"` // fixed for the whole session
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.BindEnv("mansion.path", "DETECTIVE_MANSION_PATH")
	viper.BindEnv("log.level", "DETECTIVE_LOG_LEVEL")

	viper.SetDefault("mansion.path", "mansions/classic.json")
	viper.SetDefault("game.threshold", 2)
	viper.SetDefault("ledger.buckets", 10)
	viper.SetDefault("log.level", "info")

	// Allow environment variables
	viper.SetEnvPrefix("DETECTIVE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
