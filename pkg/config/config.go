// Package config loads engine-tunable defaults the way the teacher
// corpus's pkg/config loads service configuration: viper-backed,
// environment-overridable, with sane defaults so the engine runs
// without any external configuration at all.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the handful of values spec.md calls out as tunable
// rather than fixed by rule: sack budget, max audibles, catalog path,
// and the ambient demo server's own settings.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	SackBudgetFreePlay   float64 `mapstructure:"SACK_BUDGET_FREE_PLAY"`
	SackBudgetChallenge  float64 `mapstructure:"SACK_BUDGET_CHALLENGE"`
	MaxAudibles          int     `mapstructure:"MAX_AUDIBLES"`
	CatalogPath          string  `mapstructure:"CATALOG_PATH"`

	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables (and an optional
// .env file in the working directory), falling back to defaults that
// match spec.md's documented constants.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SACK_BUDGET_FREE_PLAY", 5.0)
	viper.SetDefault("SACK_BUDGET_CHALLENGE", 2.7)
	viper.SetDefault("MAX_AUDIBLES", 2)
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }
