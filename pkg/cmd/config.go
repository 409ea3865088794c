package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/bot"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/prov"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/repo"
	"github.com/spf13/viper"
)

type appConfig struct {
	Bot  bot.Config  `mapstructure:"bot"`
	API  prov.Config `mapstructure:"api"`
	Repo repo.Config `mapstructure:"repo"`
}

// loadConfig loads the application configuration from the optional config file and environment variables.
// Variables from the optional env file are loaded first and never override ones already set.
func loadConfig(arg *args) (*appConfig, error) {
	if arg.EnvFile != "" {
		if err := godotenv.Load(arg.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if arg.ConfigPath != "" {
		v.SetConfigFile(arg.ConfigPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg appConfig

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	slog.Debug("Config loaded", slog.String("api_url", cfg.API.URL), slog.String("redis_addr", cfg.Repo.RedisAddr))

	return &cfg, nil
}
