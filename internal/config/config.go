// Package config loads tool configuration from an optional YAML file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Categories CategoriesConfig `mapstructure:"categories"`
	Server     ServerConfig     `mapstructure:"server"`
}

type LedgerConfig struct {
	Path string `mapstructure:"path"`
}

type CategoriesConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from path, or from an optional
// statement-ledger.yaml in the working directory when path is empty.
// Environment variables prefixed STATEMENT_LEDGER_ override file
// values; defaults apply when neither is set.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("ledger.path", "transactions.csv")
	v.SetDefault("categories.path", "categories.json")
	v.SetDefault("server.addr", ":8080")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("statement-ledger")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("STATEMENT_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
