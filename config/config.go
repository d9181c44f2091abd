package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Site struct {
		Origin string
	}
	Database struct {
		Driver string
		URL    string
	}
	Server struct {
		Port int
	}
	Generator struct {
		Interval  string
		OutputDir string
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Default values
	viper.SetDefault("site.origin", "https://robostaan.in")
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("generator.interval", "24h")
	viper.SetDefault("generator.outputdir", "public")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) GetGenerateDuration() time.Duration {
	duration, err := time.ParseDuration(c.Generator.Interval)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
