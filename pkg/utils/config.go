package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type MongoConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	Timeout     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "referral")
	viper.SetDefault("MONGO_MAX_POOL_SIZE", 20)
	viper.SetDefault("MONGO_TIMEOUT_SECONDS", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Mongo: MongoConfig{
			URI:         viper.GetString("MONGO_URI"),
			Database:    viper.GetString("MONGO_DB"),
			MaxPoolSize: viper.GetUint64("MONGO_MAX_POOL_SIZE"),
			Timeout:     time.Duration(viper.GetInt("MONGO_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	return config, nil
}
