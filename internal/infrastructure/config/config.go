package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Webhook    Webhook
}

type HTTPServer struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Webhook struct {
	// Secret is the shared GitHub webhook secret. When empty, signature
	// verification is skipped entirely.
	Secret string
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.request_timeout", "10s")

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "pr-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "prwebhooks")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("webhook.secret", "")
	_ = viper.BindEnv("webhook.secret", "GITHUB_WEBHOOK_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        viper.GetString("http_server.address"),
			Port:           viper.GetInt("http_server.port"),
			RequestTimeout: viper.GetDuration("http_server.request_timeout"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Webhook: Webhook{
			Secret: viper.GetString("webhook.secret"),
		},
	}

	return config
}
