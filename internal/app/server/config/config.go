package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
)

type Config struct {
	Env    string
	DB     db
	Server server
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
	}

	if config.Env == "" {
		config.Env = EnvLocal
	}
	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = "migrations"
	}

	return &config
}
