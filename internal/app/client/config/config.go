package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "local"
	defaultConfigDir     = ".notemaster"
	defaultSyncInterval  = 30
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	ConfigDir     string `mapstructure:"config_dir"`
	DBPath        string `mapstructure:"db_path"`
	DevicePath    string `mapstructure:"device_path"`
	SyncInterval  int    `mapstructure:"sync_interval_seconds"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
}

// MustLoad reads the client configuration from the environment, with an
// optional .env file next to the binary. All state lives under ConfigDir
// in the user's home directory unless overridden.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("SYNC_INTERVAL_SECONDS", defaultSyncInterval)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		ConfigDir:     configDir,
		DBPath:        filepath.Join(configDir, "notes.db"),
		DevicePath:    filepath.Join(configDir, "device.json"),
		SyncInterval:  viper.GetInt("SYNC_INTERVAL_SECONDS"),
		EnableTLS:     viper.GetBool("ENABLE_TLS"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if c.SyncInterval <= 0 {
		return fmt.Errorf("sync_interval_seconds must be positive")
	}
	return nil
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
