package utils

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// HTTP server
	Port        string `yaml:"PORT"`
	CORSOrigins string `yaml:"CORS_ORIGINS"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// Logging
	LogFile  string `yaml:"LOG_FILE"`
	LogLevel string `yaml:"LOG_LEVEL"`
}

var config Config

var defaults = map[string]string{
	"PORT":         "3000",
	"CORS_ORIGINS": "*",
	"DB_DRIVER":    "postgres",
	"DB_PORT":      "5432",
	"DB_SSLMODE":   "disable",
	"LOG_LEVEL":    "info",
}

// LoadConfig reads path into the package config. A missing or malformed file
// is logged and leaves environment variables and defaults in charge.
func LoadConfig(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("error reading YAML file: %s", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Warnf("error parsing YAML file: %s", err)
		return
	}
}

// GetConfig resolves key from the environment first, then the YAML file,
// then the built-in default.
func GetConfig(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

func fromFile(key string) string {
	switch key {
	case "PORT":
		return config.Port
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "LOG_FILE":
		return config.LogFile
	case "LOG_LEVEL":
		return config.LogLevel
	default:
		return ""
	}
}
