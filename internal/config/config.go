package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type TariffConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	TariffDB     `yaml:"tariff_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Engine       `yaml:"engine"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TariffDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
}

type Engine struct {
	DefaultFallbackRate float64 `yaml:"default_fallback_rate"`
	BatchWorkers        int     `yaml:"batch_workers"`
}

func MustLoad() *TariffConfig {

	// Processing env config variable and file
	configPath := os.Getenv("TARIFF_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("TARIFF_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg TariffConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
