package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret  string `yaml:"secret"`
		TTLDays int    `yaml:"ttl_days"` // token lifetime in days
	} `yaml:"jwt"`

	Upload struct {
		MaxSize      int64 `yaml:"max_size"`      // max file size in bytes
		ImageQuality int   `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`

	Analysis struct {
		URL            string `yaml:"url"`             // external skin-analysis endpoint
		TimeoutSeconds int    `yaml:"timeout_seconds"` // outbound call timeout
	} `yaml:"analysis"`
}

var AppConfig *Config

// LoadConfig populates AppConfig either from environment variables
// (test mode, signalled by DATABASE_URL being set) or from the yaml
// config file. A .env file is honored when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLDays = 30
	cfg.Analysis.URL = os.Getenv("ANALYSIS_SERVICE_URL")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.TTLDays == 0 {
		cfg.JWT.TTLDays = 30
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if cfg.Upload.ImageQuality == 0 {
		cfg.Upload.ImageQuality = 60
	}
	if cfg.Analysis.URL == "" {
		cfg.Analysis.URL = "http://127.0.0.1:5000/analyze"
	}
	if cfg.Analysis.TimeoutSeconds == 0 {
		cfg.Analysis.TimeoutSeconds = 30
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
