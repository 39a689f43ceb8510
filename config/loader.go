package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the application configuration, trying each path
// in order. API keys may also be supplied through the COMMUTEWISE_MAPS_KEY
// and COMMUTEWISE_CHAT_KEY environment variables, which take precedence over
// the file.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Default returns a usable configuration without a config file on disk.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	applyEnv(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "./data"
	}
	if cfg.Maps.Region == "" {
		cfg.Maps.Region = "ph"
	}
	if cfg.Maps.TimeoutMS == 0 {
		cfg.Maps.TimeoutMS = 10000
	}
	if cfg.Maps.GeocodeCacheTTLMS == 0 {
		cfg.Maps.GeocodeCacheTTLMS = 900000
	}
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = "gemini-2.5-flash"
	}
	if cfg.Chat.TimeoutMS == 0 {
		cfg.Chat.TimeoutMS = 15000
	}
}

func applyEnv(cfg *AppConfig) {
	if k := os.Getenv("COMMUTEWISE_MAPS_KEY"); k != "" {
		cfg.Maps.APIKey = k
	}
	if k := os.Getenv("COMMUTEWISE_CHAT_KEY"); k != "" {
		cfg.Chat.APIKey = k
	}
}
