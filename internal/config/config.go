package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Site    SiteConfig
	Log     LogConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type BackendConfig struct {
	BaseURL        string
	RequestTimeout int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SiteConfig struct {
	DefaultLanguage  string
	Languages        []string
	UploadsPath      string
	PlaceholderImage string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Backend: BackendConfig{
			BaseURL:        viper.GetString("BACKEND_BASE_URL"),
			RequestTimeout: viper.GetInt("BACKEND_REQUEST_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Site: SiteConfig{
			DefaultLanguage:  viper.GetString("SITE_DEFAULT_LANGUAGE"),
			Languages:        parseLanguages(viper.GetString("SITE_LANGUAGES")),
			UploadsPath:      viper.GetString("SITE_UPLOADS_PATH"),
			PlaceholderImage: viper.GetString("SITE_PLACEHOLDER_IMAGE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:      viper.GetBool("WORKER_ENABLED"),
			PollInterval: time.Duration(viper.GetInt("WORKER_POLL_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = 30
	}
	if cfg.Site.DefaultLanguage == "" {
		cfg.Site.DefaultLanguage = "en"
	}
	if len(cfg.Site.Languages) == 0 {
		cfg.Site.Languages = []string{"en", "am", "ti"}
	}
	if cfg.Site.UploadsPath == "" {
		cfg.Site.UploadsPath = "/uploads"
	}
	if cfg.Site.PlaceholderImage == "" {
		cfg.Site.PlaceholderImage = "noimage.png"
	}
	if cfg.Worker.PollInterval == 0 {
		cfg.Worker.PollInterval = 30 * time.Second
	}

	return cfg, nil
}

func parseLanguages(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
