package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Default credential values used when nothing is configured. These keep a
// fresh checkout runnable against the local store, but they are demo values:
// a deployment must override every one of them.
const (
	DefaultAdminPassword       = "nathmaker"
	DefaultCloudinaryCloudName = "demo"
	DefaultCloudinaryAPIKey    = "demo-key"
	DefaultCloudinaryAPISecret = "demo-secret"
)

type ServerConfig struct {
	Port           int `toml:"port"`
	RequestTimeout int `toml:"request_timeout_seconds"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
}

type Config struct {
	Server ServerConfig `toml:"server"`

	// DatabaseURL selects the backing store. Empty or a sqlite:// URL means
	// the local file-backed fallback; anything else is treated as a hosted
	// Postgres target.
	DatabaseURL        string `toml:"database_url"`
	AllowLocalFallback bool   `toml:"allow_local_fallback"`

	AdminPassword  string   `toml:"admin_password"`
	AllowedOrigins []string `toml:"allowed_origins"`

	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	Log        LogConfig        `toml:"log"`
}

// Load reads the optional TOML config file at path, then applies environment
// overrides and demo defaults. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server:             ServerConfig{Port: 8080, RequestTimeout: 30},
		AllowLocalFallback: true,
		Log:                LogConfig{Level: "info"},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		cfg.DatabaseURL = v
	}
	if v, ok := os.LookupEnv("ADMIN_PASSWORD"); ok {
		cfg.AdminPassword = v
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitOrigins(v)
	}
	if v, ok := os.LookupEnv("CLOUDINARY_CLOUD_NAME"); ok {
		cfg.Cloudinary.CloudName = v
	}
	if v, ok := os.LookupEnv("CLOUDINARY_API_KEY"); ok {
		cfg.Cloudinary.APIKey = v
	}
	if v, ok := os.LookupEnv("CLOUDINARY_API_SECRET"); ok {
		cfg.Cloudinary.APISecret = v
	}
	if v, ok := os.LookupEnv("PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:8081"}
	}
	if cfg.Cloudinary.CloudName == "" {
		cfg.Cloudinary.CloudName = DefaultCloudinaryCloudName
	}
	if cfg.Cloudinary.APIKey == "" {
		cfg.Cloudinary.APIKey = DefaultCloudinaryAPIKey
	}
	if cfg.Cloudinary.APISecret == "" {
		cfg.Cloudinary.APISecret = DefaultCloudinaryAPISecret
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 30
	}
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RequestTimeoutDuration returns the per-request deadline applied by the
// server middleware.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.Server.RequestTimeout) * time.Second
}
