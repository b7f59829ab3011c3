package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Sessions
	JWT    JWTConfig
	Cookie CookieConfig

	// Listings
	Item ItemConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
}

type CookieConfig struct {
	Domain string
	Secure bool
}

// ItemConfig tunes the listing domain.
type ItemConfig struct {
	OfferTTL        time.Duration
	ReservationTTL  time.Duration
	SweepInterval   time.Duration
	DefaultRadiusKm float64
	ItemsPerPage    int
	ViewCacheTTL    time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")

	// Sessions
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")

	// Listings
	cfg.Item.OfferTTL = viper.GetDuration("item.offer_ttl")
	cfg.Item.ReservationTTL = viper.GetDuration("item.reservation_ttl")
	cfg.Item.SweepInterval = viper.GetDuration("item.sweep_interval")
	cfg.Item.DefaultRadiusKm = viper.GetFloat64("item.default_radius_km")
	cfg.Item.ItemsPerPage = viper.GetInt("item.items_per_page")
	cfg.Item.ViewCacheTTL = viper.GetDuration("item.view_cache_ttl")

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required - set it in config.yaml or via JWT_SECRET")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "samaritans.db")

	viper.SetDefault("cookie.secure", false)

	viper.SetDefault("item.offer_ttl", "336h")       // 14 days
	viper.SetDefault("item.reservation_ttl", "168h") // 7 days
	viper.SetDefault("item.sweep_interval", "10m")
	viper.SetDefault("item.default_radius_km", 5)
	viper.SetDefault("item.items_per_page", 25)
	viper.SetDefault("item.view_cache_ttl", "30s")
}
