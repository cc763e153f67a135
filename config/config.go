package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig database connection settings.
// Driver is "mysql" (default) or "sqlite"; Path is only read by the sqlite driver.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	Path         string `mapstructure:"path"`
	LogLevel     string `mapstructure:"log_level"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// JWTConfig token verification settings
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// RateLimitConfig limits write requests per user
type RateLimitConfig struct {
	Requests      int           `mapstructure:"requests"`
	WindowSeconds int           `mapstructure:"window_seconds"`
	Window        time.Duration `mapstructure:"-"`
}

var (
	// GlobalConfig global configuration instance
	GlobalConfig *Config
)

// LoadConfig loads the configuration.
// Precedence: environment (CUENTAS_*) > external file > embedded defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}
	log.Println("loaded embedded default config")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		} else {
			log.Printf("merged config file: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/cuentas")
		externalViper.AddConfigPath("$HOME/.cuentas")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("warning: merge external config failed: %v", err)
			} else {
				log.Printf("merged config file: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	v.SetEnvPrefix("CUENTAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	GlobalConfig = &cfg

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.JWT.ExpireHours <= 0 {
		c.JWT.ExpireHours = 24
	}
	c.JWT.ExpireTime = time.Duration(c.JWT.ExpireHours) * time.Hour

	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = 60
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}
	c.RateLimit.Window = time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

// MustLoadConfig loads the configuration or panics
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// GetConfig returns the global configuration
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("config not initialized, call LoadConfig first")
	}
	return GlobalConfig
}

// SafeErrorMessage hides internal error details from clients in release mode.
// A nil GlobalConfig is treated as a development environment.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig logs the active configuration without secrets
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("active config:")
	log.Printf("  server: %s (mode: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	switch GlobalConfig.Database.Driver {
	case "sqlite":
		log.Printf("  database: sqlite %s", GlobalConfig.Database.Path)
	default:
		log.Printf("  database: %s@%s:%s/%s",
			GlobalConfig.Database.Username,
			GlobalConfig.Database.Host,
			GlobalConfig.Database.Port,
			GlobalConfig.Database.DBName)
	}
	log.Printf("  rate limit: %d writes / %s", GlobalConfig.RateLimit.Requests, GlobalConfig.RateLimit.Window)
}
