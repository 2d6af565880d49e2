package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "MANGA_FEEDS_CONFIG"
	listenAddrEnv = "MANGA_FEEDS_ADDR"
	logLevelEnv   = "MANGA_FEEDS_LOG_LEVEL"
	userAgentEnv  = "MANGA_FEEDS_USER_AGENT"
)

// Config holds the settings required across the application. The provider
// table itself is compiled in; only the ambient knobs live here.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// UpstreamConfig controls outbound calls to provider sites.
type UpstreamConfig struct {
	UserAgent      string `yaml:"userAgent"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout resolves the upstream call deadline.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// CacheConfig controls the shared-cache validity window advertised to CDNs.
type CacheConfig struct {
	SMaxAgeSeconds int `yaml:"sMaxAgeSeconds"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(userAgentEnv); v != "" {
		c.Upstream.UserAgent = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Upstream.UserAgent != "" {
		base.Upstream.UserAgent = override.Upstream.UserAgent
	}
	if override.Upstream.TimeoutSeconds > 0 {
		base.Upstream.TimeoutSeconds = override.Upstream.TimeoutSeconds
	}
	if override.Cache.SMaxAgeSeconds > 0 {
		base.Cache.SMaxAgeSeconds = override.Cache.SMaxAgeSeconds
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	return base
}

func defaultConfig() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Upstream: UpstreamConfig{TimeoutSeconds: 20},
		Cache:    CacheConfig{SMaxAgeSeconds: 600},
		Logging:  LoggingConfig{Level: "info"},
	}
}
