// Package config loads roadforge settings from a TOML file with environment
// variable fallbacks for credentials.
//
// The config file lives at ~/.config/roadforge/config.toml by default. Every
// field is optional; a missing file yields the defaults. The LLM API key is
// never required in the file and can come from DEEPSEEK_API_KEY or
// OPENAI_API_KEY depending on the provider.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Supported extraction providers.
const (
	ProviderDeepSeek = "deepseek"
	ProviderOpenAI   = "openai"
)

// Cache backend names accepted in the cache section.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// LLM configures the parameter extraction service.
type LLM struct {
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
	APIURL   string `toml:"api_url"`
	Model    string `toml:"model"`
}

// Defaults holds fallback values applied when a description leaves a
// parameter unspecified.
type Defaults struct {
	Lanes    int     `toml:"lanes"`
	Length   float64 `toml:"length"`
	Speed    float64 `toml:"speed"`
	RoadType string  `toml:"road_type"`
	Junction string  `toml:"junction"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Config is the full application configuration.
type Config struct {
	LLM      LLM         `toml:"llm"`
	Defaults Defaults    `toml:"defaults"`
	Cache    CacheConfig `toml:"cache"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LLM: LLM{
			Provider: ProviderDeepSeek,
			APIURL:   "https://api.deepseek.com/v1/chat/completions",
			Model:    "deepseek-chat",
		},
		Defaults: Defaults{
			Lanes:    topology.DefaultLanes,
			Length:   topology.DefaultLength,
			Speed:    topology.DefaultSpeed,
			RoadType: topology.DefaultRoadType,
			Junction: topology.ControlTrafficLight,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "resolve home directory")
	}
	return filepath.Join(home, ".config", "roadforge", "config.toml"), nil
}

// Load reads the config file at path, merging it over the defaults.
// A missing file is not an error. Environment variables fill in the API key
// when the file leaves it blank.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv fills credentials from the environment when unset in the file.
func (c *Config) applyEnv() {
	if c.LLM.APIKey != "" {
		return
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	default:
		c.LLM.APIKey = os.Getenv("DEEPSEEK_API_KEY")
	}
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case ProviderDeepSeek, ProviderOpenAI:
	default:
		return errors.New(errors.ErrCodeInvalidParams, "unknown llm provider %q", c.LLM.Provider)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidParams, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidParams, "cache backend %q requires redis_addr", BackendRedis)
	}
	if c.Defaults.Lanes < 1 {
		return errors.New(errors.ErrCodeInvalidParams, "defaults.lanes must be at least 1, got %d", c.Defaults.Lanes)
	}
	if c.Defaults.Length <= 0 {
		return errors.New(errors.ErrCodeInvalidParams, "defaults.length must be positive, got %g", c.Defaults.Length)
	}
	if c.Defaults.Speed <= 0 {
		return errors.New(errors.ErrCodeInvalidParams, "defaults.speed must be positive, got %g", c.Defaults.Speed)
	}
	return nil
}

// Params seeds a topology parameter set from the configured defaults.
func (c *Config) Params() topology.Params {
	return topology.Params{
		Lanes:    c.Defaults.Lanes,
		Length:   c.Defaults.Length,
		Speed:    c.Defaults.Speed,
		RoadType: c.Defaults.RoadType,
		Control:  c.Defaults.Junction,
	}
}
