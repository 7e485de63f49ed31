package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"

	OpenMeteoForecastAPI  = "open-meteo"
	OpenMeteoGeocodingAPI = "open-meteo-geocoding"

	OpenMeteoForecastURL  = "https://api.open-meteo.com/v1/forecast"
	OpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
	Weather WeatherConfig `yaml:"weather"`
	Cache   CacheConfig   `yaml:"cache"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

type WeatherConfig struct {
	APIs []WeatherAPIConfig `yaml:"apis" ignored:"true"`
}

// WeatherAPIConfig describes one upstream. Timeout is in seconds, RateLimit in
// requests per second.
type WeatherAPIConfig struct {
	Name       string  `yaml:"name"`
	BaseURL    string  `yaml:"base_url,omitempty"`
	APIKey     string  `yaml:"api_key,omitempty"`
	Timeout    int     `yaml:"timeout"`
	RateLimit  float64 `yaml:"rate_limit,omitempty"`
	Burst      int     `yaml:"burst,omitempty"`
	MaxRetries int     `yaml:"max_retries,omitempty"`
}

type CacheConfig struct {
	// GeocodeTTL is in seconds; 0 disables the geocoding cache.
	GeocodeTTL int `yaml:"geocode_ttl" envconfig:"GEOCODE_TTL"`
}

type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// NewConfig loads .env (if any), config/config.yaml and the environment.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err = provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	// Read from YAML file first
	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if len(cnf.Weather.APIs) == 0 {
		cnf.Weather.APIs = defaultAPIs()
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	if cnf.App.Name == "" {
		return errors.New("app.name is required")
	}
	if cnf.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cnf.Server.ReadTimeout <= 0 || cnf.Server.WriteTimeout <= 0 || cnf.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}

	switch cnf.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not supported", cnf.Log.Level)
	}

	if cnf.Cache.GeocodeTTL < 0 {
		return errors.New("cache.geocode_ttl must not be negative")
	}

	for i, api := range cnf.Weather.APIs {
		switch api.Name {
		case "":
			return fmt.Errorf("weather.apis[%d].name is required", i)
		case OpenMeteoForecastAPI, OpenMeteoGeocodingAPI:
		default:
			return fmt.Errorf("weather.apis[%d].name %q is not supported", i, api.Name)
		}
		if api.Timeout <= 0 {
			return fmt.Errorf("weather.apis[%d].timeout must be positive", i)
		}
		if api.RateLimit < 0 || api.Burst < 0 || api.MaxRetries < 0 {
			return fmt.Errorf("weather.apis[%d] limits must not be negative", i)
		}
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-forecast",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			GeocodeTTL: 600,
		},
	}
}

func defaultAPIs() []WeatherAPIConfig {
	return []WeatherAPIConfig{
		{Name: OpenMeteoGeocodingAPI, BaseURL: OpenMeteoGeocodingURL, Timeout: 10, RateLimit: 5, Burst: 5, MaxRetries: 2},
		{Name: OpenMeteoForecastAPI, BaseURL: OpenMeteoForecastURL, Timeout: 10, RateLimit: 5, Burst: 5, MaxRetries: 2},
	}
}
