package main

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrInvalidAPIBaseURL = errors.New("invalid API base URL")
	ErrInvalidPublicURL  = errors.New("invalid public URL")
)

// Config is the page server configuration.
// Priority: defaults < JSON config file < flags < environment.
type Config struct {
	// Address of the HTTP server. Example: localhost:8080
	ServerAddress string `env:"SERVER_ADDRESS" mapstructure:"server_address"`
	// Root of the shortening service, the urls collection is appended to it.
	APIBaseURL string `env:"API_BASE_URL" mapstructure:"api_base_url"`
	// Origin put into short links. Empty means the host the page was
	// requested from. Example: https://sho.rt
	PublicURL string `env:"PUBLIC_URL" mapstructure:"public_url"`
	LogLevel  string `env:"LOG_LEVEL" mapstructure:"log_level"`
	// Timeout of one call to the shortening service, 0 disables it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" mapstructure:"request_timeout"`
	// Path to the JSON config file.
	Config string `env:"CONFIG" mapstructure:"-"`
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:  ServerAddress,
		APIBaseURL:     APIBaseURL,
		PublicURL:      "",
		LogLevel:       LogLevel,
		RequestTimeout: 0,
		Config:         "",
	}
}

// NewConfig builds the configuration from the JSON file, the command line
// arguments and the environment.
func NewConfig(args []string) (*Config, error) {
	config := defaultConfig()

	fs := pflag.NewFlagSet("shortener-page", pflag.ContinueOnError)
	serverAddress := fs.StringP("a", "a", "", "Server address")
	apiBaseURL := fs.StringP("u", "u", "", "Base URL of the shortener API")
	publicURL := fs.StringP("b", "b", "", "Origin of the resulting short URLs")
	logLevel := fs.StringP("l", "l", "", "Log level")
	requestTimeout := fs.DurationP("t", "t", 0, "Timeout of the shortener API requests")
	configPath := fs.StringP("config", "c", "", "Path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// the config file path itself follows flags < env
	config.Config = *configPath
	pathFromEnv := &struct {
		Config string `env:"CONFIG"`
	}{Config: config.Config}
	if err := env.Parse(pathFromEnv); err != nil {
		return nil, err
	}
	config.Config = pathFromEnv.Config

	if config.Config != "" {
		if err := config.readFile(config.Config); err != nil {
			return nil, err
		}
	}

	if fs.Changed("a") {
		config.ServerAddress = *serverAddress
	}
	if fs.Changed("u") {
		config.APIBaseURL = *apiBaseURL
	}
	if fs.Changed("b") {
		config.PublicURL = *publicURL
	}
	if fs.Changed("l") {
		config.LogLevel = *logLevel
	}
	if fs.Changed("t") {
		config.RequestTimeout = *requestTimeout
	}

	if err := env.Parse(config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) readFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	// keys missing in the file keep their current values
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	u, err := url.ParseRequestURI(c.APIBaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIBaseURL, c.APIBaseURL)
	}
	if c.PublicURL != "" {
		u, err = url.ParseRequestURI(c.PublicURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: %q", ErrInvalidPublicURL, c.PublicURL)
		}
	}
	return nil
}
