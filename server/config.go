package server

import (
	"fmt"
	"os"
	"strconv"
)

func getConfig(opts []ConfigOption) Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 3000
	}

	config := Config{
		local:    false,
		port:     port,
		logging:  false,
		compress: false,
	}

	for _, opt := range opts {
		opt(&config)
	}

	return config
}

// Config is a struct that holds the configuration for the lookup server.
type Config struct {
	local    bool
	port     int
	logging  bool
	compress bool
}

func (c Config) addr() string {
	if c.local {
		return fmt.Sprintf("localhost:%d", c.port)
	}

	return fmt.Sprintf(":%d", c.port)
}

// ConfigOption is a function that modifies the configuration of the server.
type ConfigOption func(*Config)

// AsLocal binds the server to localhost only.
func AsLocal() ConfigOption {
	return func(c *Config) {
		c.local = true
	}
}

// WithPort sets the port in the configuration.
func WithPort(port int) ConfigOption {
	return func(c *Config) {
		c.port = port
	}
}

// WithLogging enables request logging.
func WithLogging() ConfigOption {
	return func(c *Config) {
		c.logging = true
	}
}

// WithCompress enables response compression.
func WithCompress() ConfigOption {
	return func(c *Config) {
		c.compress = true
	}
}
