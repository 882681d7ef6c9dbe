package config

import (
	"fmt"
	"net"
	"strconv"
)

// Defaults
const (
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 8080
	DefaultDocumentRoot = "www"
	DefaultCGIRoot      = "cgi-bin"
	DefaultCGIFraming   = "raw"
	DefaultInstance     = "tinyhttpd"

	currentVersion = 1
)

// Config holds the server configuration
type Config struct {
	Version      int              `yaml:"version"`
	Host         string           `yaml:"host"`
	Port         int              `yaml:"port"`
	DocumentRoot string           `yaml:"document_root"`
	CGIRoot      string           `yaml:"cgi_root"`
	CGIFraming   string           `yaml:"cgi_framing"` // "raw" or "wrap"
	LogLevel     string           `yaml:"log_level,omitempty"`
	Advertise    *AdvertiseConfig `yaml:"advertise,omitempty"`
}

// AdvertiseConfig controls mDNS advertisement of the server
type AdvertiseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Instance string `yaml:"instance,omitempty"` // mDNS instance name
}

// Default returns a Config with the built-in values.
func Default() *Config {
	return &Config{
		Version:      currentVersion,
		Host:         DefaultHost,
		Port:         DefaultPort,
		DocumentRoot: DefaultDocumentRoot,
		CGIRoot:      DefaultCGIRoot,
		CGIFraming:   DefaultCGIFraming,
		Advertise: &AdvertiseConfig{
			Instance: DefaultInstance,
		},
	}
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AdvertiseEnabled reports whether mDNS advertisement is on
func (c *Config) AdvertiseEnabled() bool {
	return c.Advertise != nil && c.Advertise.Enabled
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Version != currentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, currentVersion)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d (must be 0-65535)", c.Port)
	}
	if c.DocumentRoot == "" {
		return fmt.Errorf("document_root must not be empty")
	}
	if c.CGIRoot == "" {
		return fmt.Errorf("cgi_root must not be empty")
	}
	switch c.CGIFraming {
	case "raw", "wrap":
	default:
		return fmt.Errorf("invalid cgi_framing %q (expected \"raw\" or \"wrap\")", c.CGIFraming)
	}
	return nil
}
