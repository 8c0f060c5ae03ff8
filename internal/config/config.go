// Package config reads runtime settings for the menu API and the terminal
// browser from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is shared by cmd/server and cmd/menu. Each binary reads the
// sections it needs.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Menu     MenuConfig
	LogLevel string
}

// ServerConfig configures the HTTP listener. Timeouts are in seconds.
type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Timeout converts one of the second based timeouts
func (s ServerConfig) Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

type CORSConfig struct {
	AllowedOrigins []string
}

// MenuConfig configures the catalog source and the terminal browser
type MenuConfig struct {
	CatalogFile     string // empty means the embedded catalog
	LogFile         string
	HeaderOffset    int     // rows kept clear above a section after a jump
	BottomExclusion float64 // fraction of the viewport ignored for activation
	SmoothScroll    bool
	CurrencySymbol  string
}

// Load builds a Config from the environment. Unset or unparseable
// variables take their defaults; the result is validated.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            env("PORT", "8080", parseString),
			Host:            env("HOST", "0.0.0.0", parseString),
			ReadTimeout:     env("READ_TIMEOUT", 15, strconv.Atoi),
			WriteTimeout:    env("WRITE_TIMEOUT", 15, strconv.Atoi),
			ShutdownTimeout: env("SHUTDOWN_TIMEOUT", 30, strconv.Atoi),
		},
		CORS: CORSConfig{
			AllowedOrigins: env("CORS_ALLOWED_ORIGINS", []string{"*"}, parseList),
		},
		Menu: MenuConfig{
			CatalogFile:     env("MENU_CATALOG_FILE", "", parseString),
			LogFile:         env("MENU_LOG_FILE", "menu.log", parseString),
			HeaderOffset:    env("MENU_HEADER_OFFSET", 1, strconv.Atoi),
			BottomExclusion: env("MENU_BAND_BOTTOM_EXCLUSION", 0.6, parseFloat),
			SmoothScroll:    env("MENU_SMOOTH_SCROLL", true, strconv.ParseBool),
			CurrencySymbol:  env("MENU_CURRENCY_SYMBOL", "₹", parseString),
		},
		LogLevel: env("LOG_LEVEL", "info", parseString),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.Menu.HeaderOffset < 0 {
		errs = append(errs, fmt.Errorf("MENU_HEADER_OFFSET must not be negative: %d", c.Menu.HeaderOffset))
	}
	if c.Menu.BottomExclusion < 0 || c.Menu.BottomExclusion >= 1 {
		errs = append(errs, fmt.Errorf("MENU_BAND_BOTTOM_EXCLUSION must be in [0, 1): %v", c.Menu.BottomExclusion))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel))
	}

	return errors.Join(errs...)
}

// env returns the parsed value of key, or fallback when the variable is
// unset, empty or fails to parse
func env[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

func parseString(s string) (string, error) { return s, nil }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseList(s string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}
