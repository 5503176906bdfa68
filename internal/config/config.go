// Package config loads storefront configuration from a YAML file and can
// watch it for edits so settings changes apply without a restart.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"storefront/internal/domain"
)

// API configures the commerce API client.
type API struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Analytics configures the local event recorder.
type Analytics struct {
	Enabled         bool   `yaml:"enabled"`
	DBPath          string `yaml:"db_path"`
	RetentionDays   int    `yaml:"retention_days"`
	CleanupSchedule string `yaml:"cleanup_schedule"`
}

// Config is the full configuration file.
type Config struct {
	API       API                  `yaml:"api"`
	Store     domain.StoreSettings `yaml:"store"`
	Analytics Analytics            `yaml:"analytics"`
}

func (c *Config) defaults() {
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 30
	}
	if c.Store.DefaultProductSorting == "" {
		c.Store.DefaultProductSorting = "-date_created"
	}
	if c.Store.CheckoutPath == "" {
		c.Store.CheckoutPath = "/checkout"
	}
	if c.Store.CheckoutSuccessPath == "" {
		c.Store.CheckoutSuccessPath = "/checkout-success"
	}
	if c.Store.AccountPath == "" {
		c.Store.AccountPath = "/customer-account"
	}
	if c.Store.ProductsLimit <= 0 {
		c.Store.ProductsLimit = 30
	}
	if c.Analytics.DBPath == "" {
		c.Analytics.DBPath = "storefront-analytics.db"
	}
	if c.Analytics.RetentionDays < 0 {
		c.Analytics.RetentionDays = 0
	}
	if c.Analytics.CleanupSchedule == "" {
		c.Analytics.CleanupSchedule = "@daily"
	}
}

// Default returns a config with every default filled in.
func Default() Config {
	var c Config
	c.defaults()
	return c
}

// Load reads and parses the file at path, filling in defaults. A missing
// file is not an error: the defaults are a working development setup.
func Load(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.defaults()
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.defaults()
	return c, nil
}
