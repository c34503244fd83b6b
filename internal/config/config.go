// Package config defines the service configuration, loaded from YAML and
// environment variables with predictable priority: an explicit path, then
// CONFIG_PATH, then ./local.yaml, then environment variables alone.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration.
type Config struct {
	BaseURL string       `yaml:"base_url" env:"BASE_URL" env-default:"https://www.sribalajimandir.org"`
	Pages   PagesConfig  `yaml:"pages"`
	Cache   CacheConfig  `yaml:"cache"`
	Store   StoreConfig  `yaml:"store"`
	Server  ServerConfig `yaml:"server"`
}

// PagesConfig holds the site-relative path of each scraped page.
type PagesConfig struct {
	Home       string `yaml:"home"       env:"PAGE_HOME"       env-default:"/"`
	Events     string `yaml:"events"     env:"PAGE_EVENTS"     env-default:"/events"`
	Bookstore  string `yaml:"bookstore"  env:"PAGE_BOOKSTORE"  env-default:"/bookstore"`
	Donation   string `yaml:"donation"   env:"PAGE_DONATION"   env-default:"/donate"`
	Admissions string `yaml:"admissions" env:"PAGE_ADMISSIONS" env-default:"/admissions"`
	Contact    string `yaml:"contact"    env:"PAGE_CONTACT"    env-default:"/contact-us"`
	Classes    string `yaml:"classes"    env:"PAGE_CLASSES"    env-default:"/classes"`
}

// CacheConfig holds the per-category cache durations. Live pages refetch
// daily; the curated calendar is considered fresh for a week.
type CacheConfig struct {
	Pages    time.Duration `yaml:"pages"    env:"CACHE_PAGES"    env-default:"24h"`
	Calendar time.Duration `yaml:"calendar" env:"CACHE_CALENDAR" env-default:"168h"`
}

// StoreConfig selects and configures the cache backend.
type StoreConfig struct {
	Backend    string `yaml:"backend"     env:"STORE_BACKEND"  env-default:"file"` // file or sqlite
	DataDir    string `yaml:"data_dir"    env:"STORE_DATA_DIR" env-default:"~/.local/share/templepages"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE"   env-default:"templepages.db"`
}

// ServerConfig holds the JSON API listen address.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"SERVER_ADDR" env-default:":8080"`
}

// PageURL joins a site-relative page path onto the base URL.
func (c *Config) PageURL(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

// MustLoad wraps Load and panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration. A missing file is not an error as long as
// the environment provides what the defaults do not.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		if _, err := os.Stat("local.yaml"); err == nil {
			path = "local.yaml"
		}
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}
