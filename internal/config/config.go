package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/zappabad/coinwire/internal/market"
	marketservice "github.com/zappabad/coinwire/internal/market/service"
	newsservice "github.com/zappabad/coinwire/internal/news/service"
	"github.com/zappabad/coinwire/internal/session"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "coinwire"

type News struct {
	URL string `yaml:"url"`
}

type Prices struct {
	URL      string   `yaml:"url"`
	Currency string   `yaml:"currency"`
	Assets   []string `yaml:"assets"`
}

type Config struct {
	News            News   `yaml:"news"`
	Prices          Prices `yaml:"prices"`
	RefreshInterval string `yaml:"refresh_interval"`
	RequestTimeout  string `yaml:"request_timeout"`
	LogFile         string `yaml:"log_file,omitempty"`
}

// RefreshDuration returns the ticker refresh period, 5m when unset or invalid.
func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// TimeoutDuration returns the per-request timeout, 10s when unset or invalid.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func (c *Config) AssetIDs() []market.AssetID {
	ids := make([]market.AssetID, len(c.Assets()))
	for i, a := range c.Assets() {
		ids[i] = market.AssetID(a)
	}
	return ids
}

// Assets returns the configured assets, or the defaults when none are set.
func (c *Config) Assets() []string {
	if len(c.Prices.Assets) > 0 {
		return c.Prices.Assets
	}
	out := make([]string, len(market.DefaultAssets))
	for i, a := range market.DefaultAssets {
		out[i] = string(a)
	}
	return out
}

func (c *Config) NewsConfig() newsservice.Config {
	return newsservice.Config{
		Endpoint: c.News.URL,
		Timeout:  c.TimeoutDuration(),
	}
}

func (c *Config) PriceConfig() marketservice.Config {
	return marketservice.Config{
		Endpoint:        c.Prices.URL,
		Assets:          c.AssetIDs(),
		Currency:        c.Prices.Currency,
		Timeout:         c.TimeoutDuration(),
		RefreshInterval: c.RefreshDuration(),
	}
}

func (c *Config) SessionConfig() session.Config {
	return session.Config{
		Assets:          c.AssetIDs(),
		RefreshInterval: c.RefreshDuration(),
	}
}

// LogPath returns the configured log file, or the default under the XDG state dir.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (DefaultConfigPath when empty). Values the
// file leaves out keep their defaults. A missing file yields the defaults and
// is written out for the user to edit.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply.
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if err := validateURL("news.url", cfg.News.URL); err != nil {
		return err
	}
	if err := validateURL("prices.url", cfg.Prices.URL); err != nil {
		return err
	}
	if cfg.Prices.Currency != "usd" {
		return fmt.Errorf("prices.currency: only usd is supported, got %q", cfg.Prices.Currency)
	}
	for i, a := range cfg.Prices.Assets {
		if a == "" {
			return fmt.Errorf("prices.assets[%d]: asset id is required", i)
		}
	}
	if cfg.RefreshInterval != "" {
		if d, err := time.ParseDuration(cfg.RefreshInterval); err != nil || d <= 0 {
			return fmt.Errorf("refresh_interval: invalid duration %q", cfg.RefreshInterval)
		}
	}
	if cfg.RequestTimeout != "" {
		if d, err := time.ParseDuration(cfg.RequestTimeout); err != nil || d <= 0 {
			return fmt.Errorf("request_timeout: invalid duration %q", cfg.RequestTimeout)
		}
	}
	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
	}
	return nil
}
