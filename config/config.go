package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/coindash/internal/domain"
)

const (
	DefaultAddr         = ":8080"
	DefaultAPIBaseURL   = "https://api.coingecko.com/api/v3"
	DefaultTopN         = 5
	DefaultLogLevel     = "info"
	DefaultCertCacheDir = "cert-cache"

	MaxTopN = 250

	envAPIKey = "COINGECKO_API_KEY"
	envAddr   = "COINDASH_ADDR"
)

type Config struct {
	Addr         string
	APIKey       string
	APIBaseURL   string
	TopN         int
	DefaultDays  int
	LogLevel     string
	AutoTLS      bool
	Domains      []string
	CertCacheDir string
	CORSOrigins  []string
}

type ConfigTmp struct {
	Addr         string   `yaml:"addr,omitempty"`
	APIBaseURL   string   `yaml:"api_base_url,omitempty"`
	TopN         int      `yaml:"top_n,omitempty"`
	DefaultDays  int      `yaml:"default_days,omitempty"`
	LogLevel     string   `yaml:"log_level,omitempty"`
	AutoTLS      bool     `yaml:"auto_tls,omitempty"`
	Domains      []string `yaml:"domains,omitempty"`
	CertCacheDir string   `yaml:"cert_cache_dir,omitempty"`
	CORSOrigins  []string `yaml:"cors_origins,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:         DefaultAddr,
		APIBaseURL:   DefaultAPIBaseURL,
		TopN:         DefaultTopN,
		DefaultDays:  domain.DefaultDays,
		LogLevel:     DefaultLogLevel,
		CertCacheDir: DefaultCertCacheDir,
		CORSOrigins:  []string{"*"},
	}
}

// Get loads configuration from the yaml file at path (optional), then
// applies the .env file and environment variables on top.
func Get(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config %s", path)
		}
		if cfg, err = parseYaml(raw); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseYaml(raw []byte) (Config, error) {
	var tmp ConfigTmp
	if err := yaml.Unmarshal(raw, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse yaml config")
	}

	cfg := Default()
	if tmp.Addr != "" {
		cfg.Addr = tmp.Addr
	}
	if tmp.APIBaseURL != "" {
		cfg.APIBaseURL = strings.TrimRight(tmp.APIBaseURL, "/")
	}
	if tmp.TopN != 0 {
		cfg.TopN = tmp.TopN
	}
	if tmp.DefaultDays != 0 {
		cfg.DefaultDays = tmp.DefaultDays
	}
	if tmp.LogLevel != "" {
		cfg.LogLevel = tmp.LogLevel
	}
	if tmp.CertCacheDir != "" {
		cfg.CertCacheDir = tmp.CertCacheDir
	}
	if len(tmp.CORSOrigins) > 0 {
		cfg.CORSOrigins = tmp.CORSOrigins
	}
	cfg.AutoTLS = tmp.AutoTLS
	cfg.Domains = tmp.Domains

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.APIKey = strings.TrimSpace(os.Getenv(envAPIKey))
	if addr := strings.TrimSpace(os.Getenv(envAddr)); addr != "" {
		cfg.Addr = addr
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.TopN < 1 || c.TopN > MaxTopN {
		return errors.Errorf("incorrect 'top_n' param: %d, must be between 1 and %d", c.TopN, MaxTopN)
	}
	if !domain.ValidDays(c.DefaultDays) {
		return errors.Errorf("incorrect 'default_days' param: %d, must be one of %v", c.DefaultDays, domain.DayRanges)
	}
	if c.AutoTLS && len(c.Domains) == 0 {
		return errors.New("auto_tls requires at least one domain")
	}
	return nil
}

// ToTmp converts the configuration back to its file form.
func (c Config) ToTmp() ConfigTmp {
	return ConfigTmp{
		Addr:         c.Addr,
		APIBaseURL:   c.APIBaseURL,
		TopN:         c.TopN,
		DefaultDays:  c.DefaultDays,
		LogLevel:     c.LogLevel,
		AutoTLS:      c.AutoTLS,
		Domains:      c.Domains,
		CertCacheDir: c.CertCacheDir,
		CORSOrigins:  c.CORSOrigins,
	}
}
