// Package config loads the YAML configuration for jobdigest, applying
// defaults where the file is silent.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the jobdigest aggregator.
type Config struct {
	Roles     []string
	Locations []string
	DryRun    bool
	Schedule  time.Duration
	Sources   SourcesConfig
	Store     StoreConfig
	Email     EmailConfig
	Report    ReportConfig
	RateLimit RateLimitConfig
	Filters   FiltersConfig
}

// FiltersConfig extends the built-in classification and skill catalogs
// without replacing them.
type FiltersConfig struct {
	ExtraIndianLocations []string `yaml:"extra_indian_locations"`
	ExtraExclusions      []string `yaml:"extra_exclusions"`
	ExtraFresherSignals  []string `yaml:"extra_fresher_signals"`
	ExtraSkills          []string `yaml:"extra_skills"`
}

// SourcesConfig controls which job platforms are scraped.
type SourcesConfig struct {
	Naukri       bool         `yaml:"naukri"`
	Indeed       bool         `yaml:"indeed"`
	LinkedIn     bool         `yaml:"linkedin"`
	CompanyPages []CareerPage `yaml:"company_pages"`
}

// CareerPage is a single company careers URL to scan.
type CareerPage struct {
	Company string `yaml:"company"`
	URL     string `yaml:"url"`
}

// StoreConfig selects where seen-job state is kept.
type StoreConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
}

// EmailConfig holds SMTP delivery settings. Username and password are
// typically supplied via ${VAR} expansion from the environment.
type EmailConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Recipient string `yaml:"recipient"`
}

// ReportConfig holds output paths for run artifacts.
type ReportConfig struct {
	SnapshotPath string `yaml:"snapshot_path"`
	ArtifactPath string `yaml:"artifact_path"`
}

// RateLimitConfig controls platform-level request spacing.
type RateLimitConfig struct {
	MinDelay time.Duration
}

// rawConfig is used for YAML unmarshaling (durations as strings).
type rawConfig struct {
	Roles     []string           `yaml:"roles"`
	Locations []string           `yaml:"locations"`
	DryRun    *bool              `yaml:"dry_run"`
	Schedule  string             `yaml:"schedule"`
	Sources   *SourcesConfig     `yaml:"sources"`
	Store     StoreConfig        `yaml:"store"`
	Email     EmailConfig        `yaml:"email"`
	Report    ReportConfig       `yaml:"report"`
	RateLimit rawRateLimitConfig `yaml:"rate_limit"`
	Filters   FiltersConfig      `yaml:"filters"`
}

type rawRateLimitConfig struct {
	MinDelay string `yaml:"min_delay"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Roles:     []string{"DevOps Engineer", "Site Reliability Engineer"},
		Locations: []string{"Bangalore", "Hyderabad", "Pune", "Remote"},
		DryRun:    true,
		Schedule:  24 * time.Hour,
		Sources: SourcesConfig{
			Naukri:   true,
			Indeed:   true,
			LinkedIn: true,
		},
		Store: StoreConfig{
			Backend: "json",
			Path:    "seen_jobs.json",
		},
		Email: EmailConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Report: ReportConfig{
			SnapshotPath: "last_run.json",
			ArtifactPath: "last_run.html",
		},
		RateLimit: RateLimitConfig{
			MinDelay: 5 * time.Second,
		},
	}
}

// Load reads and parses the YAML config file at path, validates it, and
// returns Config. A .env file next to the working directory is loaded
// first so ${VAR} references in the YAML resolve.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only exists in local setups.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if len(raw.Roles) > 0 {
		cfg.Roles = raw.Roles
	}
	if len(raw.Locations) > 0 {
		cfg.Locations = raw.Locations
	}
	if raw.DryRun != nil {
		cfg.DryRun = *raw.DryRun
	}
	if raw.Schedule != "" {
		d, err := time.ParseDuration(raw.Schedule)
		if err != nil {
			return nil, fmt.Errorf("parse schedule %q: %w", raw.Schedule, err)
		}
		cfg.Schedule = d
	}
	if raw.Sources != nil {
		cfg.Sources = *raw.Sources
	}
	if raw.Store.Backend != "" {
		cfg.Store.Backend = raw.Store.Backend
	}
	if raw.Store.Path != "" {
		cfg.Store.Path = raw.Store.Path
	}
	if raw.Email.Host != "" {
		cfg.Email.Host = raw.Email.Host
	}
	if raw.Email.Port != 0 {
		cfg.Email.Port = raw.Email.Port
	}
	cfg.Email.Username = raw.Email.Username
	cfg.Email.Password = raw.Email.Password
	cfg.Email.Recipient = raw.Email.Recipient
	if raw.Report.SnapshotPath != "" {
		cfg.Report.SnapshotPath = raw.Report.SnapshotPath
	}
	if raw.Report.ArtifactPath != "" {
		cfg.Report.ArtifactPath = raw.Report.ArtifactPath
	}
	cfg.Filters = raw.Filters
	if raw.RateLimit.MinDelay != "" {
		d, err := time.ParseDuration(raw.RateLimit.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse rate_limit.min_delay %q: %w", raw.RateLimit.MinDelay, err)
		}
		cfg.RateLimit.MinDelay = d
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Schedule <= 0 {
		return fmt.Errorf("schedule must be positive, got %v", cfg.Schedule)
	}
	if len(cfg.Roles) == 0 {
		return fmt.Errorf("at least one role is required")
	}

	enabled := cfg.Sources.Naukri || cfg.Sources.Indeed || cfg.Sources.LinkedIn ||
		len(cfg.Sources.CompanyPages) > 0
	if !enabled {
		return fmt.Errorf("at least one source must be enabled")
	}
	for i, p := range cfg.Sources.CompanyPages {
		if p.Company == "" || p.URL == "" {
			return fmt.Errorf("sources.company_pages[%d]: company and url are both required", i)
		}
	}

	switch cfg.Store.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("store.backend must be \"json\" or \"sqlite\", got %q", cfg.Store.Backend)
	}

	if cfg.RateLimit.MinDelay < 0 {
		return fmt.Errorf("rate_limit.min_delay must not be negative, got %v", cfg.RateLimit.MinDelay)
	}

	// Email recipient is deliberately not required here: dry runs never
	// send mail, and live runs check it at send time.
	return nil
}
