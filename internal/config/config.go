// Package config loads the mdfolio configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

const (
	SourceGitHub = "github"
	SourceDir    = "dir"
)

var (
	ErrUnknownSource = errors.New("config: unknown content source")
	ErrRepoRequired  = errors.New("config: github source requires owner and repo")
	ErrDirRequired   = errors.New("config: dir source requires a directory")
)

// Token environment variables, in lookup order.
var tokenEnv = []string{"MDFOLIO_GITHUB_TOKEN", "GITHUB_TOKEN"}

type Config struct {
	Site    Site    `yaml:"site"`
	Content Content `yaml:"content"`
	Render  Render  `yaml:"render"`
	Server  Server  `yaml:"server"`
	Log     Log     `yaml:"log"`
}

// Site is the profile shown on the home page and in the header.
type Site struct {
	Title   string   `yaml:"title"`
	Author  string   `yaml:"author"`
	Avatar  string   `yaml:"avatar"`
	Tagline string   `yaml:"tagline"`
	Bio     []string `yaml:"bio"`
	Links   []Link   `yaml:"links"`
	Email   string   `yaml:"email"`
	Lang    string   `yaml:"lang"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Content struct {
	Source      string        `yaml:"source"`
	Owner       string        `yaml:"owner"`
	Repo        string        `yaml:"repo"`
	Ref         string        `yaml:"ref"`
	Token       string        `yaml:"token"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	RateLimit   float64       `yaml:"rate_limit"`
	Dir         string        `yaml:"dir"`
	BlogDir     string        `yaml:"blog_dir"`
	PagesDir    string        `yaml:"pages_dir"`
	Exclude     []string      `yaml:"exclude"`
	Concurrency int           `yaml:"concurrency"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	Watch       bool          `yaml:"watch"`
}

type Render struct {
	Style      string   `yaml:"style"`
	TabWidth   int      `yaml:"tab_width"`
	Languages  []string `yaml:"languages"`
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	Unsafe     bool     `yaml:"unsafe"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used for every field a file leaves
// unset.
func Default() Config {
	return Config{
		Site: Site{
			Title: "mdfolio",
			Lang:  "en",
		},
		Content: Content{
			Source:      SourceGitHub,
			Ref:         "main",
			Timeout:     10 * time.Second,
			BlogDir:     "content/blog",
			PagesDir:    "content",
			Exclude:     []string{"README.md"},
			Concurrency: 8,
			CacheTTL:    5 * time.Minute,
		},
		Render: Render{
			Style:      "onedark",
			TabWidth:   2,
			Extensions: []string{"gfm"},
		},
		Server: Server{
			Addr:            ":3000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over Default and applies the environment. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}

		if cfg, err = Parse(data); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	return cfg, nil
}

// Parse decodes YAML over Default. Keys present in data replace the default,
// including zero values such as `cache_ttl: 0s` or `exclude: []`.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	cfg.Content.Source = strings.ToLower(strings.TrimSpace(cfg.Content.Source))

	return cfg, nil
}

// Override copies every non-zero field of over into c. Command line flags use
// it, where an empty value means the flag was not given.
func (c *Config) Override(over Config) error {
	if err := mergo.Merge(c, over, mergo.WithOverride); err != nil {
		return fmt.Errorf("config: override: %w", err)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if c.Content.Token != "" {
		return
	}

	for _, key := range tokenEnv {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			c.Content.Token = strings.TrimSpace(value)

			return
		}
	}
}

// Validate checks that the content source is fully described.
func (c Config) Validate() error {
	switch strings.ToLower(c.Content.Source) {
	case SourceGitHub:
		if c.Content.Owner == "" || c.Content.Repo == "" {
			return ErrRepoRequired
		}
	case SourceDir:
		if c.Content.Dir == "" {
			return ErrDirRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Content.Source)
	}

	return nil
}
