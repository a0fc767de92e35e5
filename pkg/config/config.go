// Package config loads gitsnitch settings.
//
// Settings are layered, later sources winning:
//
//  1. built-in defaults
//  2. the TOML config file ($XDG_CONFIG_HOME/gitsnitch/config.toml)
//  3. a .env file in the working directory
//  4. the process environment (GITHUB_TOKEN, GITSNITCH_API_URL)
//
// Command-line flags are applied on top by the CLI.
//
// A config file looks like:
//
//	token = "ghp_..."
//	max_repos = 20
//	format = "table"
//	timeout = "30s"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/integrations/github"
	"github.com/gruns/gitsnitch/pkg/pipeline"
	"github.com/gruns/gitsnitch/pkg/report"
)

const (
	appName  = "gitsnitch"
	fileName = "config.toml"

	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"
)

// Environment variables read by Load.
const (
	EnvToken  = "GITHUB_TOKEN"
	EnvAPIURL = "GITSNITCH_API_URL"
)

// Config holds every tunable setting.
type Config struct {
	Token         string   `toml:"token"`
	APIURL        string   `toml:"api_url"`
	MaxRepos      int      `toml:"max_repos"`
	MaxCommitters int      `toml:"max_committers"`
	Format        string   `toml:"format"`
	Timeout       Duration `toml:"timeout"`

	// Sources lists where settings came from, for debug logging.
	Sources []string `toml:"-"`
}

// Duration is a time.Duration written as a string ("30s", "1m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:        github.DefaultBaseURL,
		MaxRepos:      pipeline.DefaultMaxRepos,
		MaxCommitters: pipeline.DefaultMaxCommitters,
		Format:        report.FormatText,
		Sources:       []string{"defaults"},
	}
}

// LoadOptions locates the config sources.
type LoadOptions struct {
	// Path is an explicit config file. It must exist. When empty,
	// DefaultPath is used if the file is there.
	Path string

	// EnvFile is the dotenv file to read. Empty means DefaultEnvFile.
	// A missing file is ignored.
	EnvFile string
}

// Load builds a Config from defaults, the config file, the dotenv file
// and the environment, then validates it. The process environment is
// never modified.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if err := cfg.loadFile(opts.Path); err != nil {
		return Config{}, err
	}
	if err := cfg.loadEnv(opts.EnvFile); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/gitsnitch/config.toml, falling
// back to ~/.config/gitsnitch/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return snitcherrors.Wrap(snitcherrors.ErrCodeInvalidConfig, err, "read config")
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return snitcherrors.Wrap(snitcherrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return snitcherrors.New(snitcherrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	c.Sources = append(c.Sources, path)
	return nil
}

func (c *Config) loadEnv(envFile string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return snitcherrors.Wrap(snitcherrors.ErrCodeInvalidConfig, err, "read %s", envFile)
		}
		dotenv = nil
	} else {
		c.Sources = append(c.Sources, envFile)
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvToken); v != "" {
		c.Token = v
	}
	if v := lookup(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.MaxRepos < 1 {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidConfig, "max_repos must be at least 1, got %d", c.MaxRepos)
	}
	if c.MaxCommitters < 1 {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidConfig, "max_committers must be at least 1, got %d", c.MaxCommitters)
	}
	if !report.ValidFormat(c.Format) {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidConfig, "format must be one of %v, got %q", report.Formats, c.Format)
	}
	if c.Timeout.Duration < 0 {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidConfig, "timeout must not be negative, got %s", c.Timeout)
	}
	if err := snitcherrors.ValidateURL(c.APIURL); err != nil {
		return snitcherrors.Wrap(snitcherrors.ErrCodeInvalidConfig, err, "api_url %q", c.APIURL)
	}
	return nil
}

// String summarizes the config without revealing the token.
func (c Config) String() string {
	token := "unset"
	if c.Token != "" {
		token = "set"
	}
	return fmt.Sprintf("api_url=%s token=%s max_repos=%d max_committers=%d format=%s timeout=%s",
		c.APIURL, token, c.MaxRepos, c.MaxCommitters, c.Format, c.Timeout)
}
