// Package config loads csvtab defaults from a YAML file.
//
// Every setting can also be given on the command line; flags that are set
// explicitly win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a config file path
const EnvConfigPath = "CSVTAB_CONFIG"

// Config holds output and input defaults.
type Config struct {
	Format    string `yaml:"format"`
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	MaxWidth  int    `yaml:"max_width"`
	Verbose   bool   `yaml:"verbose"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Format:    "table",
		Delimiter: ",",
		Encoding:  "utf-8",
	}
}

// Load reads configuration from path with ${VAR} interpolation.
//
// An empty path falls back to the CSVTAB_CONFIG environment variable; when
// neither is set the defaults are returned. Fields missing from the file
// keep their default values. Values are not validated here so that command
// line overrides can be applied first; call Validate on the final config.
func Load(path string, getenv func(string) string) (*Config, error) {
	if path == "" {
		path = getenv(EnvConfigPath)
	}

	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	data = interpolateEnv(data, getenv)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []string

	switch c.Format {
	case "table", "csv", "json", "jsonl":
	default:
		errs = append(errs, fmt.Sprintf("unsupported format %q (supported: table, csv, jsonl)", c.Format))
	}

	if _, err := c.DelimiterRune(); err != nil {
		errs = append(errs, err.Error())
	}

	if c.MaxWidth < 0 {
		errs = append(errs, fmt.Sprintf("max_width must be non-negative, got %d", c.MaxWidth))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// DelimiterRune returns the field delimiter as a single rune.
// "tab" and the two-character escape `\t` both mean a tab.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "tab", `\t`:
		return '\t', nil
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}

	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return r, nil
}

// envPattern matches ${VAR} and ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} references with values from getenv
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}

		return []byte(value)
	})
}
