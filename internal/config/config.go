package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for a single conversion run.
// It is populated from command-line flags and, optionally, an html2cheader.yaml file.
type Config struct {
	// Input is the path of the text file to embed.
	Input string `yaml:"input" mapstructure:"input"`
	// Output is the path of the header file to generate.
	Output string `yaml:"output" mapstructure:"output"`
	// Header controls the shape of the generated declaration.
	Header HeaderConfig `yaml:"header" mapstructure:"header"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// HeaderConfig controls how the generated header is rendered.
type HeaderConfig struct {
	// Type is the declared type of the variable (e.g., "String", "const char*").
	Type string `yaml:"type" mapstructure:"type"`
	// Name overrides the identifier derived from the input file name.
	Name string `yaml:"name,omitempty" mapstructure:"name"`
	// Guard selects the include guard style: "pragma" or "ifndef".
	Guard string `yaml:"guard" mapstructure:"guard"`
	// EscapeBackslashes doubles every backslash in the input before quoting.
	EscapeBackslashes bool `yaml:"escape_backslashes" mapstructure:"escape_backslashes"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`
	// Path is the log file path. Logs go to stderr when empty.
	Path string `yaml:"path,omitempty" mapstructure:"path"`
}

const (
	DefaultType  = "String"
	GuardPragma  = "pragma"
	GuardIfndef  = "ifndef"
	DefaultLevel = "info"

	// DefaultFile is the config file name looked up in the working directory.
	DefaultFile = "html2cheader.yaml"
)

// UsageError reports a missing or malformed command-line argument.
// No file I/O is attempted when a run fails with a UsageError.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// IsUsageError reports whether err is, or wraps, a *UsageError.
func IsUsageError(err error) bool {
	var uerr *UsageError
	return errors.As(err, &uerr)
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is a valid C identifier.
func IsIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// Validate checks the configuration for errors.
// Missing input or output paths are reported as *UsageError.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Input == "" {
		return &UsageError{Msg: "required flag \"input\" not set"}
	}
	if config.Output == "" {
		return &UsageError{Msg: "required flag \"output\" not set"}
	}
	same, err := SameFile(config.Input, config.Output)
	if err != nil {
		return err
	}
	if same {
		return fmt.Errorf("input and output must be different files: %s", config.Input)
	}

	if strings.TrimSpace(config.Header.Type) == "" {
		return fmt.Errorf("header type cannot be empty")
	}
	if strings.ContainsAny(config.Header.Type, "\r\n") {
		return fmt.Errorf("header type must be a single line: %q", config.Header.Type)
	}

	if config.Header.Name != "" && !IsIdentifier(config.Header.Name) {
		return fmt.Errorf("invalid identifier: %q (must match [A-Za-z_][A-Za-z0-9_]*)", config.Header.Name)
	}

	switch config.Header.Guard {
	case GuardPragma, GuardIfndef:
		// ok
	default:
		return fmt.Errorf("invalid guard style: %s (allowed: %s, %s)", config.Header.Guard, GuardPragma, GuardIfndef)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// SameFile reports whether paths a and b name the same file. Paths are
// compared in absolute, cleaned form; when both exist, links and aliases
// are resolved with os.SameFile.
func SameFile(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	fa, err := os.Stat(a)
	if err != nil {
		return false, nil
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false, nil
	}
	return os.SameFile(fa, fb), nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Header.Type == "" {
		config.Header.Type = DefaultType
	}
	if config.Header.Guard == "" {
		config.Header.Guard = GuardPragma
	}
	if config.Logging.Level == "" {
		config.Logging.Level = DefaultLevel
	}
}

// Load reads a YAML config file. Unknown keys are rejected so that typos
// such as "ouput:" fail loudly instead of being ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// A file with no documents is an empty config.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Sample returns the config written by "html2cheader init".
func Sample() *Config {
	cfg := &Config{
		Input:  "index.html",
		Output: "index_html.h",
	}
	ApplyDefaults(cfg)
	return cfg
}

// Marshal encodes cfg as YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
