package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultInputPath  = "brainfuck.in"
	defaultOutputPath = "brainfuck.out.c"
	defaultConfigPath = "bf2c.yml"
)

var errConfigNotFound = errors.New("config file not found")

// Config holds the settings a run can take from bf2c.yml. Flags given on the
// command line win over the file. Relative input and output paths in a config
// file are resolved against the directory holding that file.
type Config struct {
	Path            string
	Input           string
	Output          string
	Header          []string
	LoopDiagnostics bool
	Verify          bool
}

type configFile struct {
	Input           string    `yaml:"input"`
	Output          string    `yaml:"output"`
	Header          *[]string `yaml:"header"`
	LoopDiagnostics bool      `yaml:"loop_diagnostics"`
	Verify          bool      `yaml:"verify"`
}

// ConfigError aggregates config validation failures.
type ConfigError struct {
	Path   string
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func DefaultConfig() Config {
	return Config{
		Input:  defaultInputPath,
		Output: defaultOutputPath,
		Header: append([]string(nil), defaultHeader...),
	}
}

// LoadConfig reads a YAML config and layers it over DefaultConfig. A missing
// file yields an error matching errConfigNotFound.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", absPath, errConfigNotFound)
		}
		return Config{}, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	return decodeConfig(file, absPath)
}

func decodeConfig(r io.Reader, path string) (Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: %s is empty", path)
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := raw.toConfig(path)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) Config {
	cfg := DefaultConfig()
	cfg.Path = path
	base := filepath.Dir(path)
	if raw.Input != "" {
		cfg.Input = resolveAgainst(base, raw.Input)
	}
	if raw.Output != "" {
		cfg.Output = resolveAgainst(base, raw.Output)
	}
	if raw.Header != nil {
		cfg.Header = append([]string(nil), (*raw.Header)...)
	}
	cfg.LoopDiagnostics = raw.LoopDiagnostics
	cfg.Verify = raw.Verify
	return cfg
}

func resolveAgainst(base, path string) string {
	if strings.TrimSpace(path) == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func (c Config) validate() error {
	var issues []string
	if strings.TrimSpace(c.Input) == "" {
		issues = append(issues, "input must not be blank")
	}
	if strings.TrimSpace(c.Output) == "" {
		issues = append(issues, "output must not be blank")
	}
	if c.Input != "" && c.Output != "" && filepath.Clean(c.Input) == filepath.Clean(c.Output) {
		issues = append(issues, fmt.Sprintf("input and output both name %q", c.Input))
	}
	if len(issues) > 0 {
		return &ConfigError{Path: c.Path, Issues: issues}
	}
	return nil
}

// TranslatorOptions maps the config onto translator options.
func (c Config) TranslatorOptions() []Option {
	return []Option{
		WithHeader(c.Header...),
		WithLoopDiagnostics(c.LoopDiagnostics),
	}
}
