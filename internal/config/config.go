// Package config loads and validates the md2site YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length and range limits.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxNameLength = 100  // Template name
	MaxWorkers    = 64   // Upper bound for build.workers
)

// Default directories, relative to the working directory.
const (
	DefaultContentDir = "content"
	DefaultOutputDir  = "public"
	DefaultStaticDir  = "static"
)

// Engines accepted by render.engine. Kept in sync with pipeline engine names.
var validEngines = []string{"native", "goldmark"}

// Config holds all configuration for a site build.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Output   OutputConfig   `yaml:"output"`
	Static   StaticConfig   `yaml:"static"`
	Template TemplateConfig `yaml:"template"`
	Render   RenderConfig   `yaml:"render"`
	Build    BuildConfig    `yaml:"build"`
}

// ContentConfig defines where Markdown sources live.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where generated pages are written.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	Clean bool   `yaml:"clean"` // Remove the output dir before building
}

// StaticConfig defines the directory copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Empty or missing directory = nothing to copy
}

// TemplateConfig selects the page template.
// Path wins over Name; both empty = embedded default template.
type TemplateConfig struct {
	Name      string `yaml:"name"`      // Name in the embedded or asset-path templates
	Path      string `yaml:"path"`      // Explicit template file
	AssetPath string `yaml:"assetPath"` // Directory holding templates/{name}.html
}

// RenderConfig defines Markdown rendering options.
type RenderConfig struct {
	Engine       string `yaml:"engine"`       // "native" (default) or "goldmark"
	RewriteLinks bool   `yaml:"rewriteLinks"` // Relative .md links -> .html
}

// BuildConfig defines build concurrency.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto (GOMAXPROCS)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct{ name, value string }{
		{"content.dir", c.Content.Dir},
		{"output.dir", c.Output.Dir},
		{"static.dir", c.Static.Dir},
		{"template.path", c.Template.Path},
		{"template.assetPath", c.Template.AssetPath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}

	if c.Render.Engine != "" && !contains(validEngines, strings.ToLower(c.Render.Engine)) {
		return fmt.Errorf("%w: render.engine %q (must be %s)", ErrInvalidValue, c.Render.Engine, strings.Join(validEngines, " or "))
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	if c.Output.Clean && c.Output.Dir != "" && c.Content.Dir != "" &&
		filepath.Clean(c.Output.Dir) == filepath.Clean(c.Content.Dir) {
		return fmt.Errorf("%w: output.clean would delete content.dir %q", ErrInvalidValue, c.Content.Dir)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultConfig returns the conventional layout: content/ -> public/,
// static/ copied, embedded template, native engine.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: DefaultContentDir},
		Output:  OutputConfig{Dir: DefaultOutputDir},
		Static:  StaticConfig{Dir: DefaultStaticDir},
		Render:  RenderConfig{Engine: "native"},
	}
}

// ApplyDefaults fills empty fields with DefaultConfig values.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Content.Dir == "" {
		c.Content.Dir = def.Content.Dir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Static.Dir == "" {
		c.Static.Dir = def.Static.Dir
	}
	if c.Render.Engine == "" {
		c.Render.Engine = def.Render.Engine
	}
	c.Render.Engine = strings.ToLower(c.Render.Engine)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Empty fields are filled from DefaultConfig.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := yamlutil.UnmarshalFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2site/
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2site", name+ext))
		}
	}

	return paths
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
