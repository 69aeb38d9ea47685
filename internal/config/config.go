// Package config loads and validates the snipmint project
// configuration from .snipmint/config.yml with environment overrides.
package config

import (
	"path/filepath"
	"strings"
)

// Config represents the complete snipmint configuration.
// It can be loaded from .snipmint/config.yml with environment variable
// overrides.
type Config struct {
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
}

// ExtractConfig configures the projection engine.
type ExtractConfig struct {
	Language           string   `yaml:"language" mapstructure:"language"`                       // minted lexer name
	Variant            string   `yaml:"variant" mapstructure:"variant"`                         // default output variant
	TemplateExtensions []string `yaml:"template_extensions" mapstructure:"template_extensions"` // extensions opting in to templating
}

// PathsConfig defines which files belong to the course code tree.
type PathsConfig struct {
	CodeDir string   `yaml:"code_dir" mapstructure:"code_dir"` // subdirectory packaged for distribution
	Include []string `yaml:"include" mapstructure:"include"`   // glob patterns for code files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`     // glob patterns to ignore
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			Language:           "python",
			Variant:            "code",
			TemplateExtensions: []string{".py"},
		},
		Paths: PathsConfig{
			CodeDir: "code",
			Include: []string{
				"**/*.py",
				"**/*.go",
				"**/*.js",
				"**/*.ts",
				"**/*.rs",
				"**/*.c",
				"**/*.h",
			},
			Ignore: []string{
				"__pycache__/**",
				"*.pyc",
				".git/**",
				"node_modules/**",
				".venv/**",
			},
		},
	}
}

// TemplatesFile reports whether a file opts in to the templating pass
// under this configuration.
func (c *Config) TemplatesFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extract.TemplateExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
