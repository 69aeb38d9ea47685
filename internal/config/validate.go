package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/coursecraft/snipmint/internal/variant"
)

var (
	// ErrEmptyLanguage indicates a missing minted language
	ErrEmptyLanguage = errors.New("empty language")

	// ErrInvalidVariant indicates an unknown default output variant
	ErrInvalidVariant = errors.New("invalid output variant")

	// ErrInvalidExtension indicates a template extension without a leading dot
	ErrInvalidExtension = errors.New("invalid template extension")

	// ErrEmptyCodeDir indicates a missing code directory setting
	ErrEmptyCodeDir = errors.New("empty code directory")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateExtract(&cfg.Extract); err != nil {
		errs = append(errs, err)
	}
	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateExtract(c *ExtractConfig) error {
	var errs []error

	if strings.TrimSpace(c.Language) == "" {
		errs = append(errs, ErrEmptyLanguage)
	}
	if _, err := variant.Parse(c.Variant); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidVariant, c.Variant))
	}
	for _, ext := range c.TemplateExtensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("%w: %q (want leading dot)", ErrInvalidExtension, ext))
		}
	}

	return errors.Join(errs...)
}

func validatePaths(c *PathsConfig) error {
	var errs []error

	if strings.TrimSpace(c.CodeDir) == "" {
		errs = append(errs, ErrEmptyCodeDir)
	}
	for _, pattern := range append(append([]string{}, c.Include...), c.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	return errors.Join(errs...)
}
