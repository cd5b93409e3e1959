// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"image/png"
	"regexp"
)

const (
	// CompressionDefault uses the encoder's default compression.
	CompressionDefault PNGCompression = "default"
	// CompressionNone stores atlases uncompressed.
	CompressionNone PNGCompression = "none"
	// CompressionSpeed favours encoding speed.
	CompressionSpeed PNGCompression = "speed"
	// CompressionBest favours file size.
	CompressionBest PNGCompression = "best"

	// DefaultNamespace is the resource namespace of generated fonts.
	DefaultNamespace Namespace = "figura"
)

var (
	// ErrInvalidNamespace is the sentinel error wrapped by InvalidNamespaceError.
	ErrInvalidNamespace = errors.New("invalid namespace")
	// ErrInvalidPNGCompression is the sentinel error wrapped by InvalidPNGCompressionError.
	ErrInvalidPNGCompression = errors.New("invalid png compression")
	// ErrInvalidParallelLoads is the sentinel error wrapped by InvalidParallelLoadsError.
	ErrInvalidParallelLoads = errors.New("invalid max parallel loads")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	namespacePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)
)

type (
	// Namespace is the resource namespace texture locations are prefixed with.
	Namespace string

	// InvalidNamespaceError is returned when a Namespace contains characters
	// outside [a-z0-9_.-]. It wraps ErrInvalidNamespace for errors.Is().
	InvalidNamespaceError struct {
		Value Namespace
	}

	// PNGCompression selects the compression level of atlas textures.
	PNGCompression string

	// InvalidPNGCompressionError is returned when a PNGCompression value is
	// not recognized. It wraps ErrInvalidPNGCompression for errors.Is().
	InvalidPNGCompressionError struct {
		Value PNGCompression
	}

	// InvalidParallelLoadsError is returned for a negative load limit.
	InvalidParallelLoadsError struct {
		Value int
	}

	// InvalidConfigError collects the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the tool settings.
	Config struct {
		// Namespace prefixes texture locations in font descriptors.
		Namespace Namespace `json:"namespace" mapstructure:"namespace" toml:"namespace"`
		// PNG configures atlas encoding.
		PNG PNGConfig `json:"png" mapstructure:"png" toml:"png"`
		// MaxParallelLoads bounds concurrent image loads; 0 means unbounded.
		MaxParallelLoads int `json:"max_parallel_loads" mapstructure:"max_parallel_loads" toml:"max_parallel_loads"`
		// UI configures console output.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// PNGConfig configures atlas encoding.
	PNGConfig struct {
		Compression PNGCompression `json:"compression" mapstructure:"compression" toml:"compression"`
	}

	// UIConfig configures console output.
	UIConfig struct {
		// Verbose enables debug logging and error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		// Summary renders the build report after a run.
		Summary bool `json:"summary" mapstructure:"summary" toml:"summary"`
	}
)

// String returns the namespace.
func (n Namespace) String() string { return string(n) }

// IsValid returns whether the namespace only uses [a-z0-9_.-].
func (n Namespace) IsValid() (bool, []error) {
	if !namespacePattern.MatchString(string(n)) {
		return false, []error{&InvalidNamespaceError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidNamespaceError.
func (e *InvalidNamespaceError) Error() string {
	return fmt.Sprintf("invalid namespace %q: must match [a-z0-9_.-]+", e.Value)
}

// Unwrap returns ErrInvalidNamespace for errors.Is() compatibility.
func (e *InvalidNamespaceError) Unwrap() error { return ErrInvalidNamespace }

// String returns the compression name.
func (c PNGCompression) String() string { return string(c) }

// IsValid returns whether the PNGCompression is one of the defined levels.
func (c PNGCompression) IsValid() (bool, []error) {
	switch c {
	case CompressionDefault, CompressionNone, CompressionSpeed, CompressionBest:
		return true, nil
	default:
		return false, []error{&InvalidPNGCompressionError{Value: c}}
	}
}

// Level maps the setting to the image/png compression level. Unknown values
// map to png.DefaultCompression.
func (c PNGCompression) Level() png.CompressionLevel {
	switch c {
	case CompressionNone:
		return png.NoCompression
	case CompressionSpeed:
		return png.BestSpeed
	case CompressionBest:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

// Error implements the error interface for InvalidPNGCompressionError.
func (e *InvalidPNGCompressionError) Error() string {
	return fmt.Sprintf("invalid png compression %q (valid: default, none, speed, best)", e.Value)
}

// Unwrap returns ErrInvalidPNGCompression for errors.Is() compatibility.
func (e *InvalidPNGCompressionError) Unwrap() error { return ErrInvalidPNGCompression }

// Error implements the error interface for InvalidParallelLoadsError.
func (e *InvalidParallelLoadsError) Error() string {
	return fmt.Sprintf("invalid max_parallel_loads %d: must be 0 or more", e.Value)
}

// Unwrap returns ErrInvalidParallelLoads for errors.Is() compatibility.
func (e *InvalidParallelLoadsError) Unwrap() error { return ErrInvalidParallelLoads }

// IsValid returns whether the Config has valid fields.
// UI has only bool fields and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Namespace.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.PNG.Compression.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.MaxParallelLoads < 0 {
		errs = append(errs, &InvalidParallelLoadsError{Value: c.MaxParallelLoads})
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is()
// compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Namespace: DefaultNamespace,
		PNG: PNGConfig{
			Compression: CompressionDefault,
		},
		MaxParallelLoads: 0,
		UI: UIConfig{
			Verbose: false,
			Summary: false,
		},
	}
}
