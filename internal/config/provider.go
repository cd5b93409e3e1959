// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific pack config file when set.
	ConfigFilePath string
	// InputDir is searched for emojipack.cue when ConfigFilePath is empty.
	InputDir string
	// ConfigDirPath overrides the user config directory lookup when set.
	ConfigDirPath string
	// Overrides are applied last, keyed by setting path (e.g. "namespace",
	// "ui.verbose").
	Overrides map[string]any
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
	LoadWithSources(ctx context.Context, opts LoadOptions) (*Loaded, error)
}

// Loaded is a configuration together with the files it was read from.
type Loaded struct {
	Config *Config
	// Sources lists the merged config files, lowest precedence first.
	Sources []string
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads configuration from the requested source.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return NewProvider().Load(ctx, opts)
}

// LoadWithSources is Load that also reports which config files were merged.
func (p *fileProvider) LoadWithSources(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	cfg, sources, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Sources: sources}, nil
}

// LoadWithSources is Load that also reports which config files were merged.
func LoadWithSources(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	return NewProvider().LoadWithSources(ctx, opts)
}
