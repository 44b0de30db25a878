package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configurations in priority order. The first
// non-zero value of each field wins when they are merged by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// add appends the result of parse, or records its error under the source name.
func (b *configBuilder) add(source string, parse func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := parse()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error reading configuration: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", parseEnv)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) { return parseFlags(args) })
}

// withJSON loads the file named by the first source that set JSONFilePath.
// It is a no-op when no source did.
func (b *configBuilder) withJSON() *configBuilder {
	for _, cfg := range b.configs {
		if path := cfg.JSONFilePath; path != "" {
			return b.add("json "+path, func() (*StructuredConfig, error) { return parseJSON(path) })
		}
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func() (*StructuredConfig, error) { return defaultConfig(), nil })
}
