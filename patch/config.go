package patch

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/patchly/rewrite"
	"gopkg.in/yaml.v3"
)

// DefaultSource is the document the normalizer targets when no source is
// supplied, relative to the project root.
const DefaultSource = "services/database/queries/template-queries.js"

// Config controls a single patch run.
type Config struct {
	// Source is the URL or path of the document to normalize; relative
	// paths are resolved against the project root by the caller.
	Source string `yaml:"source"`
	Callee string `yaml:"callee"`
	Mapper string `yaml:"mapper"`
	// DryRun emits a unified diff instead of writing the document back.
	DryRun bool `yaml:"dryRun"`
	// Verify parses the rewritten document and aborts the write on syntax errors.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns the configuration matching the original maintenance run
func DefaultConfig() *Config {
	return &Config{
		Source: DefaultSource,
		Callee: rewrite.DefaultCallee,
		Mapper: rewrite.DefaultMapper,
		Verify: true,
	}
}

// Rule returns the normalization rule this configuration describes
func (c *Config) Rule() rewrite.Rule {
	return rewrite.Rule{Callee: c.Callee, Mapper: c.Mapper}
}

// LoadConfig reads a YAML configuration document; absent fields keep their defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	return config, nil
}
