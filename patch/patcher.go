// Package patch applies a call-site normalization rule to a single document:
// read whole content, normalize, write back. The write is staged through a
// sibling temp location and moved into place so a crash mid-write cannot
// leave the document truncated.
package patch

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/patchly/rewrite"
)

const tempSuffix = ".patchly~"

// Verifier checks that a rewritten document still parses.
type Verifier interface {
	Verify(ctx context.Context, source []byte) error
}

// Report describes the outcome of one patch run.
type Report struct {
	Source            string
	Rewritten         int
	Normalized        int
	Changed           bool
	InputFingerprint  uint64
	OutputFingerprint uint64
	Diff              string // unified diff, populated on dry runs only
}

// Patcher normalizes query-helper call sites within one document.
type Patcher struct {
	config   *Config
	fs       afs.Service
	rewriter *rewrite.Rewriter
	verifier Verifier
}

// New creates a Patcher for the supplied configuration; verifier may be nil
func New(config *Config, verifier Verifier) (*Patcher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	rewriter, err := rewrite.New(config.Rule())
	if err != nil {
		return nil, err
	}
	return &Patcher{
		config:   config,
		fs:       afs.New(),
		rewriter: rewriter,
		verifier: verifier,
	}, nil
}

// Apply reads the configured document, normalizes call sites and writes the
// result back in place. On dry runs nothing is written and the report carries
// a unified diff. Unchanged content skips the write entirely.
func (p *Patcher) Apply(ctx context.Context) (*Report, error) {
	source := p.config.Source
	data, err := p.fs.DownloadWithURL(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", source, err)
	}
	normalized, stats := p.rewriter.NormalizeWithReport(string(data))
	report := &Report{
		Source:     source,
		Rewritten:  stats.Rewritten,
		Normalized: stats.Normalized,
	}
	if report.InputFingerprint, err = Fingerprint(data); err != nil {
		return nil, fmt.Errorf("failed to fingerprint %v: %w", source, err)
	}
	if report.OutputFingerprint, err = Fingerprint([]byte(normalized)); err != nil {
		return nil, fmt.Errorf("failed to fingerprint rewritten %v: %w", source, err)
	}
	report.Changed = report.InputFingerprint != report.OutputFingerprint

	if p.config.DryRun {
		if report.Changed {
			if report.Diff, err = unifiedDiff(source, string(data), normalized); err != nil {
				return nil, fmt.Errorf("failed to diff %v: %w", source, err)
			}
		}
		return report, nil
	}
	if !report.Changed {
		return report, nil
	}
	if p.config.Verify && p.verifier != nil {
		if err := p.verifier.Verify(ctx, []byte(normalized)); err != nil {
			return nil, fmt.Errorf("refusing to write %v: %w", source, err)
		}
	}
	if err := p.write(ctx, source, []byte(normalized)); err != nil {
		return nil, err
	}
	return report, nil
}

func (p *Patcher) write(ctx context.Context, source string, data []byte) error {
	temp := source + tempSuffix
	if err := p.fs.Upload(ctx, temp, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %v: %w", temp, err)
	}
	if err := p.fs.Move(ctx, temp, source); err != nil {
		return fmt.Errorf("failed to replace %v: %w", source, err)
	}
	return nil
}

func unifiedDiff(source, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: source,
		ToFile:   source,
		Context:  3,
	})
}
