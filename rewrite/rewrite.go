// Package rewrite normalizes call sites of a query-execution helper in raw
// source text. Matching is deliberately surface-level pattern matching rather
// than parsing: it preserves the document byte-for-byte outside matched call
// sites, at the cost of missing call shapes the pattern does not recognize.
package rewrite

import (
	"regexp"
	"strings"
)

// Rewriter applies a single normalization Rule to source text.
type Rewriter struct {
	rule    Rule
	pattern *regexp.Regexp
}

// Report summarizes one normalization pass.
type Report struct {
	Rewritten  int // call sites that gained the mapper argument
	Normalized int // matched call sites left as-is, mapper already present
}

// New creates a Rewriter for the supplied rule
func New(rule Rule) (*Rewriter, error) {
	rule.Init()
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	pattern, err := rule.compile()
	if err != nil {
		return nil, err
	}
	return &Rewriter{rule: rule, pattern: pattern}, nil
}

// Rule returns the rule this rewriter applies
func (r *Rewriter) Rule() Rule {
	return r.rule
}

// Normalize rewrites every recognized two-argument call site to the
// three-argument form and returns the resulting text. Text outside matched
// call sites is reproduced unchanged; within a match the only alteration is
// the insertion of ", <mapper>" before the call's closing parenthesis.
// Running Normalize on its own output is a no-op.
func (r *Rewriter) Normalize(text string) string {
	normalized, _ := r.NormalizeWithReport(text)
	return normalized
}

// NormalizeWithReport normalizes text and reports how many call sites were
// rewritten and how many were already in the target form.
func (r *Rewriter) NormalizeWithReport(text string) (string, *Report) {
	report := &Report{}
	normalized := r.pattern.ReplaceAllStringFunc(text, func(match string) string {
		if strings.Contains(match, r.rule.Mapper) {
			report.Normalized++
			return match
		}
		report.Rewritten++
		// the match always ends with the call's closing parenthesis
		return match[:len(match)-1] + ", " + r.rule.Mapper + ")"
	})
	return normalized, report
}
