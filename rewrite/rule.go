package rewrite

import (
	"fmt"
	"regexp"
)

const (
	// DefaultCallee is the query-execution helper whose call sites are normalized.
	DefaultCallee = "executeQuery"
	// DefaultMapper is the row-mapping function appended as the third argument.
	DefaultMapper = "mapRowToObject"
)

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Rule describes a call-site normalization: every two-argument invocation of
// Callee whose second argument is an array literal gains Mapper as a third
// argument, unless Mapper already occurs within the matched call.
type Rule struct {
	Callee string
	Mapper string
}

// Init fills in defaults for absent fields
func (r *Rule) Init() {
	if r.Callee == "" {
		r.Callee = DefaultCallee
	}
	if r.Mapper == "" {
		r.Mapper = DefaultMapper
	}
}

// Validate checks that both names are identifier-shaped
func (r *Rule) Validate() error {
	if !identifier.MatchString(r.Callee) {
		return fmt.Errorf("invalid callee identifier: %q", r.Callee)
	}
	if !identifier.MatchString(r.Mapper) {
		return fmt.Errorf("invalid mapper identifier: %q", r.Mapper)
	}
	return nil
}

// compile builds the call-site matcher: the callee name, a lazy single-line
// first argument, and an array-literal second argument that may span lines
// and contain nested brackets but no parentheses. Excluding parentheses from
// the array body keeps a lazy match from running past the call's closing
// parenthesis into a neighboring call site.
func (r *Rule) compile() (*regexp.Regexp, error) {
	expr := regexp.QuoteMeta(r.Callee) + `\(\s*(.*?),\s*(\[[^()]*?\])\s*\)`
	return regexp.Compile(expr)
}
