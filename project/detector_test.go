package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/patchly/project"
)

func TestDetector_Resolve(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "services", "database")
	assert.Nil(t, os.MkdirAll(nested, 0o755))
	assert.Nil(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644))

	detector := project.New()

	tests := []struct {
		description string
		baseDir     string
		target      string
		expect      string
	}{
		{
			description: "relative path from project root",
			baseDir:     root,
			target:      "services/database/queries/template-queries.js",
			expect:      filepath.Join(root, "services", "database", "queries", "template-queries.js"),
		},
		{
			description: "relative path from nested folder resolves against marker",
			baseDir:     nested,
			target:      "services/database/queries/template-queries.js",
			expect:      filepath.Join(root, "services", "database", "queries", "template-queries.js"),
		},
		{
			description: "absolute path bypasses detection",
			baseDir:     nested,
			target:      filepath.Join(root, "other.js"),
			expect:      filepath.Join(root, "other.js"),
		},
		{
			description: "URL with scheme bypasses detection",
			baseDir:     nested,
			target:      "mem://localhost/app/queries.js",
			expect:      "mem://localhost/app/queries.js",
		},
	}

	for _, testCase := range tests {
		actual, err := detector.Resolve(testCase.baseDir, testCase.target)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestDetector_ResolveWithoutMarker(t *testing.T) {
	base := t.TempDir()
	actual, err := project.New().Resolve(base, "queries.js")
	assert.Nil(t, err)
	assert.EqualValues(t, filepath.Join(base, "queries.js"), actual)
}
