package verify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/patchly/verify"
)

func TestChecker_Verify(t *testing.T) {
	tests := []struct {
		description string
		source      string
		expectErr   bool
	}{
		{
			description: "well formed module",
			source: `const query = 'SELECT * FROM templates WHERE id = $1';

async function getTemplate(id) {
  return executeQuery(query, [id], mapRowToObject);
}

module.exports = { getTemplate };
`,
		},
		{
			description: "multi line call",
			source: `executeQuery(query,
  [
    id,
    name
  ]
, mapRowToObject);
`,
		},
		{
			description: "unbalanced parenthesis",
			source:      "executeQuery(query, [id], mapRowToObject;\n",
			expectErr:   true,
		},
		{
			description: "dangling brace",
			source:      "function broken( {\n",
			expectErr:   true,
		},
		{
			description: "empty document",
			source:      "",
		},
	}

	checker := verify.New()
	for _, testCase := range tests {
		err := checker.Verify(context.Background(), []byte(testCase.source))
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
	}
}
