package doccover_test

import (
	"testing"

	"github.com/fwojciec/doccover"
	"github.com/stretchr/testify/assert"
)

func TestRuleSet_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rules   doccover.RuleSet
		wantErr bool
	}{
		{name: "empty", rules: doccover.RuleSet{}},
		{name: "negative header length", rules: doccover.RuleSet{HeaderMaxLength: -1}, wantErr: true},
		{
			name:  "valid keyword rule",
			rules: doccover.RuleSet{Keywords: []doccover.KeywordRule{{Triggers: []string{"vue"}, Keywords: []string{"Vue"}}}},
		},
		{
			name:    "keyword rule without triggers",
			rules:   doccover.RuleSet{Keywords: []doccover.KeywordRule{{Keywords: []string{"Vue"}}}},
			wantErr: true,
		},
		{
			name:    "keyword rule without keywords",
			rules:   doccover.RuleSet{Keywords: []doccover.KeywordRule{{Triggers: []string{"vue"}}}},
			wantErr: true,
		},
		{
			name:    "keyword rule with blank trigger",
			rules:   doccover.RuleSet{Keywords: []doccover.KeywordRule{{Triggers: []string{"vue", " "}, Keywords: []string{"Vue"}}}},
			wantErr: true,
		},
		{
			name:    "keyword rule with blank keyword",
			rules:   doccover.RuleSet{Keywords: []doccover.KeywordRule{{Triggers: []string{"vue"}, Keywords: []string{""}}}},
			wantErr: true,
		},
		{
			name:    "blank vocabulary label",
			rules:   doccover.RuleSet{Vocabulary: []string{"基础", ""}},
			wantErr: true,
		},
		{
			name:    "unnamed remediation area",
			rules:   doccover.RuleSet{Remediation: []doccover.RemediationArea{{Triggers: []string{"x"}}}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.rules.Validate()
			if tt.wantErr {
				assert.Equal(t, doccover.EINVALID, doccover.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, doccover.EINVALID, doccover.ErrorCode((&doccover.Document{}).Validate()))
	assert.NoError(t, (&doccover.Document{Name: "a.md"}).Validate())
	assert.Equal(t, 2, (&doccover.Document{Name: "a.md", Content: "a\nb\n"}).LineCount())
}
