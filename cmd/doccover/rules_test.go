package main_test

import (
	"bytes"
	"testing"

	main "github.com/fwojciec/doccover/cmd/doccover"
	"github.com/fwojciec/doccover/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The printed defaults are a valid rules file that changes nothing.
func TestDefaultRuleSet_IsLoadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, yaml.EncodeRuleSet(&buf, main.DefaultRuleSet()))

	got, err := yaml.ParseRuleSet(&buf)

	require.NoError(t, err)
	assert.Equal(t, main.DefaultRuleSet(), got)
}

func TestRulesCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps(nil)

	require.NoError(t, (&main.RulesCmd{}).Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "vocabulary:")
	assert.Contains(t, out, "header_max_length: 30")
	assert.Contains(t, out, "keywords:")
	assert.Contains(t, out, "remediation:")
	assert.Contains(t, out, "README.md")
}
