package doccover

import (
	"slices"
	"strings"
)

// RuleSet holds the overridable rule tables of a run. Empty fields keep the
// built-in defaults of the package that owns the table.
type RuleSet struct {
	// Vocabulary lists category labels that always mark a header line.
	Vocabulary []string `yaml:"vocabulary,omitempty"`

	// HeaderMaxLength is the rune length below which an unnumbered line without a
	// question mark counts as a header.
	HeaderMaxLength int `yaml:"header_max_length,omitempty"`

	Keywords    []KeywordRule     `yaml:"keywords,omitempty"`
	Remediation []RemediationArea `yaml:"remediation,omitempty"`

	// Exclude lists corpus document names to omit.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Validate returns an error if the rule set contains invalid fields.
func (r *RuleSet) Validate() error {
	if r.HeaderMaxLength < 0 {
		return Errorf(EINVALID, "header_max_length must not be negative")
	}
	if hasBlank(r.Vocabulary) {
		return Errorf(EINVALID, "vocabulary contains a blank label")
	}
	for i, rule := range r.Keywords {
		if len(rule.Triggers) == 0 {
			return Errorf(EINVALID, "keyword rule %d has no triggers", i+1)
		}
		if len(rule.Keywords) == 0 {
			return Errorf(EINVALID, "keyword rule %d has no keywords", i+1)
		}
		// A blank trigger matches every title; a blank keyword matches nothing.
		if hasBlank(rule.Triggers) {
			return Errorf(EINVALID, "keyword rule %d has a blank trigger", i+1)
		}
		if hasBlank(rule.Keywords) {
			return Errorf(EINVALID, "keyword rule %d has a blank keyword", i+1)
		}
	}
	for i, area := range r.Remediation {
		if area.Name == "" {
			return Errorf(EINVALID, "remediation area %d has no name", i+1)
		}
		if hasBlank(area.Triggers) {
			return Errorf(EINVALID, "remediation area %q has a blank trigger", area.Name)
		}
	}
	return nil
}

func hasBlank(values []string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.TrimSpace(v) == ""
	})
}
