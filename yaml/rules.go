// Package yaml reads and writes rule set files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/doccover"
	"gopkg.in/yaml.v3"
)

// ParseRuleSet decodes a rule set from r. Unknown fields are rejected.
// Empty input yields an empty rule set. Returns EINVALID on malformed or
// invalid input.
func ParseRuleSet(r io.Reader) (*doccover.RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rs doccover.RuleSet
	if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
		return nil, doccover.Errorf(doccover.EINVALID, "invalid rules file: %v", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// LoadRuleSet reads the rule set file at path. Returns ENOTFOUND if the file
// does not exist.
func LoadRuleSet(path string) (*doccover.RuleSet, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, doccover.Errorf(doccover.ENOTFOUND, "rules file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseRuleSet(f)
}

// EncodeRuleSet writes rs to w as YAML.
func EncodeRuleSet(w io.Writer, rs *doccover.RuleSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rs); err != nil {
		return err
	}
	return enc.Close()
}
