// Package fs loads checklists and corpus documents from the local
// filesystem.
package fs

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doccover"
)

// ContentHash returns the xxHash of content as a hex string.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Fingerprint hashes the names and content hashes of docs in the given
// order. Two runs over the same corpus snapshot share a fingerprint.
func Fingerprint(docs []*doccover.Document) string {
	h := xxhash.New()
	for _, d := range docs {
		hash := d.ContentHash
		if hash == "" {
			hash = ContentHash(d.Content)
		}
		_, _ = h.WriteString(d.Name)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(hash)
		_, _ = h.WriteString("\x00")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// ReadChecklist returns the text of the checklist at path. Returns ENOTFOUND
// if the file does not exist and EINVALID if it cannot be read, is not UTF-8
// or is blank.
func ReadChecklist(path string) (string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", doccover.Errorf(doccover.ENOTFOUND, "checklist not found: %s", path)
	}
	if err != nil {
		return "", doccover.Errorf(doccover.EINVALID, "checklist unreadable: %v", err)
	}
	if !utf8.Valid(b) {
		return "", doccover.Errorf(doccover.EINVALID, "checklist is not valid UTF-8: %s", path)
	}
	text := string(b)
	if strings.TrimSpace(strings.TrimPrefix(text, "\ufeff")) == "" {
		return "", doccover.Errorf(doccover.EINVALID, "checklist is empty: %s", path)
	}
	return text, nil
}
