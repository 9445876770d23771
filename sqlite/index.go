package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doccover"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ doccover.Corpus = (*Index)(nil)

// Index implements doccover.Corpus with SQL containment queries.
type Index struct {
	db    *DB
	names []string
}

// NewIndex creates a new Index over db.
func NewIndex(db *DB) *Index {
	return &Index{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Load inserts docs in a single transaction. Returns EINVALID if a document
// is invalid or two documents share a name.
func (i *Index) Load(ctx context.Context, docs []*doccover.Document) error {
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return doccover.Errorf(doccover.EINVALID, "duplicate document name %q", d.Name)
		}
		seen[d.Name] = true
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	for _, d := range docs {
		hash := d.ContentHash
		if hash == "" {
			hash = hashContent(d.Content)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO corpus_documents (id, name, path, format, content, content_hash)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), d.Name, d.Path, d.Format, d.Content, hash); err != nil {
			return fmt.Errorf("insert document %q: %w", d.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}

	names, err := i.queryNames(ctx, `SELECT name FROM corpus_documents ORDER BY name`)
	if err != nil {
		return err
	}
	i.names = names
	return nil
}

// Names returns document names in lexical order as of the last Load.
func (i *Index) Names() []string {
	return slices.Clone(i.names)
}

// Contains reports whether the named document contains keyword.
func (i *Index) Contains(ctx context.Context, keyword, name string) (bool, error) {
	var found bool
	err := i.db.QueryRowContext(ctx, `
		SELECT instr(content, ?) > 0
		FROM corpus_documents
		WHERE name = ?
	`, keyword, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, doccover.Errorf(doccover.ENOTFOUND, "document %q not found", name)
	}
	if err != nil {
		return false, err
	}
	return found, nil
}

// DocumentsContaining returns the names of documents containing keyword.
func (i *Index) DocumentsContaining(ctx context.Context, keyword string) ([]string, error) {
	return i.queryNames(ctx, `
		SELECT name
		FROM corpus_documents
		WHERE instr(content, ?) > 0
		ORDER BY name
	`, keyword)
}

func (i *Index) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
