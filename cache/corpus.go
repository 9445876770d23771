// Package cache memoizes corpus lookups in memory.
package cache

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/fwojciec/doccover"
	gocache "github.com/patrickmn/go-cache"
)

// Ensure Corpus implements interface.
var _ doccover.Corpus = (*Corpus)(nil)

// Corpus wraps a doccover.Corpus and remembers lookup results for the
// lifetime of the run. Keyword tables repeat the same keywords across many
// items, so most lookups after the first few are hits. Errors are not cached.
type Corpus struct {
	next  doccover.Corpus
	cache *gocache.Cache

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCorpus returns a caching decorator for next. Entries never expire.
func NewCorpus(next doccover.Corpus) *Corpus {
	return &Corpus{
		next:  next,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Names delegates to the wrapped corpus.
func (c *Corpus) Names() []string {
	return c.next.Names()
}

// Contains returns the cached answer for (keyword, name) when present.
func (c *Corpus) Contains(ctx context.Context, keyword, name string) (bool, error) {
	key := "contains\x00" + name + "\x00" + keyword
	if v, found := c.cache.Get(key); found {
		c.hits.Add(1)
		return v.(bool), nil
	}
	c.misses.Add(1)

	ok, err := c.next.Contains(ctx, keyword, name)
	if err != nil {
		return false, err
	}
	c.cache.Set(key, ok, gocache.NoExpiration)
	return ok, nil
}

// DocumentsContaining returns a copy of the cached names for keyword when present.
func (c *Corpus) DocumentsContaining(ctx context.Context, keyword string) ([]string, error) {
	key := "documents\x00" + keyword
	if v, found := c.cache.Get(key); found {
		c.hits.Add(1)
		return slices.Clone(v.([]string)), nil
	}
	c.misses.Add(1)

	names, err := c.next.DocumentsContaining(ctx, keyword)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, slices.Clone(names), gocache.NoExpiration)
	return names, nil
}

// Stats returns the number of cache hits and misses so far.
func (c *Corpus) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
