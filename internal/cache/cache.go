// Package cache wraps hashicorp/golang-lru for the Template Expander's
// include-file cache (SPEC_FULL.md §3): a fragment referenced by many
// manifests in one run is read and minified only once.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// Include caches expanded include-file contents keyed by path, valid
// only as long as the source file's modification time matches.
type Include struct {
	lru *lru.Cache
}

type entry struct {
	modTime time.Time
	data    string
}

// NewInclude builds an Include cache holding up to size entries.
func NewInclude(size int) (*Include, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Include{lru: c}, nil
}

// Get returns the cached expansion of path if present and still fresh
// relative to modTime.
func (c *Include) Get(path string, modTime time.Time) (string, bool) {
	v, ok := c.lru.Get(path)
	if !ok {
		return "", false
	}
	e := v.(entry)
	if !e.modTime.Equal(modTime) {
		c.lru.Remove(path)
		return "", false
	}
	return e.data, true
}

// Put stores or replaces path's cached expansion.
func (c *Include) Put(path string, modTime time.Time, data string) {
	c.lru.Add(path, entry{modTime: modTime, data: data})
}

// Len reports the number of entries currently cached.
func (c *Include) Len() int { return c.lru.Len() }
