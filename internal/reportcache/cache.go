// Package reportcache keeps recently produced fit reports in memory.
// Evaluation is deterministic, so a report is valid for as long as its
// inputs are unchanged.
package reportcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	json "github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"fit-engine/internal/model"
)

type Cache struct {
	reports *lru.Cache[string, model.FitReport]
}

// New creates a cache holding up to size reports. A size of zero or less
// disables caching and returns a nil *Cache, which is safe to use.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, nil
	}
	reports, err := lru.New[string, model.FitReport](size)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	return &Cache{reports: reports}, nil
}

type keyInput struct {
	Garment     model.Garment          `json:"g"`
	Body        model.BodyMeasurements `json:"b"`
	Preferences model.FitPreferences   `json:"p"`
	Mode        model.Mode             `json:"m"`
}

// Key derives the cache key for a set of evaluation inputs. ok is false when
// the inputs cannot be encoded (NaN or infinite values); such inputs must not
// be cached.
func Key(g model.Garment, body model.BodyMeasurements, prefs model.FitPreferences, mode model.Mode) (key string, ok bool) {
	b, err := json.Marshal(keyInput{Garment: g, Body: body, Preferences: prefs, Mode: mode})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), true
}

// Get returns a copy of the cached report for key.
func (c *Cache) Get(key string) (model.FitReport, bool) {
	if c == nil {
		return model.FitReport{}, false
	}
	r, ok := c.reports.Get(key)
	if !ok {
		return model.FitReport{}, false
	}
	return r.Clone(), true
}

func (c *Cache) Add(key string, r model.FitReport) {
	if c == nil {
		return
	}
	c.reports.Add(key, r.Clone())
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.reports.Len()
}
