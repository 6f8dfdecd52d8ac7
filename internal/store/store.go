// Package store provides durable, bounded, ordered persistence for named
// collections of JSON-serializable records. The concrete backend (local
// files, MongoDB, or Postgres) is chosen once at startup; all backends
// present identical semantics to callers.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Backend stores and retrieves the serialized contents of a whole
// collection under its name. A collection that has never been written
// yields (nil, nil), not an error.
type Backend interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, data []byte) error
	Ping(ctx context.Context) error
	Name() string
}

// Record is any entity that can live in a Collection.
type Record interface {
	RecordID() string
}

// Collection is a bounded, ordered collection of records of one kind.
// Writes trim to the most recent maxSize entries. Operations are
// serialized per collection, so in-process read-modify-write updates do
// not race each other; cross-process writers remain last-write-wins.
//
// Backend failures never reach callers: reads degrade to an empty result
// and writes are silently lost. Every swallowed failure is logged and
// reported to Sentry so the degradation is observable operationally.
type Collection[T Record] struct {
	backend Backend
	name    string
	maxSize int

	mu sync.Mutex
}

// NewCollection creates a collection with the given name and size cap.
func NewCollection[T Record](backend Backend, name string, maxSize int) *Collection[T] {
	return &Collection[T]{backend: backend, name: name, maxSize: maxSize}
}

// Load returns the full ordered sequence currently stored, or an empty
// slice if the collection has never been written or the backend failed.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Save persists records as the new contents of the collection, keeping
// only the most recent maxSize entries.
func (c *Collection[T]) Save(ctx context.Context, records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.save(ctx, records)
}

// Append adds one record to the end of the collection.
func (c *Collection[T]) Append(ctx context.Context, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.save(ctx, append(c.load(ctx), rec))
}

// Update applies fn to the record with the given id and persists the
// result. It reports whether the record was found; a record that has
// already aged out is not an error.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.load(ctx)
	for i := range records {
		if records[i].RecordID() == id {
			fn(&records[i])
			c.save(ctx, records)
			return true
		}
	}
	return false
}

// load must be called with c.mu held.
func (c *Collection[T]) load(ctx context.Context) []T {
	data, err := c.backend.Get(ctx, c.name)
	if err != nil {
		c.observe(ctx, "read", err)
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.observe(ctx, "decode", err)
		return []T{}
	}
	return records
}

// save must be called with c.mu held.
func (c *Collection[T]) save(ctx context.Context, records []T) {
	if c.maxSize > 0 && len(records) > c.maxSize {
		records = records[len(records)-c.maxSize:]
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		c.observe(ctx, "encode", err)
		return
	}
	if err := c.backend.Set(ctx, c.name, data); err != nil {
		c.observe(ctx, "write", err)
	}
}

func (c *Collection[T]) observe(ctx context.Context, op string, err error) {
	slog.ErrorContext(ctx, "collection "+op+" failed",
		"collection", c.name,
		"backend", c.backend.Name(),
		"err", err,
	)
	sentry.CaptureException(err)
}
