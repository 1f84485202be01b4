package repository

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gogotex/docstore/internal/document"
	"github.com/google/uuid"
)

// Repository owns the id -> document mapping. Implementations must make the
// duplicate check, id assignment and insert of Save a single atomic step.
type Repository interface {
	// Save inserts a copy of doc. An empty ID is replaced by a fresh one;
	// a taken ID fails with *DuplicateDocumentError and leaves storage untouched.
	Save(ctx context.Context, doc document.Document) (document.Document, error)
	// FindByID returns (nil, nil) when no document has the given id.
	FindByID(ctx context.Context, id string) (*document.Document, error)
	// List returns a snapshot of every stored document.
	List(ctx context.Context) ([]document.Document, error)
	Count(ctx context.Context) (int, error)
}

// IDGenerator hands out identifiers for documents saved without one.
type IDGenerator interface {
	NextID() string
}

// CounterIDs issues "1", "2", ... Each value owns its own sequence so
// independent repositories never share state.
type CounterIDs struct {
	n atomic.Uint64
}

func (c *CounterIDs) NextID() string {
	return strconv.FormatUint(c.n.Add(1), 10)
}

// UUIDIDs issues random version 4 UUIDs.
type UUIDIDs struct{}

func (UUIDIDs) NextID() string { return uuid.NewString() }

type options struct {
	now func() time.Time
	ids IDGenerator
}

// Option configures a repository.
type Option func(*options)

// WithClock overrides the time source used to stamp Created.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides how ids are produced for documents saved without one.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) { o.ids = g }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
