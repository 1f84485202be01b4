package repository

import (
	"context"
	"sync"

	"github.com/gogotex/docstore/internal/document"
)

var _ Repository = (*MemoryRepo)(nil)

// MemoryRepo keeps documents in a map guarded by a RWMutex. Save holds the write
// lock for the whole check-and-insert; reads share the read lock. Documents are
// stored and returned by value so callers never alias stored state.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]document.Document
	opts  options
}

func NewMemoryRepo(opts ...Option) *MemoryRepo {
	o := buildOptions(opts)
	if o.ids == nil {
		o.ids = &CounterIDs{}
	}
	return &MemoryRepo{store: make(map[string]document.Document), opts: o}
}

func (m *MemoryRepo) Save(_ context.Context, doc document.Document) (document.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID != "" {
		if _, ok := m.store[doc.ID]; ok {
			return document.Document{}, duplicate(doc.ID)
		}
	} else {
		// skip ids a caller already claimed explicitly
		for {
			doc.ID = m.opts.ids.NextID()
			if _, ok := m.store[doc.ID]; !ok {
				break
			}
		}
	}
	doc.Created = m.opts.now()
	m.store[doc.ID] = doc
	return doc, nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id string) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]document.Document, 0, len(m.store))
	for _, d := range m.store {
		out = append(out, d)
	}
	return out, nil
}

func (m *MemoryRepo) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store), nil
}
