package service

import (
	"context"
	"errors"

	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/internal/document/search"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// Service is the document API used by callers.
type Service interface {
	Save(ctx context.Context, d document.Document) (document.Document, error)
	// FindByID returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id string) (*document.Document, error)
	Search(ctx context.Context, req document.SearchRequest) ([]document.Document, error)
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...repository.Option) Service {
	return New(repository.NewMemoryRepo(opts...), "memory")
}

// NewRedisService returns a Service backed by Redis.
// Caller is responsible for creating the client and closing it.
func NewRedisService(client *redis.Client, prefix string, opts ...repository.Option) Service {
	return New(repository.NewRedisRepo(client, prefix, opts...), "redis")
}

// New wraps any repository. backend labels log lines and metrics.
func New(repo repository.Repository, backend string) Service {
	return &docService{repo: repo, backend: backend}
}

type docService struct {
	repo    repository.Repository
	backend string
}

func (s *docService) Save(ctx context.Context, d document.Document) (document.Document, error) {
	saved, err := s.repo.Save(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDocument) {
			metrics.Saves.WithLabelValues(s.backend, "duplicate").Inc()
			logger.Debugf("save rejected: backend=%s id=%q already exists", s.backend, d.ID)
		} else {
			metrics.Saves.WithLabelValues(s.backend, "error").Inc()
			logger.Errorf("save failed: backend=%s: %v", s.backend, err)
		}
		return document.Document{}, err
	}
	metrics.Saves.WithLabelValues(s.backend, "created").Inc()
	logger.Debugf("saved document: backend=%s id=%s title=%q", s.backend, saved.ID, saved.Title)
	return saved, nil
}

func (s *docService) FindByID(ctx context.Context, id string) (*document.Document, error) {
	d, err := s.repo.FindByID(ctx, id)
	switch {
	case err != nil:
		metrics.Lookups.WithLabelValues(s.backend, "error").Inc()
		logger.Errorf("find failed: backend=%s id=%q: %v", s.backend, id, err)
		return nil, err
	case d == nil:
		metrics.Lookups.WithLabelValues(s.backend, "missing").Inc()
	default:
		metrics.Lookups.WithLabelValues(s.backend, "found").Inc()
	}
	return d, nil
}

func (s *docService) Search(ctx context.Context, req document.SearchRequest) ([]document.Document, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		logger.Errorf("search failed: backend=%s: %v", s.backend, err)
		return nil, err
	}
	out := search.Filter(snapshot, req)
	metrics.Searches.WithLabelValues(s.backend).Inc()
	metrics.SearchMatches.WithLabelValues(s.backend).Observe(float64(len(out)))
	logger.Debugf("search: backend=%s scanned=%d matched=%d", s.backend, len(snapshot), len(out))
	return out, nil
}
