package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogotex/docstore/internal/config"
	"github.com/gogotex/docstore/internal/database"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/internal/document/service"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.Infof("config loaded: backend=%s ids=%s", cfg.Store.Backend, cfg.Store.IDStrategy)

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)

	ctx := context.Background()
	var opts []repository.Option
	if cfg.Store.IDStrategy == config.IDStrategyUUID {
		opts = append(opts, repository.WithIDGenerator(repository.UUIDIDs{}))
	}

	var svc service.Service
	if cfg.Store.Backend == config.BackendRedis {
		client, err := database.ConnectRedis(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Timeout)
		if err != nil {
			logger.Warnf("cannot connect to Redis (%v), using memory-backed repo", err)
			svc = service.NewMemoryService(opts...)
		} else {
			defer client.Close()
			svc = service.NewRedisService(client, cfg.Redis.KeyPrefix, opts...)
		}
	} else {
		svc = service.NewMemoryService(opts...)
	}

	if err := run(ctx, svc); err != nil {
		logger.Fatalf("demo failed: %v", err)
	}

	if families, err := reg.Gather(); err == nil {
		logger.Debugf("collected %d metric families", len(families))
	}
}

func run(ctx context.Context, svc service.Service) error {
	taras := document.Author{ID: "1", Name: "Taras"}
	larysa := document.Author{ID: "2", Name: "Larysa"}

	one, err := svc.Save(ctx, document.Document{Title: "Document One", Content: "lyrics", Author: taras})
	if err != nil {
		return err
	}
	if _, err := svc.Save(ctx, document.Document{Title: "Document Two", Content: "writings", Author: larysa}); err != nil {
		return err
	}

	queries := []struct {
		label string
		req   document.SearchRequest
	}{
		{"documents starting with 'Document'", document.SearchRequest{TitlePrefixes: []string{"Document"}}},
		{"documents containing 'lyrics' or 'writings'", document.SearchRequest{ContainsContents: []string{"lyrics", "writings"}}},
		{"documents by author 1", document.SearchRequest{AuthorIDs: []string{taras.ID}}},
	}
	for _, q := range queries {
		res, err := svc.Search(ctx, q.req)
		if err != nil {
			return err
		}
		fmt.Printf("Search results for %s:\n", q.label)
		for _, d := range res {
			fmt.Println(d.Title)
		}
		fmt.Println()
	}

	found, err := svc.FindByID(ctx, one.ID)
	if err != nil {
		return err
	}
	if found != nil {
		fmt.Printf("Document found with ID %s: %s\n", one.ID, found.Title)
	}
	return nil
}
