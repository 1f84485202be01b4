package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gogotex/docstore/internal/document"
	"github.com/redis/go-redis/v9"
)

var _ Repository = (*RedisRepo)(nil)

const scanBatch = 256

// RedisRepo stores documents as JSON under "<prefix>doc:<id>". Inserts use SETNX,
// so the duplicate check and the write are one atomic command on the server.
// Without WithIDGenerator, ids come from INCR on "<prefix>seq" and are shared by
// every process using the same prefix.
//
// List walks the keyspace with SCAN; the result is not a point-in-time snapshot
// when other writers are active.
type RedisRepo struct {
	client *redis.Client
	prefix string
	opts   options
}

// NewRedisRepo creates a Redis-backed document repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string, opts ...Option) *RedisRepo {
	if prefix == "" {
		prefix = "docstore:"
	}
	return &RedisRepo{client: client, prefix: prefix, opts: buildOptions(opts)}
}

func (r *RedisRepo) key(id string) string {
	return r.prefix + "doc:" + id
}

func (r *RedisRepo) nextID(ctx context.Context) (string, error) {
	if r.opts.ids != nil {
		return r.opts.ids.NextID(), nil
	}
	n, err := r.client.Incr(ctx, r.prefix+"seq").Result()
	if err != nil {
		return "", fmt.Errorf("next id: %w", err)
	}
	return strconv.FormatInt(n, 10), nil
}

func (r *RedisRepo) insert(ctx context.Context, doc document.Document) (bool, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("encode document: %w", err)
	}
	ok, err := r.client.SetNX(ctx, r.key(doc.ID), b, 0).Result()
	if err != nil {
		return false, fmt.Errorf("insert document %q: %w", doc.ID, err)
	}
	return ok, nil
}

func (r *RedisRepo) Save(ctx context.Context, doc document.Document) (document.Document, error) {
	doc.Created = r.opts.now()
	if doc.ID != "" {
		ok, err := r.insert(ctx, doc)
		if err != nil {
			return document.Document{}, err
		}
		if !ok {
			return document.Document{}, duplicate(doc.ID)
		}
		return doc, nil
	}
	for {
		id, err := r.nextID(ctx)
		if err != nil {
			return document.Document{}, err
		}
		doc.ID = id
		ok, err := r.insert(ctx, doc)
		if err != nil {
			return document.Document{}, err
		}
		if ok {
			return doc, nil
		}
	}
}

func (r *RedisRepo) FindByID(ctx context.Context, id string) (*document.Document, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var d document.Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode document %q: %w", id, err)
	}
	return &d, nil
}

func (r *RedisRepo) keys(ctx context.Context) ([]string, error) {
	var (
		out    []string
		cursor uint64
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, r.prefix+"doc:*", scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("scan documents: %w", err)
		}
		out = append(out, batch...)
		if next == 0 {
			return out, nil
		}
		cursor = next
	}
}

func (r *RedisRepo) List(ctx context.Context) ([]document.Document, error) {
	keys, err := r.keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]document.Document, 0, len(keys))
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		vals, err := r.client.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, fmt.Errorf("load documents: %w", err)
		}
		for _, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue
			}
			var d document.Document
			if err := json.Unmarshal([]byte(s), &d); err != nil {
				return nil, fmt.Errorf("decode document: %w", err)
			}
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *RedisRepo) Count(ctx context.Context) (int, error) {
	keys, err := r.keys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
