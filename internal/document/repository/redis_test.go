package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gogotex/docstore/internal/document"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*mr.Miniredis, *redis.Client) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return m, client
}

func TestRedisRepo_SaveFind(t *testing.T) {
	_, client := newTestRedis(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRedisRepo(client, "test:", WithClock(func() time.Time { return now }))
	ctx := context.Background()

	saved, err := repo.Save(ctx, document.Document{
		Title:   "Document One",
		Content: "lyrics",
		Author:  document.Author{ID: "1", Name: "Taras"},
	})
	require.NoError(t, err)
	require.Equal(t, "1", saved.ID)
	require.True(t, saved.Created.Equal(now))

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Document One", got.Title)
	require.Equal(t, "Taras", got.Author.Name)
	require.True(t, got.Created.Equal(now))

	missing, err := repo.FindByID(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestRedisRepo_DuplicateID(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewRedisRepo(client, "test:")
	ctx := context.Background()

	_, err := repo.Save(ctx, document.Document{ID: "1", Title: "first"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, document.Document{ID: "1", Title: "second"})
	require.True(t, errors.Is(err, ErrDuplicateDocument))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "first", got.Title)
}

func TestRedisRepo_GeneratedIDSkipsTaken(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewRedisRepo(client, "test:")
	ctx := context.Background()

	_, err := repo.Save(ctx, document.Document{ID: "1", Title: "explicit"})
	require.NoError(t, err)

	gen, err := repo.Save(ctx, document.Document{Title: "generated"})
	require.NoError(t, err)
	require.Equal(t, "2", gen.ID)
}

func TestRedisRepo_ListAndPrefixIsolation(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()
	a := NewRedisRepo(client, "a:")
	b := NewRedisRepo(client, "b:")

	for _, title := range []string{"x", "y", "z"} {
		_, err := a.Save(ctx, document.Document{Title: title})
		require.NoError(t, err)
	}
	_, err := b.Save(ctx, document.Document{Title: "other"})
	require.NoError(t, err)

	list, err := a.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, d := range list {
		require.True(t, d.Saved())
	}

	list, err = b.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "other", list[0].Title)
}

func TestRedisRepo_UUIDGenerator(t *testing.T) {
	m, client := newTestRedis(t)
	repo := NewRedisRepo(client, "", WithIDGenerator(UUIDIDs{}))
	ctx := context.Background()

	saved, err := repo.Save(ctx, document.Document{Title: "t"})
	require.NoError(t, err)
	require.Len(t, saved.ID, 36)
	require.True(t, m.Exists("docstore:doc:"+saved.ID))
	require.False(t, m.Exists("docstore:seq"))
}

func TestRedisRepo_ServerDown(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	defer client.Close()
	repo := NewRedisRepo(client, "test:")
	m.Close()

	_, err = repo.FindByID(context.Background(), "1")
	require.Error(t, err)

	_, err = repo.Save(context.Background(), document.Document{Title: "t"})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrDuplicateDocument))
}
