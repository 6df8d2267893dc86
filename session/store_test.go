package session

import (
	"context"
	"testing"
	"time"

	"bistro-api/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartStore interface {
	Load(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []models.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

func lines() []models.CartLine {
	return []models.CartLine{{
		ID:                  "tiramisu",
		MenuItem:            models.MenuItem{ID: "tiramisu", Name: "Tiramisu", Price: decimal.RequireFromString("24.90")},
		Quantity:            2,
		SpecialInstructions: "no cocoa",
	}}
}

func exercise(t *testing.T, s cartStore) {
	ctx := context.Background()

	got, err := s.Load(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Save(ctx, "abc", lines()))
	got, err = s.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, "no cocoa", got[0].SpecialInstructions)
	assert.True(t, decimal.RequireFromString("24.90").Equal(got[0].MenuItem.Price))

	require.NoError(t, s.Save(ctx, "abc", nil))
	got, err = s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Delete(ctx, "abc"))
	got, err = s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	exercise(t, NewRedisStore(client, time.Hour))
}

func TestRedisStore_BlobShapeAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisStore(client, 30*time.Minute)

	require.NoError(t, s.Save(context.Background(), "sid", lines()))

	raw, err := mr.Get(KeyPrefix + "sid")
	require.NoError(t, err)
	assert.Contains(t, raw, `"state":{"items":[`)
	assert.Contains(t, raw, `"version":0`)
	assert.Equal(t, 30*time.Minute, mr.TTL(KeyPrefix+"sid"))

	mr.FastForward(31 * time.Minute)
	got, err := s.Load(context.Background(), "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_CorruptBlob(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set(KeyPrefix+"bad", "{not json"))
	_, err := NewRedisStore(client, time.Hour).Load(context.Background(), "bad")
	assert.Error(t, err)
}
