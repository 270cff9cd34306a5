package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sortedsinghal/URE-HR/internal/cache"
)

func TestSetGetRoundtrip(t *testing.T) {
	c := New(cache.DefaultOptions())
	defer c.Close()

	ctx := context.Background()
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "offers", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "offers", Count: 3}, got)
}

func TestGetMissing(t *testing.T) {
	c := New(cache.DefaultOptions())
	defer c.Close()

	var v string
	err := c.Get(context.Background(), "absent", &v)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestExpiredEntryNotReturned(t *testing.T) {
	c := New(cache.DefaultOptions())
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	var v string
	err := c.Get(ctx, "k", &v)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestDelete(t *testing.T) {
	c := New(cache.DefaultOptions())
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var v string
	assert.ErrorIs(t, c.Get(ctx, "k", &v), cache.ErrNotFound)
}

func TestEmptyKeyRejected(t *testing.T) {
	c := New(cache.DefaultOptions())
	defer c.Close()

	err := c.Set(context.Background(), "", "v", time.Minute)
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
}

func TestClosedCache(t *testing.T) {
	c := New(cache.DefaultOptions())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "closing twice is safe")

	err := c.Set(context.Background(), "k", "v", time.Minute)
	assert.ErrorIs(t, err, cache.ErrClosed)

	var v string
	assert.ErrorIs(t, c.Get(context.Background(), "k", &v), cache.ErrClosed)
	assert.ErrorIs(t, c.Delete(context.Background(), "k"), cache.ErrClosed)
}
