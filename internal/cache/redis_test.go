package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-tracker/internal/config"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

type testStruct struct {
	Name string
	Age  int
}

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		ProfileTTL:   time.Minute,
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	expected := testStruct{Name: "Alice", Age: 30}
	require.NoError(t, cache.Set(ctx, "user:1", expected, time.Minute))

	var actual testStruct
	found, err := cache.Get(ctx, "user:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out testStruct
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache, mr := setupTestCache(t)
	require.NoError(t, mr.Set("bad", "not-json"))

	var out testStruct
	found, err := cache.Get(context.Background(), "bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestProfileRoundTrip(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	p, found, err := cache.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, p)

	require.NoError(t, cache.SetProfile(ctx, &models.Profile{UserID: 7, TenantID: 3}))
	assert.True(t, mr.Exists("profile:7"))
	assert.Equal(t, time.Minute, mr.TTL("profile:7"))

	p, found, err = cache.GetProfile(ctx, 7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(3), p.TenantID)
}

func TestProfileExpires(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetProfile(ctx, &models.Profile{UserID: 1, TenantID: 1}))
	mr.FastForward(2 * time.Minute)

	_, found, err := cache.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:1",
		DialTimeout:  100 * time.Millisecond,
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var n Noop
	ctx := context.Background()
	require.NoError(t, n.SetProfile(ctx, &models.Profile{UserID: 1, TenantID: 1}))
	p, found, err := n.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, p)
}
