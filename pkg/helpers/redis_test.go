package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func TestRedisJSONRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()

	var got sample
	ok, err := RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, RedisSetJSON(ctx, rdb, "k", sample{Name: "Ann"}, time.Minute))
	ok, err = RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, RedisDel(ctx, rdb, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestRedisGetJSON_Corrupt(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, mr.Set("k", "{not json"))

	var got sample
	_, err := RedisGetJSON(context.Background(), rdb, "k", &got)
	assert.Error(t, err)
}
