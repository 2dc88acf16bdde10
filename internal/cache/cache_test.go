package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := New(server.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestClient_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(t)

	require.NoError(t, client.Set(ctx, "product:1", []byte("shoes"), time.Minute))

	data, err := client.Get(ctx, "product:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("shoes"), data)

	server.FastForward(2 * time.Minute)
	data, err = client.Get(ctx, "product:1")
	require.NoError(t, err)
	assert.Nil(t, data, "entry must expire after its TTL")

	require.NoError(t, client.Set(ctx, "product:2", []byte("hat"), time.Minute))
	require.NoError(t, client.Delete(ctx, "product:2"))
	data, err = client.Get(ctx, "product:2")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClient_JSON(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	type item struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.SetJSON(ctx, "item", item{Name: "Widget"}, time.Minute))

	var got item
	assert.True(t, client.GetJSON(ctx, "item", &got))
	assert.Equal(t, "Widget", got.Name)

	assert.False(t, client.GetJSON(ctx, "missing", &got))

	require.NoError(t, client.Set(ctx, "broken", []byte("{not json"), time.Minute))
	assert.False(t, client.GetJSON(ctx, "broken", &got))
}

func TestClient_FailsSafeWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	server, err := miniredis.Run()
	require.NoError(t, err)
	client := New(server.Addr(), "", 0)
	defer client.Close()
	server.Close()

	assert.Error(t, client.Ping(ctx))
	assert.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := client.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, client.Delete(ctx, "k"))
}

func TestClient_NilIsEmptyCache(t *testing.T) {
	ctx := context.Background()
	var client *Client

	assert.NoError(t, client.Ping(ctx))
	assert.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := client.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, client.Close())
}
