package history

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, keyPrefix string) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return NewRedisStore(client, keyPrefix), mr
}

func TestRedisStore_Empty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t, "")

	_, found, err := store.Setting(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	definitions, err := store.Definitions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, definitions)
	assert.Empty(t, definitions)
}

func TestRedisStore_SaveAndRead(t *testing.T) {
	tests := []struct {
		name      string
		keyPrefix string
	}{
		{name: "no prefix", keyPrefix: ""},
		{name: "with prefix", keyPrefix: "glossa:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, mr := newTestRedisStore(t, tt.keyPrefix)

			require.NoError(t, store.SaveSetting(ctx, Setting{Enabled: false}))
			require.NoError(t, store.SaveDefinitions(ctx, map[string]string{"run": "to move fast"}))

			rawSetting, err := mr.Get(tt.keyPrefix + "history")
			require.NoError(t, err)
			assert.JSONEq(t, `{"enabled": false}`, rawSetting)

			rawDefinitions, err := mr.Get(tt.keyPrefix + "definitions")
			require.NoError(t, err)
			assert.JSONEq(t, `{"run": "to move fast"}`, rawDefinitions)

			setting, found, err := store.Setting(ctx)
			require.NoError(t, err)
			assert.True(t, found)
			assert.False(t, setting.Enabled)

			definitions, err := store.Definitions(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"run": "to move fast"}, definitions)
		})
	}
}

func TestRedisStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t, "")
	require.NoError(t, mr.Set("history", "not json"))
	require.NoError(t, mr.Set("definitions", "null"))

	_, _, err := store.Setting(ctx)
	assert.Error(t, err)

	definitions, err := store.Definitions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, definitions)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t, "")
	mr.Close()

	_, _, err := store.Setting(ctx)
	assert.Error(t, err)
	assert.Error(t, store.SaveDefinitions(ctx, map[string]string{"run": "to move fast"}))
}

func TestNewRedisClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid url", url: "redis://localhost:6379/0"},
		{name: "invalid scheme", url: "http://localhost:6379", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedisClient(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "localhost:6379", client.Options().Addr)
			_ = client.Close()
		})
	}
}
