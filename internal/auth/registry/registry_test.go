package registry_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/inkpass/internal/auth/registry"
	"github.com/stretchr/testify/require"
)

// harness is a registry plus a way to move its notion of time forward.
type harness struct {
	reg     registry.Registry
	advance func(time.Duration)
}

func newMemoryHarness(t *testing.T) harness {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex

	reg := registry.NewMemory(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	})
	return harness{
		reg: reg,
		advance: func(d time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			now = now.Add(d)
		},
	}
}

func newRedisHarness(t *testing.T) (harness, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	reg, err := registry.NewRedis(registry.RedisConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })

	return harness{reg: reg, advance: mr.FastForward}, mr
}

func forEachBackend(t *testing.T, fn func(t *testing.T, h harness)) {
	t.Run("memory", func(t *testing.T) { fn(t, newMemoryHarness(t)) })
	t.Run("redis", func(t *testing.T) {
		h, _ := newRedisHarness(t)
		fn(t, h)
	})
}

func TestRegistry_PutGet(t *testing.T) {
	forEachBackend(t, func(t *testing.T, h harness) {
		ctx := context.Background()

		require.NoError(t, h.reg.Put(ctx, 1, "token-a", time.Hour))

		got, err := h.reg.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "token-a", got)

		_, err = h.reg.Get(ctx, 2)
		require.ErrorIs(t, err, registry.ErrNoSession)
	})
}

func TestRegistry_PutOverwrites(t *testing.T) {
	forEachBackend(t, func(t *testing.T, h harness) {
		ctx := context.Background()

		require.NoError(t, h.reg.Put(ctx, 1, "first", time.Hour))
		require.NoError(t, h.reg.Put(ctx, 1, "second", time.Hour))

		got, err := h.reg.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "second", got)
	})
}

func TestRegistry_DeleteIsIdempotent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, h harness) {
		ctx := context.Background()

		require.NoError(t, h.reg.Put(ctx, 1, "token", time.Hour))
		require.NoError(t, h.reg.Delete(ctx, 1))
		require.NoError(t, h.reg.Delete(ctx, 1))
		require.NoError(t, h.reg.Delete(ctx, 99))

		_, err := h.reg.Get(ctx, 1)
		require.ErrorIs(t, err, registry.ErrNoSession)
	})
}

func TestRegistry_EntriesExpire(t *testing.T) {
	forEachBackend(t, func(t *testing.T, h harness) {
		ctx := context.Background()

		require.NoError(t, h.reg.Put(ctx, 1, "token", time.Minute))

		h.advance(59 * time.Second)
		got, err := h.reg.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "token", got)

		h.advance(time.Second)
		_, err = h.reg.Get(ctx, 1)
		require.ErrorIs(t, err, registry.ErrNoSession)
	})
}

func TestRegistry_RejectsNonPositiveTTL(t *testing.T) {
	forEachBackend(t, func(t *testing.T, h harness) {
		ctx := context.Background()

		require.ErrorIs(t, h.reg.Put(ctx, 1, "token", 0), registry.ErrInvalidTTL)
		require.ErrorIs(t, h.reg.Put(ctx, 1, "token", -time.Second), registry.ErrInvalidTTL)

		_, err := h.reg.Get(ctx, 1)
		require.ErrorIs(t, err, registry.ErrNoSession)
	})
}

func TestRegistry_ConcurrentUsers(t *testing.T) {
	forEachBackend(t, func(t *testing.T, h harness) {
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := int64(1); i <= 32; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				token := fmt.Sprintf("token-%d", id)
				require.NoError(t, h.reg.Put(ctx, id, token, time.Hour))

				got, err := h.reg.Get(ctx, id)
				require.NoError(t, err)
				require.Equal(t, token, got)
			}(i)
		}
		wg.Wait()
	})
}

func TestRedis_KeyLayoutAndTTL(t *testing.T) {
	h, mr := newRedisHarness(t)
	ctx := context.Background()

	require.NoError(t, h.reg.Put(ctx, 42, "token", 24*time.Hour))

	raw, err := mr.Get("blog:user:token:42")
	require.NoError(t, err)
	require.Equal(t, "token", raw)
	require.Equal(t, 24*time.Hour, mr.TTL("blog:user:token:42"))
}

func TestRedis_CustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	reg, err := registry.NewRedis(registry.RedisConfig{
		URL:       "redis://" + mr.Addr(),
		KeyPrefix: "inkpass:session:",
	})
	require.NoError(t, err)
	defer reg.Close()

	require.NoError(t, reg.Put(context.Background(), 7, "token", time.Hour))
	require.True(t, mr.Exists("inkpass:session:7"))
}

func TestRedis_UnreachableIsNotNoSession(t *testing.T) {
	h, mr := newRedisHarness(t)
	require.NoError(t, h.reg.Ping(context.Background()))
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := h.reg.Get(ctx, 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, registry.ErrNoSession)

	require.Error(t, h.reg.Put(ctx, 1, "token", time.Hour))
	require.Error(t, h.reg.Ping(ctx))
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := registry.NewRedis(registry.RedisConfig{URL: "invalid://url"})
	require.Error(t, err)
}

func TestMemory_Sweep(t *testing.T) {
	h := newMemoryHarness(t)
	mem := h.reg.(*registry.Memory)
	ctx := context.Background()

	require.NoError(t, mem.Put(ctx, 1, "short", time.Minute))
	require.NoError(t, mem.Put(ctx, 2, "long", time.Hour))
	require.Equal(t, 2, mem.Len())

	h.advance(2 * time.Minute)

	removed, err := mem.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	require.Equal(t, 1, mem.Len())

	got, err := mem.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "long", got)
}
