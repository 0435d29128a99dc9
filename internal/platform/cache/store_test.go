package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "table", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "team:list", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "table" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("db down")
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "division:list", loader); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), "division:list", loader)
	if err != nil || v != "ok" {
		t.Fatalf("expected retry to load fresh value, got %v err=%v", v, err)
	}
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "team:id:1", "Harbour FC")
	if _, ok := store.Get(context.Background(), "team:id:1"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "team:id:1"); ok {
		t.Fatalf("expected miss after expiry")
	}

	stats := store.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "player:id:1", 1)
	store.Set(ctx, "player:team:2", 2)
	store.Set(ctx, "team:list", 3)

	store.DeletePrefix(ctx, "player:")

	if _, ok := store.Get(ctx, "player:id:1"); ok {
		t.Fatalf("player key should be gone")
	}
	if _, ok := store.Get(ctx, "team:list"); !ok {
		t.Fatalf("team key should survive player invalidation")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
