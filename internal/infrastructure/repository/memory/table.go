package memory

import (
	"sort"
	"sync"
)

// table is a mutex-guarded row store with auto-increment ids. Removed rows
// stay behind a deleted mark, mirroring deleted_at in postgres.
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[int64]T
	deleted map[int64]struct{}
	nextID  int64
}

func newTable[T any](items []T, idOf func(T) int64) *table[T] {
	t := &table[T]{
		rows:    make(map[int64]T, len(items)),
		deleted: make(map[int64]struct{}),
	}
	for _, item := range items {
		id := idOf(item)
		t.rows[id] = item
		if id > t.nextID {
			t.nextID = id
		}
	}
	return t
}

// list returns rows matching keep, ordered by id.
func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if _, gone := t.deleted[id]; gone {
			continue
		}
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, gone := t.deleted[id]; gone {
		var zero T
		return zero, false
	}
	row, ok := t.rows[id]
	return row, ok
}

// getWithDeleted also returns removed rows.
func (t *table[T]) getWithDeleted(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// insert assigns the next id through setID and stores the row.
func (t *table[T]) insert(item T, setID func(*T, int64)) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	setID(&item, t.nextID)
	t.rows[t.nextID] = item
	return item
}

func (t *table[T]) replace(id int64, item T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.liveLocked(id) {
		return false
	}
	t.rows[id] = item
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.liveLocked(id) {
		return false
	}
	t.deleted[id] = struct{}{}
	return true
}

func (t *table[T]) liveLocked(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	_, gone := t.deleted[id]
	return !gone
}
