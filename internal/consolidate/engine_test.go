package consolidate

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/entity"
)

type fakeItemSource struct {
	mu    sync.Mutex
	items map[uuid.UUID][]*entity.ExtractedItem
}

func (f *fakeItemSource) ListCompletedItems(_ context.Context, documentID uuid.UUID) ([]*entity.ExtractedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[documentID], nil
}

type fakeStore struct {
	mu       sync.Mutex
	sets     map[uuid.UUID][]*entity.ConsolidatedItem
	replaces int
}

func (f *fakeStore) ReplaceForDocument(_ context.Context, documentID uuid.UUID, items []*entity.ConsolidatedItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sets == nil {
		f.sets = make(map[uuid.UUID][]*entity.ConsolidatedItem)
	}
	f.sets[documentID] = items
	f.replaces++
	return nil
}

func (f *fakeStore) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.ConsolidatedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets[documentID], nil
}

func TestEngineRecompute(t *testing.T) {
	docID := uuid.New()
	src := &fakeItemSource{items: map[uuid.UUID][]*entity.ExtractedItem{
		docID: {
			rawItem("AB-123", "SUM", 1, 40, nil, 1),
			rawItem("AB-123", "SUM", 1, 60, ptr(19.99), 2),
			rawItem("CD-456", "EXG", 2, 80, ptr(5), 1),
		},
	}}
	store := &fakeStore{}
	eng := NewEngine(src, store, nil)

	n, err := eng.Recompute(context.Background(), docID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if n != 2 {
		t.Fatalf("consolidated count = %d, want 2", n)
	}

	items, err := eng.Items(context.Background(), docID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("stored items = %d, want 2", len(items))
	}
}

func TestEngineRecomputeIsIdempotent(t *testing.T) {
	docID := uuid.New()
	src := &fakeItemSource{items: map[uuid.UUID][]*entity.ExtractedItem{
		docID: {rawItem("AB-123", "", 1, 70, nil, 1)},
	}}
	store := &fakeStore{}
	eng := NewEngine(src, store, nil)

	for i := 0; i < 3; i++ {
		if _, err := eng.Recompute(context.Background(), docID); err != nil {
			t.Fatalf("recompute %d: %v", i, err)
		}
	}

	items, _ := eng.Items(context.Background(), docID)
	if len(items) != 1 {
		t.Fatalf("repeat recompute changed the set: %d items", len(items))
	}
	if store.replaces != 3 {
		t.Fatalf("replaces = %d, want 3", store.replaces)
	}
}

func TestEngineRecomputeEmptyDocument(t *testing.T) {
	docID := uuid.New()
	eng := NewEngine(&fakeItemSource{}, &fakeStore{}, nil)

	n, err := eng.Recompute(context.Background(), docID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
}

func TestEngineConcurrentRecomputesSerialize(t *testing.T) {
	docID := uuid.New()
	src := &fakeItemSource{items: map[uuid.UUID][]*entity.ExtractedItem{
		docID: {rawItem("AB-123", "", 1, 70, ptr(3), 1)},
	}}
	store := &fakeStore{}
	eng := NewEngine(src, store, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := eng.Recompute(context.Background(), docID); err != nil {
				t.Errorf("recompute: %v", err)
			}
		}()
	}
	wg.Wait()

	items, _ := eng.Items(context.Background(), docID)
	if len(items) != 1 {
		t.Fatalf("concurrent recomputes corrupted the set: %d items", len(items))
	}
	if store.replaces != 8 {
		t.Fatalf("replaces = %d, want 8", store.replaces)
	}
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	km := newKeyedMutex()
	key := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock(key)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}

	km.mu.Lock()
	if len(km.locks) != 0 {
		t.Errorf("lock map not drained: %d entries", len(km.locks))
	}
	km.mu.Unlock()
}
