package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/devbm7/deadshot-stats/internal/models"
)

type mockStore struct {
	mu     sync.Mutex
	rows   []models.MatchRow
	nextID int64
}

func (m *mockStore) InsertRows(ctx context.Context, rows []models.MatchRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rows...)
	return nil
}

func (m *mockStore) NextMatchID(ctx context.Context) (int64, error) {
	return m.nextID, nil
}

func (m *mockStore) inserted() []models.MatchRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.MatchRow, len(m.rows))
	copy(out, m.rows)
	return out
}

type mockInvalidator struct {
	mu    sync.Mutex
	count int
}

func (m *mockInvalidator) Invalidate(ctx context.Context) {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()
}

func testSubmission(player string) models.MatchSubmission {
	return models.MatchSubmission{
		Datetime: time.Date(2025, 5, 2, 19, 30, 0, 0, time.UTC),
		Rows: []models.SubmissionRow{{
			GameMode:    models.ModeFFA,
			MapName:     "Harbor",
			PlayerName:  player,
			Kills:       models.Num(10),
			Deaths:      models.Num(5),
			Score:       models.Num(100),
			Weapon:      "AR",
			MatchLength: models.Num(10),
		}},
	}
}

func newTestPool(store *mockStore, inv Invalidator) *Pool {
	return NewPool(PoolConfig{
		WorkerCount:   2,
		QueueSize:     100,
		BatchSize:     10,
		FlushInterval: 10 * time.Millisecond,
		Store:         store,
		Cache:         inv,
		Logger:        zap.NewNop().Sugar(),
	})
}

func TestPoolProcessesSubmissions(t *testing.T) {
	store := &mockStore{nextID: 1}
	inv := &mockInvalidator{}
	pool := newTestPool(store, inv)
	if err := pool.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, ok := pool.Enqueue(testSubmission("Ace")); !ok {
		t.Fatal("enqueue rejected")
	}
	if _, ok := pool.Enqueue(testSubmission("Bolt")); !ok {
		t.Fatal("enqueue rejected")
	}
	pool.Stop()

	rows := store.inserted()
	if len(rows) != 2 {
		t.Fatalf("inserted %d rows, want 2", len(rows))
	}
	// Match ids start at the store's next id and never collide.
	seen := map[int64]bool{}
	for _, row := range rows {
		if row.MatchID < 1 || row.MatchID > 2 {
			t.Errorf("match id %d out of expected range", row.MatchID)
		}
		if seen[row.MatchID] {
			t.Errorf("duplicate match id %d", row.MatchID)
		}
		seen[row.MatchID] = true
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.count == 0 {
		t.Error("cache never invalidated after inserts")
	}
}

func TestPoolNormalizesDatetime(t *testing.T) {
	store := &mockStore{nextID: 1}
	pool := newTestPool(store, nil)
	if err := pool.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	sub := testSubmission("Ace")
	sub.Datetime = time.Date(2025, 5, 2, 19, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	if _, ok := pool.Enqueue(sub); !ok {
		t.Fatal("enqueue rejected")
	}
	pool.Stop()

	rows := store.inserted()
	if len(rows) != 1 {
		t.Fatalf("inserted %d rows, want 1", len(rows))
	}
	// Wall clock preserved, timezone stripped.
	want := time.Date(2025, 5, 2, 19, 30, 0, 0, time.UTC)
	if !rows[0].Datetime.Equal(want) {
		t.Errorf("datetime = %v, want %v", rows[0].Datetime, want)
	}
}

func TestPoolFlushesOnStop(t *testing.T) {
	store := &mockStore{nextID: 1}
	pool := NewPool(PoolConfig{
		WorkerCount:   1,
		QueueSize:     100,
		BatchSize:     1000, // never reached; only Stop can flush
		FlushInterval: time.Hour,
		Store:         store,
		Logger:        zap.NewNop().Sugar(),
	})
	if err := pool.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, ok := pool.Enqueue(testSubmission("Ace")); !ok {
			t.Fatal("enqueue rejected")
		}
	}
	pool.Stop()

	if got := len(store.inserted()); got != 5 {
		t.Errorf("flushed %d rows, want 5", got)
	}
}

func TestPoolEnqueueAfterStop(t *testing.T) {
	store := &mockStore{nextID: 1}
	pool := newTestPool(store, nil)
	if err := pool.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	pool.Stop()

	if _, ok := pool.Enqueue(testSubmission("Ace")); ok {
		t.Error("enqueue accepted after stop")
	}
}
