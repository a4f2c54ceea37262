package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/seed"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/storage"
)

func setupSyncedStore(t *testing.T) (*board.Store, *Adapter, *Syncer) {
	t.Helper()
	bus := events.NewBus(0, nil)
	t.Cleanup(func() { _ = bus.Close() })

	store := board.NewStore(
		board.WithClock(clock.Fake(now)),
		board.WithPublisher(bus),
		board.WithGenerator(seed.New(7)),
	)
	store.Load(seed.EmptyBoard(), nil)

	adapter, _ := setupAdapter(t)
	syncer := NewSyncer(adapter, store, nil)
	require.NoError(t, syncer.Start(context.Background(), bus))
	t.Cleanup(func() { _ = syncer.Close() })
	return store, adapter, syncer
}

func TestSyncer_SavesAfterMutations(t *testing.T) {
	store, adapter, syncer := setupSyncedStore(t)
	ctx := context.Background()

	id := store.CreateTicket(models.TicketDraft{Title: "Fix login bug", Priority: models.PriorityHigh})
	store.MoveTicket(id, models.StatusDone)
	search := "login"
	store.SetFilters(models.FilterUpdate{Search: &search})

	syncer.Flush(ctx)

	loaded := adapter.LoadBoard(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, store.Board(), *loaded)

	filters := adapter.LoadFilters(ctx)
	require.NotNil(t, filters)
	assert.Equal(t, "login", filters.Search)
}

func TestSyncer_SavesWithoutFlush(t *testing.T) {
	store, adapter, _ := setupSyncedStore(t)
	ctx := context.Background()

	store.CreateTicket(models.TicketDraft{Title: "eventually saved"})

	assert.Eventually(t, func() bool {
		b := adapter.LoadBoard(ctx)
		return b != nil && len(b.Tickets) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSyncer_DeletingLastTicketIsSaved(t *testing.T) {
	store, adapter, syncer := setupSyncedStore(t)
	ctx := context.Background()

	id := store.CreateTicket(models.TicketDraft{Title: "only"})
	syncer.Flush(ctx)
	store.DeleteTicket(id)
	syncer.Flush(ctx)

	loaded := adapter.LoadBoard(ctx)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Tickets)
}

func TestSyncer_SkipsWhileLoading(t *testing.T) {
	store := board.NewStore()
	adapter, kv := setupAdapter(t)
	syncer := NewSyncer(adapter, store, nil)

	syncer.Flush(context.Background())

	keys, _ := kv.Keys(context.Background())
	assert.Empty(t, keys)
}

func TestSyncer_SaveFailureDoesNotAffectStore(t *testing.T) {
	store, adapter, syncer := setupSyncedStore(t)
	adapter.KV().(*storage.MemoryStore).FailWrites = assert.AnError

	id := store.CreateTicket(models.TicketDraft{Title: "in memory only"})
	syncer.Flush(context.Background())

	_, ok := store.Ticket(id)
	assert.True(t, ok)
}

func TestSyncer_CloseIsIdempotent(t *testing.T) {
	_, _, syncer := setupSyncedStore(t)
	require.NoError(t, syncer.Close())
	require.NoError(t, syncer.Close())
}

// ============================================================================
// BOOTSTRAP
// ============================================================================

func TestBootstrap_SeedsAndSavesWhenEmpty(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t)
	store := board.NewStore(board.WithClock(clock.Fake(now)))

	result := Bootstrap(ctx, store, adapter, seed.New(1))

	assert.True(t, result.Seeded)
	assert.False(t, result.Corrupt)
	state := store.Snapshot()
	assert.False(t, state.IsLoading)
	assert.Len(t, state.Board.Tickets, 10)

	saved := adapter.LoadBoard(ctx)
	require.NotNil(t, saved)
	assert.Equal(t, state.Board, *saved)

	filters := adapter.LoadFilters(ctx)
	require.NotNil(t, filters, "default filters are saved on first launch")
	assert.True(t, filters.IsEmpty())
}

func TestBootstrap_KeepsCorruptFilters(t *testing.T) {
	ctx := context.Background()
	adapter, kv := setupAdapter(t)
	require.NoError(t, kv.Set(ctx, FiltersKey, "{broken"))

	store := board.NewStore(board.WithClock(clock.Fake(now)))
	Bootstrap(ctx, store, adapter, nil)

	raw, _ := kv.Get(ctx, FiltersKey)
	assert.Equal(t, "{broken", raw)
}

func TestBootstrap_LoadsStoredState(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t)
	stored := seed.New(9).Board(now)
	require.True(t, adapter.SaveBoard(ctx, stored))
	require.True(t, adapter.SaveFilters(ctx, models.FilterCriteria{Statuses: []models.Status{models.StatusDone}}))

	store := board.NewStore(board.WithClock(clock.Fake(now)))
	result := Bootstrap(ctx, store, adapter, seed.New(1))

	assert.False(t, result.Seeded)
	state := store.Snapshot()
	assert.Equal(t, stored, state.Board)
	assert.Len(t, state.FilteredTickets, 2)
}

func TestBootstrap_CorruptBoard(t *testing.T) {
	ctx := context.Background()
	adapter, kv := setupAdapter(t)
	require.NoError(t, kv.Set(ctx, BoardKey, "{broken"))

	store := board.NewStore(board.WithClock(clock.Fake(now)))
	result := Bootstrap(ctx, store, adapter, nil)

	assert.True(t, result.Corrupt)
	state := store.Snapshot()
	assert.Equal(t, LoadErrorMessage, state.Error)
	assert.Empty(t, state.Board.Tickets)
	assert.Len(t, state.Board.Columns, 4)

	raw, _ := kv.Get(ctx, BoardKey)
	assert.Equal(t, "{broken", raw)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t)
	store := board.NewStore(board.WithClock(clock.Fake(now)), board.WithGenerator(seed.New(3)))
	store.Load(seed.EmptyBoard(), &models.FilterCriteria{Search: "x"})

	require.True(t, Reset(ctx, store, adapter))

	loaded := adapter.LoadBoard(ctx)
	require.NotNil(t, loaded)
	assert.Len(t, loaded.Tickets, 10)
	filters := adapter.LoadFilters(ctx)
	require.NotNil(t, filters)
	assert.True(t, filters.IsEmpty())
}
