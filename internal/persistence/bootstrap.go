package persistence

import (
	"context"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/seed"
)

// LoadErrorMessage is shown when the stored board could not be read
const LoadErrorMessage = "Failed to load board data"

// BootstrapResult describes where the initial board came from
type BootstrapResult struct {
	Seeded  bool // no usable board was stored, a fresh one was generated
	Corrupt bool // a stored board existed but could not be decoded
}

// Bootstrap loads the stored board and filters into store. When no board is
// stored, gen builds one (or an empty board when gen is nil) and it is saved
// right away. Missing filters are saved as the defaults so every backup
// carries both keys. A corrupt stored value is left untouched so it can still
// be exported, and a corrupt board leaves LoadErrorMessage on the store.
func Bootstrap(ctx context.Context, store *board.Store, adapter *Adapter, gen board.Generator) BootstrapResult {
	store.SetLoading(true)

	var result BootstrapResult
	b := adapter.LoadBoard(ctx)
	if b == nil {
		_, stored := adapter.get(ctx, BoardKey)
		result.Corrupt = stored
		result.Seeded = true

		fresh := seed.EmptyBoard()
		if gen != nil {
			fresh = gen.Board(adapter.clock.Now())
		}
		b = &fresh

		if !stored {
			adapter.SaveBoard(ctx, fresh)
		}
	}

	filters := adapter.LoadFilters(ctx)
	if filters == nil {
		if _, stored := adapter.get(ctx, FiltersKey); !stored {
			adapter.SaveFilters(ctx, models.FilterCriteria{})
		}
	}
	store.Load(*b, filters)

	if result.Corrupt {
		store.SetError(LoadErrorMessage)
	}

	adapter.logger.Info("board loaded",
		"board_id", b.ID,
		"tickets", len(b.Tickets),
		"seeded", result.Seeded,
		"corrupt", result.Corrupt)
	return result
}

// Reset replaces the stored board with a freshly generated one and clears
// the filters. It goes through the store so listeners see the change.
func Reset(ctx context.Context, store *board.Store, adapter *Adapter) bool {
	store.RefreshBoard()
	store.ClearFilters()
	state := store.Snapshot()
	return adapter.SaveBoard(ctx, state.Board) && adapter.SaveFilters(ctx, models.FilterCriteria{})
}
