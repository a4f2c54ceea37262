package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/persistence"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/seed"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/storage"
)

var now = time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)

// populated returns an adapter over a store holding a seeded board,
// some filters, and a theme
func populated(t *testing.T, kv storage.KV) (*persistence.Adapter, models.Board, models.FilterCriteria) {
	t.Helper()
	ctx := context.Background()
	adapter := persistence.NewAdapter(kv, persistence.WithClock(clock.Fake(now)))

	board := seed.New(11).Board(now)
	filters := models.FilterCriteria{
		Search:     "api",
		Priorities: []models.Priority{models.PriorityHigh},
		Tags:       []string{"backend"},
	}
	require.True(t, adapter.SaveBoard(ctx, board))
	require.True(t, adapter.SaveFilters(ctx, filters))
	require.True(t, adapter.SaveTheme(ctx, "dark"))
	return adapter, board, filters
}

func exportDocument(t *testing.T, kv storage.KV) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewCodec(kv).ExportAll(context.Background(), &buf))
	return buf.Bytes()
}

func snapshotKV(t *testing.T, kv storage.KV) map[string]string {
	t.Helper()
	ctx := context.Background()
	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := kv.Get(ctx, k)
		require.NoError(t, err)
		out[k] = v
	}
	return out
}

// ============================================================================
// EXPORT / IMPORT
// ============================================================================

func TestExportImport_RestoresIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	source := storage.NewMemoryStore()
	_, board, filters := populated(t, source)
	data := exportDocument(t, source)

	target, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer target.Close()

	ok := NewCodec(target, WithClock(clock.Fake(now))).ImportAll(ctx, bytes.NewReader(data))
	require.True(t, ok)

	adapter := persistence.NewAdapter(target, persistence.WithClock(clock.Fake(now)))
	loadedBoard := adapter.LoadBoard(ctx)
	require.NotNil(t, loadedBoard)
	assert.Equal(t, board, *loadedBoard)

	loadedFilters := adapter.LoadFilters(ctx)
	require.NotNil(t, loadedFilters)
	assert.Equal(t, filters, *loadedFilters)

	themeID, ok := adapter.LoadTheme(ctx)
	assert.True(t, ok)
	assert.Equal(t, "dark", themeID)
}

func TestExport_DocumentShape(t *testing.T) {
	kv := storage.NewMemoryStore()
	populated(t, kv)
	require.NoError(t, kv.Set(context.Background(), "unrelated", "x"))

	data := exportDocument(t, kv)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc, 3)
	assert.Contains(t, doc, persistence.BoardKey)
	assert.Contains(t, doc, persistence.FiltersKey)
	assert.Equal(t, "dark", doc[persistence.ThemeKey])
	assert.True(t, strings.HasPrefix(string(data), "{\n  \""), "document is indented")
}

func TestExport_SkipsMissingKeys(t *testing.T) {
	kv := storage.NewMemoryStore()
	doc, err := NewCodec(kv).Export(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestImport_RejectsWithoutWriting(t *testing.T) {
	validBoard, err := persistence.EncodeBoard(seed.EmptyBoard())
	require.NoError(t, err)
	validFilters, err := persistence.EncodeFilters(models.FilterCriteria{})
	require.NoError(t, err)

	doc := func(entries map[string]string) string {
		data, err := json.Marshal(entries)
		require.NoError(t, err)
		return string(data)
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "missing filters key",
			input:   doc(map[string]string{persistence.BoardKey: validBoard}),
			wantErr: ErrMissingKey,
		},
		{
			name:    "missing board key",
			input:   doc(map[string]string{persistence.FiltersKey: validFilters}),
			wantErr: ErrMissingKey,
		},
		{
			name: "unknown key",
			input: doc(map[string]string{
				persistence.BoardKey: validBoard, persistence.FiltersKey: validFilters, "evil": "1",
			}),
			wantErr: ErrUnknownKey,
		},
		{
			name: "corrupt board",
			input: doc(map[string]string{
				persistence.BoardKey: "{not json", persistence.FiltersKey: validFilters,
			}),
			wantErr: ErrInvalidValue,
		},
		{
			name: "corrupt filters",
			input: doc(map[string]string{
				persistence.BoardKey: validBoard, persistence.FiltersKey: "[]",
			}),
			wantErr: ErrInvalidValue,
		},
		{
			name: "unknown theme",
			input: doc(map[string]string{
				persistence.BoardKey: validBoard, persistence.FiltersKey: validFilters,
				persistence.ThemeKey: "neon",
			}),
			wantErr: ErrInvalidValue,
		},
		{
			name:    "non-string value",
			input:   `{"kanban-board-data": {"id": "x"}, "kanban-filters": "{}"}`,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "not an object",
			input:   `["kanban-board-data"]`,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "null document",
			input:   `null`,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "truncated",
			input:   `{"kanban-board-data": "`,
			wantErr: ErrInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := storage.NewMemoryStore()
			populated(t, kv)
			before := snapshotKV(t, kv)

			codec := NewCodec(kv, WithClock(clock.Fake(now)))
			err := codec.Import(ctx, strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, codec.ImportAll(ctx, strings.NewReader(tt.input)))

			assert.Equal(t, before, snapshotKV(t, kv), "store must be left unmodified")
		})
	}
}

func TestImport_WriteFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	source := storage.NewMemoryStore()
	populated(t, source)
	data := exportDocument(t, source)

	target := storage.NewMemoryStore()
	require.NoError(t, target.Set(ctx, persistence.ThemeKey, "light"))
	target.FailWrites = errors.New("disk full")

	assert.False(t, NewCodec(target).ImportAll(ctx, bytes.NewReader(data)))

	target.FailWrites = nil
	assert.Equal(t, map[string]string{persistence.ThemeKey: "light"}, snapshotKV(t, target))
}

func TestImport_AcceptsBOMAndOptionalTheme(t *testing.T) {
	ctx := context.Background()
	board, err := persistence.EncodeBoard(seed.EmptyBoard())
	require.NoError(t, err)
	input := "\ufeff" + `{"kanban-board-data": ` + strconvQuote(board) + `, "kanban-filters": "{}"}`

	kv := storage.NewMemoryStore()
	require.True(t, NewCodec(kv).ImportAll(ctx, strings.NewReader(input)))

	keys, _ := kv.Keys(ctx)
	assert.Equal(t, []string{persistence.BoardKey, persistence.FiltersKey}, keys)
}

func TestImport_OverwritesExistingState(t *testing.T) {
	ctx := context.Background()
	source := storage.NewMemoryStore()
	_, board, _ := populated(t, source)
	data := exportDocument(t, source)

	target := storage.NewMemoryStore()
	adapter := persistence.NewAdapter(target)
	require.True(t, adapter.SaveBoard(ctx, seed.EmptyBoard()))

	require.True(t, NewCodec(target).ImportAll(ctx, bytes.NewReader(data)))
	loaded := adapter.LoadBoard(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, board, *loaded)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "kanban-backup-2026-10-16.json", FileName(now))
	assert.Equal(t, "kanban-tickets-2026-10-16.csv", CSVFileName(now))
}

func strconvQuote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
