package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupSQLite creates an in-memory sqlite store with the kv schema
func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// forEachStore runs fn against every KV implementation
func forEachStore(t *testing.T, fn func(t *testing.T, kv KV)) {
	t.Helper()
	t.Run("sqlite", func(t *testing.T) {
		fn(t, setupSQLite(t))
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})
}

// ============================================================================
// KV CONTRACT
// ============================================================================

func TestKV_GetMissing(t *testing.T) {
	forEachStore(t, func(t *testing.T, kv KV) {
		_, err := kv.Get(context.Background(), "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestKV_SetGetOverwrite(t *testing.T) {
	forEachStore(t, func(t *testing.T, kv KV) {
		ctx := context.Background()
		if err := kv.Set(ctx, "k", "v1"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := kv.Set(ctx, "k", "v2"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := kv.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "v2" {
			t.Errorf("Expected 'v2', got %q", got)
		}
	})
}

func TestKV_SetManyKeysDeleteClear(t *testing.T) {
	forEachStore(t, func(t *testing.T, kv KV) {
		ctx := context.Background()
		err := kv.SetMany(ctx, map[string]string{"b": "2", "a": "1", "c": "3"})
		if err != nil {
			t.Fatalf("SetMany failed: %v", err)
		}

		keys, err := kv.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
			t.Errorf("Expected sorted keys [a b c], got %v", keys)
		}

		if err := kv.Delete(ctx, "b"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := kv.Delete(ctx, "missing"); err != nil {
			t.Errorf("Deleting a missing key should succeed, got %v", err)
		}
		if _, err := kv.Get(ctx, "b"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected deleted key to be gone, got %v", err)
		}

		if err := kv.Clear(ctx); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		keys, _ = kv.Keys(ctx)
		if len(keys) != 0 {
			t.Errorf("Expected no keys after Clear, got %v", keys)
		}
	})
}

func TestKV_StoresLargeUnicodeValues(t *testing.T) {
	forEachStore(t, func(t *testing.T, kv KV) {
		ctx := context.Background()
		value := ""
		for i := 0; i < 5000; i++ {
			value += "ünïcødé ✓ "
		}
		if err := kv.Set(ctx, "big", value); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, _ := kv.Get(ctx, "big")
		if got != value {
			t.Errorf("Large value did not round trip (len %d vs %d)", len(got), len(value))
		}
	})
}

// ============================================================================
// SQLITE SPECIFICS
// ============================================================================

func TestSQLite_SetManyIsAtomic(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()
	if err := s.Set(ctx, "a", "old"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := s.SetMany(cancelled, map[string]string{"a": "new", "b": "new"}); err == nil {
		t.Fatal("Expected SetMany with a cancelled context to fail")
	}

	got, _ := s.Get(ctx, "a")
	if got != "old" {
		t.Errorf("Expected 'a' to keep 'old', got %q", got)
	}
	if _, err := s.Get(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected 'b' to be absent, got %v", err)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kanban.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("Failed to open: %v", err)
	}
	if err := s.Set(ctx, "kanban-theme-preference", `"dark"`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("Failed to reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "kanban-theme-preference")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `"dark"` {
		t.Errorf("Expected persisted value, got %q", got)
	}
}

func TestSQLite_MigrationsAreIdempotent(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()
	if err := runMigrations(ctx, s.db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("Failed to read version: %v", err)
	}
	if version != schemaVersion {
		t.Errorf("Expected schema version %d, got %d", schemaVersion, version)
	}
}

// ============================================================================
// MEMORY SPECIFICS
// ============================================================================

func TestMemory_FailWritesLeavesDataUntouched(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	_ = m.Set(ctx, "a", "1")

	boom := errors.New("disk full")
	m.FailWrites = boom
	if err := m.SetMany(ctx, map[string]string{"a": "2", "b": "2"}); !errors.Is(err, boom) {
		t.Fatalf("Expected injected error, got %v", err)
	}

	m.FailWrites = nil
	got, _ := m.Get(ctx, "a")
	if got != "1" {
		t.Errorf("Expected 'a' to stay '1', got %q", got)
	}
	if _, err := m.Get(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected 'b' to be absent, got %v", err)
	}
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemoryStore()
	_ = m.Close()
	if err := m.Set(context.Background(), "a", "1"); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if _, err := m.Get(context.Background(), "a"); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}
