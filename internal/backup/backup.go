// Package backup exports the persisted board state to a portable JSON
// document and restores it. Restores are all-or-nothing: a document is
// fully validated before anything is written, and every key is written in
// one transaction.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/persistence"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/storage"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"
)

// MaxDocumentSize bounds how much input ImportAll reads
const MaxDocumentSize = 32 << 20

// Document maps persisted keys to their raw stored values
type Document map[string]string

// Required lists the keys every importable document must carry
var Required = []string{persistence.BoardKey, persistence.FiltersKey}

// Codec reads and writes backups against a KV
type Codec struct {
	kv     storage.KV
	clock  clock.Clock
	logger *slog.Logger
}

// Option configures a Codec
type Option func(*Codec)

// WithClock sets the clock used when validating timestamps
func WithClock(c clock.Clock) Option {
	return func(codec *Codec) { codec.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(codec *Codec) { codec.logger = l }
}

func NewCodec(kv storage.KV, opts ...Option) *Codec {
	c := &Codec{
		kv:     kv,
		clock:  clock.Real(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileName is the suggested name of a backup taken at now
func FileName(now time.Time) string {
	return "kanban-backup-" + now.UTC().Format(time.DateOnly) + ".json"
}

// ============================================================================
// EXPORT
// ============================================================================

// Export collects every persisted key known to this application. Values are
// copied verbatim, including ones that no longer decode.
func (c *Codec) Export(ctx context.Context) (Document, error) {
	doc := make(Document, len(persistence.Keys))
	for _, key := range persistence.Keys {
		value, err := c.kv.Get(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		doc[key] = value
	}
	return doc, nil
}

// ExportAll writes the backup document to w
func (c *Codec) ExportAll(ctx context.Context, w io.Writer) error {
	doc, err := c.Export(ctx)
	if err != nil {
		return err
	}
	if err := WriteJSON(w, doc); err != nil {
		return err
	}
	c.logger.Info("backup exported", "keys", len(doc))
	return nil
}

// WriteJSON writes doc as indented JSON with keys in sorted order
func WriteJSON(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// ============================================================================
// IMPORT
// ============================================================================

// ParseDocument reads a backup document. Every value must be a string.
func ParseDocument(r io.Reader) (Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidDocument, MaxDocumentSize)
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidDocument)
	}
	return doc, nil
}

// Validate checks that doc can be restored without losing the board: the
// required keys are present, no unknown keys appear, and every value
// decodes.
func Validate(doc Document, now time.Time) error {
	known := make(map[string]bool, len(persistence.Keys))
	for _, key := range persistence.Keys {
		known[key] = true
	}
	for key := range doc {
		if !known[key] {
			return fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
	}
	for _, key := range Required {
		if _, ok := doc[key]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingKey, key)
		}
	}

	if _, err := persistence.DecodeBoard(doc[persistence.BoardKey], now, slog.New(slog.DiscardHandler)); err != nil {
		return fmt.Errorf("%w: board: %v", ErrInvalidValue, err)
	}
	if _, err := persistence.DecodeFilters(doc[persistence.FiltersKey], now); err != nil {
		return fmt.Errorf("%w: filters: %v", ErrInvalidValue, err)
	}
	if id, ok := doc[persistence.ThemeKey]; ok && !theme.Valid(id) {
		return fmt.Errorf("%w: theme %q", ErrInvalidValue, id)
	}
	return nil
}

// Import restores every key of the document read from r, or nothing
func (c *Codec) Import(ctx context.Context, r io.Reader) error {
	doc, err := ParseDocument(r)
	if err != nil {
		return err
	}
	if err := Validate(doc, c.clock.Now()); err != nil {
		return err
	}
	if err := c.kv.SetMany(ctx, doc); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	c.logger.Info("backup imported", "keys", len(doc))
	return nil
}

// ImportAll is Import reporting only success. Failures are logged.
func (c *Codec) ImportAll(ctx context.Context, r io.Reader) bool {
	if err := c.Import(ctx, r); err != nil {
		c.logger.Error("backup import failed", "error", err)
		return false
	}
	return true
}
