// Package table implements a line-oriented flat-file table: one encoded
// record per line, re-read on every load and rewritten as a whole on change.
package table

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/newsboard/internal/codec"
	"github.com/dmitrijs2005/newsboard/internal/filex"
	"github.com/dmitrijs2005/newsboard/internal/logging"
)

// Table stores records of type T in a single file.
type Table[T any] struct {
	path   string
	encode func(T) string
	decode func(string) (T, bool)
	logger logging.Logger
}

func New[T any](dir, name string, encode func(T) string, decode func(string) (T, bool), logger logging.Logger) *Table[T] {
	return &Table[T]{
		path:   filepath.Join(dir, name),
		encode: encode,
		decode: decode,
		logger: logger.With("table", name),
	}
}

func (t *Table[T]) Path() string { return t.path }

// Load returns every decodable record. Read failures are logged and treated
// as an empty table; use it for queries only.
func (t *Table[T]) Load(ctx context.Context) []T {
	items, err := t.load(ctx)
	if err != nil {
		t.logger.Error(ctx, "read table", "error", err)
		return []T{}
	}
	return items
}

// load is the strict read behind every rewrite. An unreadable file must
// never be replaced by what little could be decoded from it.
func (t *Table[T]) load(ctx context.Context) ([]T, error) {
	lines, err := filex.ReadLines(t.path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(t.path), err)
	}
	items := codec.DecodeLines(lines, t.decode)
	if dropped := len(lines) - len(items); dropped > 0 {
		t.logger.Warn(ctx, "skipped malformed lines", "count", dropped)
	}
	return items, nil
}

// Store replaces the table contents with items.
func (t *Table[T]) Store(ctx context.Context, items []T) error {
	if err := filex.WriteLines(t.path, codec.EncodeLines(items, t.encode)); err != nil {
		return fmt.Errorf("store %s: %w", filepath.Base(t.path), err)
	}
	t.logger.Debug(ctx, "table written", "rows", len(items))
	return nil
}

// Append adds one record at the end of the table.
func (t *Table[T]) Append(ctx context.Context, item T) error {
	if err := filex.AppendLine(t.path, t.encode(item)); err != nil {
		return fmt.Errorf("append %s: %w", filepath.Base(t.path), err)
	}
	return nil
}

// Upsert replaces the record whose key matches item, or appends it, and
// rewrites the table. Nothing is written when the table cannot be read.
func (t *Table[T]) Upsert(ctx context.Context, item T, key func(T) string) error {
	items, err := t.load(ctx)
	if err != nil {
		return err
	}
	k := key(item)
	replaced := false
	for i := range items {
		if key(items[i]) == k {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return t.Store(ctx, items)
}

// RemoveWhere drops every record matching pred and reports how many were
// removed. The file is only rewritten when something changed, and never
// when it cannot be read.
func (t *Table[T]) RemoveWhere(ctx context.Context, pred func(T) bool) (int, error) {
	items, err := t.load(ctx)
	if err != nil {
		return 0, err
	}
	kept := items[:0]
	for _, it := range items {
		if !pred(it) {
			kept = append(kept, it)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, t.Store(ctx, kept)
}
