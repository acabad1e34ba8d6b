package table

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/filex"
	"github.com/dmitrijs2005/newsboard/internal/logging"
)

type row struct {
	id, val string
}

func encodeRow(r row) string { return r.id + "=" + r.val }

func decodeRow(s string) (row, bool) {
	id, val, ok := strings.Cut(s, "=")
	return row{id, val}, ok
}

func newTable(t *testing.T) *Table[row] {
	t.Helper()
	return New(t.TempDir(), "rows.txt", encodeRow, decodeRow, logging.Discard())
}

func TestTable_LoadMissingIsEmpty(t *testing.T) {
	tb := newTable(t)
	assert.Empty(t, tb.Load(context.Background()))
}

func TestTable_UpsertAndRemove(t *testing.T) {
	ctx := context.Background()
	tb := newTable(t)
	key := func(r row) string { return r.id }

	require.NoError(t, tb.Upsert(ctx, row{"a", "1"}, key))
	require.NoError(t, tb.Upsert(ctx, row{"b", "2"}, key))
	require.NoError(t, tb.Upsert(ctx, row{"a", "3"}, key))
	assert.Equal(t, []row{{"a", "3"}, {"b", "2"}}, tb.Load(ctx))

	n, err := tb.RemoveWhere(ctx, func(r row) bool { return r.id == "a" })
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []row{{"b", "2"}}, tb.Load(ctx))

	n, err = tb.RemoveWhere(ctx, func(r row) bool { return r.id == "zzz" })
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTable_AppendAndMalformed(t *testing.T) {
	ctx := context.Background()
	tb := newTable(t)

	require.NoError(t, tb.Append(ctx, row{"a", "1"}))
	f, err := os.OpenFile(tb.Path(), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("no separator here\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, tb.Append(ctx, row{"b", "2"}))

	assert.Equal(t, []row{{"a", "1"}, {"b", "2"}}, tb.Load(ctx))
}

func TestTable_StoreFailsForMissingDir(t *testing.T) {
	tb := New(filepath.Join(t.TempDir(), "missing"), "rows.txt", encodeRow, decodeRow, logging.Discard())
	err := tb.Store(context.Background(), []row{{"a", "1"}})
	assert.Error(t, err)
}

func TestTable_MutationsKeepUnreadableFile(t *testing.T) {
	ctx := context.Background()
	tb := newTable(t)
	key := func(r row) string { return r.id }

	// A line over the reader limit makes the whole file unreadable.
	broken := "a=1\n" + "big=" + strings.Repeat("x", filex.MaxLineSize) + "\n"
	require.NoError(t, os.WriteFile(tb.Path(), []byte(broken), 0o600))

	assert.Empty(t, tb.Load(ctx))

	err := tb.Upsert(ctx, row{"b", "2"}, key)
	require.Error(t, err)
	_, err = tb.RemoveWhere(ctx, func(r row) bool { return r.id == "a" })
	require.Error(t, err)

	data, err := os.ReadFile(tb.Path())
	require.NoError(t, err)
	assert.Equal(t, broken, string(data))
}
