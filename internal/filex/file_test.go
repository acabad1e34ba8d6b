package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")

	got, err := EnsureDir(target)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	st, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	// idempotent
	_, err = EnsureDir(target)
	require.NoError(t, err)
}

func TestReadLines_MissingFile(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWriteLinesThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")

	require.NoError(t, WriteLines(path, []string{"one", "two"}))
	require.NoError(t, WriteLines(path, []string{"three"}))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, lines)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestReadLines_SkipsBlankAndCR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n\n  \nb\n"), 0o600))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestAppendLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")

	require.NoError(t, AppendLine(path, "x"))
	require.NoError(t, AppendLine(path, "y"))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, lines)
}

func TestWriters_RejectOversizedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.txt")
	require.NoError(t, WriteLines(path, []string{"keep"}))

	huge := strings.Repeat("x", MaxLineSize+1)
	assert.ErrorIs(t, WriteLines(path, []string{"a", huge}), ErrLineTooLong)
	assert.ErrorIs(t, AppendLine(path, huge), ErrLineTooLong)

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, lines)
}

func TestReadLines_AcceptsMaxSizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.txt")
	longest := strings.Repeat("y", MaxLineSize)
	require.NoError(t, WriteLines(path, []string{longest, "next"}))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], MaxLineSize)
}
