package textfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStore_SaveWritesThroughHighestRow(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, 0)

	doc := document.FromLines([]string{"# Title", "", "**bold** text"})
	require.NoError(t, s.Save(context.Background(), "md.txt", doc))

	data, err := os.ReadFile(filepath.Join(dir, "md.txt"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n**bold** text\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_SaveEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, 0)

	require.NoError(t, s.Save(context.Background(), "empty.md", document.New()))

	data, err := os.ReadFile(filepath.Join(dir, "empty.md"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestStore_SaveCreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "docs")
	s := New(dir, 0)

	require.NoError(t, s.Save(context.Background(), "a.md", document.FromLines([]string{"x"})))
	assert.FileExists(t, filepath.Join(dir, "a.md"))
}

func TestStore_RoundTrip(t *testing.T) {
	s := New(t.TempDir(), 0)
	ctx := context.Background()

	in := document.FromLines([]string{"one", "", "three", strings.Repeat("z", document.MaxLineLen)})
	require.NoError(t, s.Save(ctx, "doc.md", in))

	out, err := s.Load(ctx, "doc.md")
	require.NoError(t, err)
	assert.Equal(t, in.Lines(), out.Lines())
}

func TestStore_LoadNotFound(t *testing.T) {
	s := New(t.TempDir(), 0)

	_, err := s.Load(context.Background(), "missing.md")
	require.ErrorIs(t, err, editor.ErrNotFound)
}

func TestStore_LoadUnavailable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "adir.md"), 0o755))
	s := New(dir, 0)

	_, err := s.Load(context.Background(), "adir.md")
	require.ErrorIs(t, err, editor.ErrUnavailable)
}

func TestStore_InvalidNames(t *testing.T) {
	s := New(t.TempDir(), 0)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../x.md", "a/b.md", `a\b.md`, "bad\x01.md"} {
		_, err := s.Load(ctx, name)
		assert.ErrorIs(t, err, editor.ErrInvalidName, "load %q", name)

		err = s.Save(ctx, name, document.New())
		assert.ErrorIs(t, err, editor.ErrInvalidName, "save %q", name)
	}
}

func TestStore_LoadSplitsLongLinesAndStripsCR(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("a", document.MaxLineLen) + "tail"
	writeFile(t, dir, "dos.md", "first\r\n"+long+"\r\nlast\r\n")
	s := New(dir, 0)

	doc, err := s.Load(context.Background(), "dos.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", strings.Repeat("a", document.MaxLineLen), "tail", "last"}, doc.Lines())
}

func TestStore_LoadReplacesControlBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tab.md", "a\tb\n")
	s := New(dir, 0)

	doc, err := s.Load(context.Background(), "tab.md")
	require.NoError(t, err)
	assert.Equal(t, "a b", doc.Get(0).String())
}

func TestStore_ListFiltersSortsAndCaps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "bb")
	writeFile(t, dir, "a.md", "a")
	writeFile(t, dir, "c.md", "ccc")
	writeFile(t, dir, "notes.txt", "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.md"), 0o755))

	all, err := New(dir, 0).List(context.Background(), "*.md")
	require.NoError(t, err)
	assert.Equal(t, []editor.Entry{
		{Name: "a.md", Size: 1},
		{Name: "b.md", Size: 2},
		{Name: "c.md", Size: 3},
	}, all)

	capped, err := New(dir, 2).List(context.Background(), "*.md")
	require.NoError(t, err)
	require.Len(t, capped, 2)
	assert.Equal(t, "b.md", capped[1].Name)
}

func TestStore_ListBracePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "")
	writeFile(t, dir, "b.txt", "")
	writeFile(t, dir, "c.go", "")

	got, err := New(dir, 0).List(context.Background(), "*.{md,txt}")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.md", got[0].Name)
	assert.Equal(t, "b.txt", got[1].Name)
}

func TestStore_ListMissingDir(t *testing.T) {
	got, err := New(filepath.Join(t.TempDir(), "nope"), 0).List(context.Background(), "*.md")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_ListInvalidPattern(t *testing.T) {
	_, err := New(t.TempDir(), 0).List(context.Background(), "[")
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      []string
		truncated bool
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "single newline", in: "\n", want: []string{}},
		{name: "no trailing newline", in: "a\nb", want: []string{"a", "b"}},
		{name: "blank lines kept", in: "a\n\nb\n", want: []string{"a", "", "b"}},
		{
			name:      "too many lines",
			in:        strings.Repeat("x\n", document.MaxLines+3),
			want:      strings.Split(strings.TrimSuffix(strings.Repeat("x\n", document.MaxLines), "\n"), "\n"),
			truncated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Decode([]byte(tt.in))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}
