package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_AlwaysHasMaxLines(t *testing.T) {
	d := FromLines(make([]string, MaxLines+5))
	for row := 0; row < MaxLines; row++ {
		assert.True(t, d.Get(row).IsEmpty())
	}
	assert.Panics(t, func() { d.Get(MaxLines) })
}

func TestDocument_HighestNonEmptyRow(t *testing.T) {
	d := New()
	assert.Equal(t, -1, d.HighestNonEmptyRow())

	d.Set(3, "x")
	d.Set(7, "y")
	assert.Equal(t, 7, d.HighestNonEmptyRow())

	d.Clear()
	assert.Equal(t, -1, d.HighestNonEmptyRow())
}

func TestDocument_LinesKeepsInnerBlanks(t *testing.T) {
	d := FromLines([]string{"# Title", "", "body text"})

	assert.Equal(t, []string{"# Title", "", "body text"}, d.Lines())
	assert.Equal(t, "# Title\n\nbody text\n", d.Text())
	assert.Equal(t, "", New().Text())
}

func TestDocument_ShiftDownDropsLastRow(t *testing.T) {
	lines := make([]string, MaxLines)
	for i := range lines {
		lines[i] = string(rune('a' + i))
	}
	d := FromLines(lines)

	d.ShiftDown(5)

	assert.True(t, d.Get(5).IsEmpty())
	assert.Equal(t, "f", d.Get(6).String())
	assert.Equal(t, lines[MaxLines-2], d.Get(MaxLines-1).String())
}

func TestDocument_CloneIsIndependent(t *testing.T) {
	d := FromLines([]string{"abc"})
	c := d.Clone()
	c.Put(0, 0, 'z')

	assert.Equal(t, "abc", d.Get(0).String())
	assert.Equal(t, "zbc", c.Get(0).String())
}

func TestWrap_BreaksAtRightmostSpace(t *testing.T) {
	line := []byte(strings.Repeat("a", MaxLineLen))
	line[10] = ' '
	d := FromLines([]string{string(line), "next"})

	breakIdx, ok := d.Wrap(0)

	require.True(t, ok)
	assert.Equal(t, 10, breakIdx)
	assert.Equal(t, strings.Repeat("a", 10), d.Get(0).String())
	assert.Equal(t, string(line[11:]), d.Get(1).String())
	assert.Equal(t, "next", d.Get(2).String())
}

func TestWrap_HardBreakWithoutSpace(t *testing.T) {
	d := FromLines([]string{strings.Repeat("a", MaxLineLen)})

	breakIdx, ok := d.Wrap(0)

	require.True(t, ok)
	assert.Equal(t, MaxLineLen, breakIdx)
	assert.Equal(t, MaxLineLen, d.Get(0).Len())
	assert.True(t, d.Get(1).IsEmpty())
}

func TestWrap_SpaceAtColumnZero(t *testing.T) {
	d := FromLines([]string{" " + strings.Repeat("b", MaxLineLen-1)})

	breakIdx, ok := d.Wrap(0)

	require.True(t, ok)
	assert.Equal(t, 0, breakIdx)
	assert.True(t, d.Get(0).IsEmpty())
	assert.Equal(t, strings.Repeat("b", MaxLineLen-1), d.Get(1).String())
}

func TestWrap_IdempotentOnShortLine(t *testing.T) {
	short := strings.Repeat("c", MaxLineLen-1)
	d := FromLines([]string{short, "tail"})
	before := d.Clone()

	_, ok := d.Wrap(0)
	assert.False(t, ok)
	_, ok = d.Wrap(0)
	assert.False(t, ok)

	assert.Equal(t, before, d)
}

func TestWrap_LastRowIsNoop(t *testing.T) {
	d := New()
	d.Set(MaxLines-1, strings.Repeat("a", MaxLineLen))

	_, ok := d.Wrap(MaxLines - 1)

	assert.False(t, ok)
	assert.Equal(t, MaxLineLen, d.Get(MaxLines-1).Len())
}

func TestWrap_FullDocumentDropsLastRow(t *testing.T) {
	lines := make([]string, MaxLines)
	for i := range lines {
		lines[i] = "row"
	}
	lines[0] = strings.Repeat("w ", MaxLineLen/2) + "w"
	lines[MaxLines-1] = "lost"
	d := FromLines(lines)

	_, ok := d.Wrap(0)

	require.True(t, ok)
	assert.Equal(t, "row", d.Get(MaxLines-1).String())
	for row := 0; row < MaxLines; row++ {
		assert.NotEqual(t, "lost", d.Get(row).String())
	}
}
