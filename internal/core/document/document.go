package document

import "strings"

// Document is an ordered, fixed-size sequence of MaxLines Lines.
//
// Row indices are validated by the caller; passing a row outside
// [0, MaxLines-1] is a programming error and panics.
type Document struct {
	lines [MaxLines]Line
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// FromLines builds a document from text lines. Rows past MaxLines are
// dropped; each line is capped at MaxLineLen.
func FromLines(lines []string) *Document {
	d := New()
	for i, s := range lines {
		if i >= MaxLines {
			break
		}
		d.lines[i].SetString(s)
	}
	return d
}

// Get returns a copy of the line at row.
func (d *Document) Get(row int) Line {
	return d.lines[row]
}

// Set replaces the content of row.
func (d *Document) Set(row int, content string) {
	d.lines[row].SetString(content)
}

// SetLine stores l at row by value.
func (d *Document) SetLine(row int, l Line) {
	d.lines[row] = l
}

// Put overwrites or appends c at (row, col). See Line.Put.
func (d *Document) Put(row, col int, c byte) bool {
	return d.lines[row].Put(col, c)
}

// Truncate cuts row at col.
func (d *Document) Truncate(row, col int) {
	d.lines[row].Truncate(col)
}

// Clear empties every line.
func (d *Document) Clear() {
	d.lines = [MaxLines]Line{}
}

// HighestNonEmptyRow returns the last row with content, or -1 when the
// document is empty.
func (d *Document) HighestNonEmptyRow() int {
	for i := MaxLines - 1; i >= 0; i-- {
		if !d.lines[i].IsEmpty() {
			return i
		}
	}
	return -1
}

// Lines returns the text of rows 0 through HighestNonEmptyRow. Empty rows
// inside that range are kept as empty strings.
func (d *Document) Lines() []string {
	last := d.HighestNonEmptyRow()
	out := make([]string, 0, last+1)
	for i := 0; i <= last; i++ {
		out = append(out, d.lines[i].String())
	}
	return out
}

// Text returns the persisted form: one newline-terminated line per row up to
// HighestNonEmptyRow.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, l := range d.Lines() {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns an independent copy.
func (d *Document) Clone() *Document {
	c := *d
	return &c
}

// ShiftDown moves rows [row, MaxLines-2] one slot toward the end, leaving
// row empty. Whatever occupied the last row is discarded.
func (d *Document) ShiftDown(row int) {
	for i := MaxLines - 1; i > row; i-- {
		d.lines[i] = d.lines[i-1]
	}
	d.lines[row] = Line{}
}
