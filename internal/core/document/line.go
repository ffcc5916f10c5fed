// Package document holds the fixed-capacity text buffer edited by mdpad.
//
// A Document is always exactly MaxLines rows of bounded Lines. Nothing in this
// package grows: operations that would run past the last row or column either
// truncate or drop content.
package document

// Buffer dimensions.
const (
	LineCapacity = 80 // slot size per line, including the conceptual terminator
	MaxLines     = 21

	// MaxLineLen is the longest content a Line can hold.
	MaxLineLen = LineCapacity - 1
)

// Line is a bounded byte buffer. The zero value is an empty line.
//
// Line is a value type: assigning one Line to another copies the content, so
// no two Document slots ever share storage.
type Line struct {
	buf [LineCapacity]byte
	n   int
}

// NewLine builds a Line from s. Content past MaxLineLen is dropped and
// non-printable bytes are replaced with a space.
func NewLine(s string) Line {
	var l Line
	l.SetString(s)
	return l
}

// Len returns the number of bytes before the terminator.
func (l Line) Len() int { return l.n }

// IsEmpty reports whether the line has no content.
func (l Line) IsEmpty() bool { return l.n == 0 }

// String returns the line content.
func (l Line) String() string { return string(l.buf[:l.n]) }

// At returns the byte at col, or 0 when col is at or past the end.
func (l Line) At(col int) byte {
	if col < 0 || col >= l.n {
		return 0
	}
	return l.buf[col]
}

// SetString replaces the content with s, capped at MaxLineLen.
func (l *Line) SetString(s string) {
	if len(s) > MaxLineLen {
		s = s[:MaxLineLen]
	}
	for i := 0; i < len(s); i++ {
		l.buf[i] = Printable(s[i])
	}
	l.n = len(s)
}

// Put writes c at col. Writing inside the content overwrites in place and
// leaves the length unchanged; writing at the end appends and moves the
// terminator. Returns false when col is outside [0, min(Len, MaxLineLen-1)].
func (l *Line) Put(col int, c byte) bool {
	if col < 0 || col > l.n || col >= MaxLineLen {
		return false
	}
	l.buf[col] = Printable(c)
	if col == l.n {
		l.n = col + 1
	}
	return true
}

// Truncate cuts the line at n. Values past the end are ignored.
func (l *Line) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < l.n {
		l.n = n
	}
}

// LastSpace returns the index of the rightmost space strictly before limit,
// or -1 when there is none.
func (l Line) LastSpace(limit int) int {
	if limit > l.n {
		limit = l.n
	}
	for i := limit - 1; i >= 0; i-- {
		if l.buf[i] == ' ' {
			return i
		}
	}
	return -1
}

// Printable maps c to itself when it is printable ASCII and to a space
// otherwise.
func Printable(c byte) byte {
	if c < 32 || c > 126 {
		return ' '
	}
	return c
}

// IsPrintable reports whether c is storable without substitution.
func IsPrintable(c rune) bool {
	return c >= 32 && c <= 126
}
