// Package markup turns a single editor line into styled spans.
//
// The scan is a single left-to-right pass with one character of lookahead.
// Markers are never hidden: they are emitted as part of the span they open or
// close. No state is carried between lines or between calls.
package markup

// Style is the display style of a span.
type Style int

const (
	Normal Style = iota
	Bold
	Italic
	Header1
	Header2
	Mono
)

func (s Style) String() string {
	switch s {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Header1:
		return "h1"
	case Header2:
		return "h2"
	case Mono:
		return "mono"
	default:
		return "unknown"
	}
}

// Span is a contiguous run of text in one style.
type Span struct {
	Text  string
	Style Style
}

// Text concatenates the text of spans.
func Text(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Compact merges adjacent spans that share a style. Empty spans are dropped.
func Compact(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
