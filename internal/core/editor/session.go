// Package editor implements the overwrite-mode edit session: cursor movement,
// typing, destructive backspace, word wrap, and the repaint requests that
// follow every key.
package editor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/logging"
	"github.com/colonyops/mdpad/internal/core/markup"
)

// Options configures a Session.
type Options struct {
	Renderer Renderer           // defaults to a no-op renderer
	Logger   *zerolog.Logger    // defaults to the "editor" component logger
	Document *document.Document // initial content; defaults to empty
	Name     string             // name the document was loaded from, if any
}

// Session owns the document and cursor and is the only thing that mutates
// them. It is not safe for concurrent use.
type Session struct {
	doc      *document.Document
	cur      Cursor
	name     string
	modified bool

	renderer Renderer
	log      zerolog.Logger
}

// NewSession creates a session. Nothing is painted until the first key or an
// explicit Redraw.
func NewSession(opts Options) *Session {
	s := &Session{
		doc:      opts.Document,
		name:     opts.Name,
		renderer: opts.Renderer,
	}
	if s.doc == nil {
		s.doc = document.New()
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	} else {
		s.log = logging.Component("editor")
	}
	return s
}

// Cursor returns the current cursor.
func (s *Session) Cursor() Cursor { return s.cur }

// Name returns the document name, empty for an unsaved document.
func (s *Session) Name() string { return s.name }

// Modified reports whether the document changed since the last save, load,
// or reset.
func (s *Session) Modified() bool { return s.modified }

// Line returns the text of row.
func (s *Session) Line(row int) string { return s.doc.Get(row).String() }

// Snapshot returns a copy of the document.
func (s *Session) Snapshot() *document.Document { return s.doc.Clone() }

// Status returns the current status line content.
func (s *Session) Status() Status {
	return Status{
		Row:      s.cur.Row,
		Col:      s.cur.Col,
		Lines:    document.MaxLines,
		Name:     s.name,
		Modified: s.modified,
	}
}

// Handle processes one key event to completion: mutation, wrap check, and
// repaint of the touched rows plus the status line. Function keys are not
// handled here; they come back as a Request for the host.
func (s *Session) Handle(ev KeyEvent) Request {
	if req := requestFor(ev.Kind); req != RequestNone {
		return req
	}

	first, last := s.cur.Row, s.cur.Row

	switch ev.Kind {
	case KeyChar:
		last = s.typeChar(ev.Char)
	case KeyBackspace:
		first = s.backspace()
	case KeyEnter:
		if s.cur.Row < document.MaxLines-1 {
			s.cur = Cursor{Row: s.cur.Row + 1}
		}
	case KeyLeft:
		if s.cur.Col > 0 {
			s.cur.Col--
		}
	case KeyRight:
		if s.cur.Col < document.MaxLineLen && s.cur.Col < s.doc.Get(s.cur.Row).Len() {
			s.cur.Col++
		}
	case KeyUp:
		if s.cur.Row > 0 {
			s.cur.Row--
		}
	case KeyDown:
		if s.cur.Row < document.MaxLines-1 {
			s.cur.Row++
		}
	}

	s.cur = s.cur.clamp(s.doc)
	first = min(first, s.cur.Row)
	last = max(last, s.cur.Row)

	for row := first; row <= last; row++ {
		s.paintRow(row)
	}
	s.renderer.PaintStatus(s.Status())
	return RequestNone
}

// typeChar overwrites or appends c at the cursor and wraps when the line
// fills up. Returns the last row that needs repainting.
func (s *Session) typeChar(c byte) int {
	if !document.IsPrintable(rune(c)) || s.cur.Col >= document.MaxLineLen {
		return s.cur.Row
	}

	row, col := s.cur.Row, s.cur.Col
	atEnd := col == s.doc.Get(row).Len()
	if !s.doc.Put(row, col, c) {
		return row
	}
	s.cur.Col++
	s.modified = true

	if !atEnd || s.doc.Get(row).Len() < document.MaxLineLen {
		return row
	}

	dropped := !s.doc.Get(document.MaxLines - 1).IsEmpty()
	breakIdx, ok := s.doc.Wrap(row)
	if !ok {
		return row
	}

	s.log.Debug().Int("row", row).Int("break", breakIdx).Msg("wrapped line")
	if dropped {
		s.log.Warn().Int("row", document.MaxLines-1).Msg("document full, last line dropped by wrap")
	}

	if s.cur.Col >= breakIdx {
		s.cur = Cursor{Row: row + 1, Col: max(s.cur.Col-breakIdx-1, 0)}
	}
	return document.MaxLines - 1
}

// backspace is destructive: it truncates the line at the new column rather
// than shifting the remainder left. Returns the first row to repaint.
func (s *Session) backspace() int {
	if s.cur.Col > 0 {
		s.cur.Col--
		s.doc.Truncate(s.cur.Row, s.cur.Col)
		s.modified = true
		return s.cur.Row
	}
	if s.cur.Row == 0 {
		return 0
	}

	s.cur.Row--
	s.cur.Col = s.doc.Get(s.cur.Row).Len()
	if s.cur.Col < document.MaxLineLen {
		s.doc.Truncate(s.cur.Row, s.cur.Col)
	}
	return s.cur.Row
}

func (s *Session) paintRow(row int) {
	line := s.doc.Get(row)
	if line.IsEmpty() {
		s.renderer.ClearLine(row)
		return
	}
	s.renderer.PaintLine(row, markup.Tokenize(line.String()))
}

// Redraw repaints every row and the status line.
func (s *Session) Redraw() {
	for row := 0; row < document.MaxLines; row++ {
		s.paintRow(row)
	}
	s.renderer.PaintStatus(s.Status())
}

// Save hands a copy of the document to st. On failure nothing in the session
// changes and the error is returned for display.
func (s *Session) Save(ctx context.Context, st Storage, name string) error {
	if err := st.Save(ctx, name, s.doc.Clone()); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("save failed")
		return fmt.Errorf("save %s: %w", name, err)
	}

	s.name = name
	s.modified = false
	s.log.Info().Str("name", name).Int("lines", s.doc.HighestNonEmptyRow()+1).Msg("document saved")
	s.renderer.PaintStatus(s.Status())
	return nil
}

// Load replaces the document with the one stored under name and moves the
// cursor home. On failure the current document is kept.
func (s *Session) Load(ctx context.Context, st Storage, name string) error {
	doc, err := st.Load(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("load failed")
		return fmt.Errorf("load %s: %w", name, err)
	}

	s.replace(doc, name)
	s.log.Info().Str("name", name).Int("lines", doc.HighestNonEmptyRow()+1).Msg("document loaded")
	return nil
}

// Reset clears the document for a new file.
func (s *Session) Reset() {
	s.replace(document.New(), "")
	s.log.Info().Msg("document cleared")
}

func (s *Session) replace(doc *document.Document, name string) {
	s.doc = doc
	s.cur = Cursor{}
	s.name = name
	s.modified = false
	s.Redraw()
}
