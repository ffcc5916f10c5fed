package editor

import (
	"context"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/markup"
)

// Status is the content of the status line.
type Status struct {
	Row      int // 0-based
	Col      int
	Lines    int
	Name     string
	Modified bool
}

// Renderer paints rows of the edit area and the status line.
type Renderer interface {
	PaintLine(row int, spans []markup.Span)
	ClearLine(row int)
	PaintStatus(st Status)
}

// KeyInput yields key events. NextKey blocks until a key is available and
// returns io.EOF when the source is exhausted.
type KeyInput interface {
	NextKey(ctx context.Context) (KeyEvent, error)
}

// Entry describes a stored document.
type Entry struct {
	Name string
	Size int64
}

// Storage persists whole documents by name.
type Storage interface {
	Save(ctx context.Context, name string, doc *document.Document) error
	Load(ctx context.Context, name string) (*document.Document, error)
	List(ctx context.Context, pattern string) ([]Entry, error)
}

type nopRenderer struct{}

func (nopRenderer) PaintLine(int, []markup.Span) {}
func (nopRenderer) ClearLine(int)                {}
func (nopRenderer) PaintStatus(Status)           {}
