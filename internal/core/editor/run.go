package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// RequestHandler fulfils a Request returned by Handle, typically by showing a
// dialog and then calling Save, Load, or Reset.
type RequestHandler func(ctx context.Context, s *Session, req Request) error

// Run reads keys from in and processes each one fully before reading the
// next. It returns nil when in is exhausted or a quit key arrives, and the
// context error when ctx is cancelled. Requests other than quit go to handle;
// a nil handle ignores them.
func (s *Session) Run(ctx context.Context, in KeyInput, handle RequestHandler) error {
	s.Redraw()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := in.NextKey(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		req := s.Handle(ev)
		switch req {
		case RequestNone:
		case RequestQuit:
			return nil
		default:
			if handle == nil {
				continue
			}
			if err := handle(ctx, s, req); err != nil {
				return fmt.Errorf("%s: %w", req, err)
			}
		}
	}
}
