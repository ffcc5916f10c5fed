package editor

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// scriptNames maps <name> tokens in a key script to key kinds.
var scriptNames = map[string]KeyKind{
	"enter":     KeyEnter,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"left":      KeyLeft,
	"right":     KeyRight,
	"up":        KeyUp,
	"down":      KeyDown,
	"save":      KeySave,
	"load":      KeyLoad,
	"new":       KeyNew,
	"help":      KeyHelp,
	"preview":   KeyPreview,
	"quit":      KeyQuit,
}

// ParseScript turns a key script into events. Printable characters type
// themselves, a newline is Enter, and <name> inserts a named key (see
// scriptNames). <lt> types a literal '<'. Carriage returns are ignored.
func ParseScript(script string) ([]KeyEvent, error) {
	var events []KeyEvent
	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case c == '\r':
		case c == '\n':
			events = append(events, Key(KeyEnter))
		case c == '<':
			end := strings.IndexByte(script[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated key name at offset %d", i)
			}
			name := strings.ToLower(script[i+1 : i+end])
			if name == "lt" {
				events = append(events, Char('<'))
			} else {
				kind, ok := scriptNames[name]
				if !ok {
					return nil, fmt.Errorf("unknown key %q at offset %d", name, i)
				}
				events = append(events, Key(kind))
			}
			i += end
		default:
			events = append(events, Char(c))
		}
	}
	return events, nil
}

// ScriptInput is a KeyInput that replays a fixed list of events.
type ScriptInput struct {
	events []KeyEvent
	pos    int
}

// NewScriptInput returns an input replaying events in order.
func NewScriptInput(events []KeyEvent) *ScriptInput {
	return &ScriptInput{events: events}
}

// NextKey returns the next event, or io.EOF once all events are consumed.
func (in *ScriptInput) NextKey(ctx context.Context) (KeyEvent, error) {
	if err := ctx.Err(); err != nil {
		return KeyEvent{}, err
	}
	if in.pos >= len(in.events) {
		return KeyEvent{}, io.EOF
	}
	ev := in.events[in.pos]
	in.pos++
	return ev, nil
}
