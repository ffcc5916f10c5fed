package editor

import "fmt"

// KeyKind identifies a discrete key event.
type KeyKind uint8

const (
	KeyNone KeyKind = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySave
	KeyLoad
	KeyNew
	KeyHelp
	KeyPreview
	KeyQuit
)

var keyNames = map[KeyKind]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeySave:      "save",
	KeyLoad:      "load",
	KeyNew:       "new",
	KeyHelp:      "help",
	KeyPreview:   "preview",
	KeyQuit:      "quit",
}

func (k KeyKind) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// KeyEvent is one key read from a KeyInput.
type KeyEvent struct {
	Kind KeyKind
	Char byte // set when Kind is KeyChar
}

// Char returns a printable character event.
func Char(c byte) KeyEvent {
	return KeyEvent{Kind: KeyChar, Char: c}
}

// Key returns a non-character event.
func Key(k KeyKind) KeyEvent {
	return KeyEvent{Kind: k}
}

func (e KeyEvent) String() string {
	if e.Kind == KeyChar {
		return fmt.Sprintf("char(%q)", e.Char)
	}
	return e.Kind.String()
}

// Request is work a key event hands to the host instead of performing itself.
type Request uint8

const (
	RequestNone Request = iota
	RequestSave
	RequestLoad
	RequestNew
	RequestHelp
	RequestPreview
	RequestQuit
)

func (r Request) String() string {
	switch r {
	case RequestNone:
		return "none"
	case RequestSave:
		return "save"
	case RequestLoad:
		return "load"
	case RequestNew:
		return "new"
	case RequestHelp:
		return "help"
	case RequestPreview:
		return "preview"
	case RequestQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func requestFor(k KeyKind) Request {
	switch k {
	case KeySave:
		return RequestSave
	case KeyLoad:
		return RequestLoad
	case KeyNew:
		return RequestNew
	case KeyHelp:
		return RequestHelp
	case KeyPreview:
		return RequestPreview
	case KeyQuit:
		return RequestQuit
	default:
		return RequestNone
	}
}
