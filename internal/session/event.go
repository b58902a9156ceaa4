package session

// EventKind enumerates the abstract inputs the machine understands.
type EventKind int

const (
	EventMoveUp EventKind = iota
	EventMoveDown
	EventConfirm
	EventCancel
	EventChar
	EventBackspace
	EventSubmit
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventMoveUp:
		return "move-up"
	case EventMoveDown:
		return "move-down"
	case EventConfirm:
		return "confirm"
	case EventCancel:
		return "cancel"
	case EventChar:
		return "char"
	case EventBackspace:
		return "backspace"
	case EventSubmit:
		return "submit"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one abstract input. Char is set only for EventChar.
type Event struct {
	Kind EventKind
	Char rune
}

var (
	MoveUp    = Event{Kind: EventMoveUp}
	MoveDown  = Event{Kind: EventMoveDown}
	Confirm   = Event{Kind: EventConfirm}
	Cancel    = Event{Kind: EventCancel}
	Backspace = Event{Kind: EventBackspace}
	Submit    = Event{Kind: EventSubmit}
	Quit      = Event{Kind: EventQuit}
)

// Char returns a character event.
func Char(r rune) Event {
	return Event{Kind: EventChar, Char: r}
}

// IsPrintable reports whether r is a printable ASCII character other than
// space.
func IsPrintable(r rune) bool {
	return r > ' ' && r <= '~'
}
