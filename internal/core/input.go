package core

// Command represents a semantic game command, abstracted from physical key presses.
// Keyboard, mouse swipes and on-screen buttons all reduce to this small set.
type Command int

const (
	CommandNone    Command = iota
	CommandUp              // W, Up arrow
	CommandDown            // S, Down arrow
	CommandLeft            // A, Left arrow
	CommandRight           // D, Right arrow
	CommandFire            // Space - shoot (shooter) / start (snake)
	CommandStart           // Enter, click - leave the idle screen
	CommandRestart         // R - start a fresh session after game over
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandFire:
		return "Fire"
	case CommandStart:
		return "Start"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Dir returns the unit vector for a directional command.
// ok is false for non-directional commands.
func (c Command) Dir() (d Dir, ok bool) {
	switch c {
	case CommandUp:
		return DirUp, true
	case CommandDown:
		return DirDown, true
	case CommandLeft:
		return DirLeft, true
	case CommandRight:
		return DirRight, true
	}
	return Dir{}, false
}

// Dir is a unit grid direction.
type Dir struct {
	X, Y int
}

// The four unit directions. Screen coordinates: Y grows downwards.
var (
	DirUp    = Dir{X: 0, Y: -1}
	DirDown  = Dir{X: 0, Y: 1}
	DirLeft  = Dir{X: -1, Y: 0}
	DirRight = Dir{X: 1, Y: 0}
)

// Reverses reports whether d points exactly opposite to o.
func (d Dir) Reverses(o Dir) bool {
	return d.X+o.X == 0 && d.Y+o.Y == 0
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Heading tracks a grid mover's direction with one buffered turn.
// Turns are validated against the direction of the last committed move,
// so two quick key presses within one tick cannot fold the snake onto itself.
type Heading struct {
	moved Dir
	next  Dir
}

// NewHeading creates a heading pointing in d.
func NewHeading(d Dir) Heading {
	return Heading{moved: d, next: d}
}

// Turn buffers req as the next direction. A request that reverses the
// current heading is rejected and false is returned.
func (h *Heading) Turn(req Dir) bool {
	if req.Reverses(h.moved) {
		return false
	}
	h.next = req
	return true
}

// Commit applies the buffered turn and returns the direction to move in.
func (h *Heading) Commit() Dir {
	h.moved = h.next
	return h.moved
}

// Current returns the direction of the last committed move.
func (h Heading) Current() Dir {
	return h.moved
}

// Next returns the buffered direction for the coming move.
func (h Heading) Next() Dir {
	return h.next
}

// SwipeDir converts a drag vector into a direction along its dominant axis.
// Drags shorter than threshold on both axes are not swipes.
func SwipeDir(dx, dy, threshold float64) (Dir, bool) {
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax < threshold && ay < threshold {
		return Dir{}, false
	}
	if ax > ay {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}

// CommandFor returns the directional command matching d.
func CommandFor(d Dir) Command {
	switch d {
	case DirUp:
		return CommandUp
	case DirDown:
		return CommandDown
	case DirLeft:
		return CommandLeft
	case DirRight:
		return CommandRight
	default:
		return CommandNone
	}
}
