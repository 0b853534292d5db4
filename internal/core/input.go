package core

// Direction is the requested paddle movement for one sampled intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirNone:
		return "None"
	default:
		return "Unknown"
	}
}

// InputIntent is one debounced snapshot of the player controls. Direction and
// Action are independent fields; both may be set in the same sample.
type InputIntent struct {
	Dir    Direction
	Action bool
}

// Poller exposes the external input device to the simulation. Sample must be
// non-blocking and always return a self-consistent intent; a read fault maps
// to the zero intent, never to an error.
type Poller interface {
	Sample() InputIntent
}

// PollerFunc adapts a plain function to the Poller interface.
type PollerFunc func() InputIntent

// Sample calls f.
func (f PollerFunc) Sample() InputIntent {
	return f()
}
