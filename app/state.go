package app

// State represents the current application state.
type State int

const (
	StateLoading State = iota // Waiting for the first window size
	StateReady                // Picker on screen
	StateHelp                 // Help overlay
	StateError                // No columns could be loaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateHelp:
		return "help"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
