package locomotion

import "strconv"

// State is the movement state, each backed by a clip of the same name.
type State int

const (
	Idle State = iota
	Walk
	Run
)

var stateNames = [...]string{
	Idle: "Idle",
	Walk: "Walk",
	Run:  "Run",
}

// States lists every State in declaration order.
func States() []State {
	return []State{Idle, Walk, Run}
}

// String returns the clip name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// Valid reports whether s is one of Idle, Walk or Run.
func (s State) Valid() bool {
	return s >= Idle && s <= Run
}

// ParseState maps a clip name to its State.
//
// Parameters:
//   - name: "Idle", "Walk" or "Run"
//
// Returns:
//   - State: the matching state
//   - bool: false if name is not a movement state
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return Idle, false
}

// targetState derives the movement state from the held keys and the run toggle.
func targetState(anyDirection, running bool) State {
	switch {
	case !anyDirection:
		return Idle
	case running:
		return Run
	default:
		return Walk
	}
}
