package flow

// State step of the booking flow
type State string

const (
	StateChoosingResource State = "choosing-resource"
	StateChoosingSlot     State = "choosing-slot"
	StateConfirming       State = "confirming"
)

func (s State) String() string {
	return string(s)
}

// Transition names used for logging and metrics
const (
	TransitionSelectResource = "select_resource"
	TransitionHighlight      = "highlight"
	TransitionSelectSlot     = "select_slot"
	TransitionBack           = "back"
	TransitionConfirm        = "confirm"
	TransitionSetDate        = "set_date"
)

