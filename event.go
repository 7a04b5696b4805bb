package termtrack

// Event is a semantic command decoded from user input
type Event int

const (
	// Exit asks the driver to stop
	Exit Event = iota + 1
	// ToggleInfo shows or hides the info overlay
	ToggleInfo
)

func (e Event) String() string {
	switch e {
	case Exit:
		return "Exit"
	case ToggleInfo:
		return "ToggleInfo"
	}
	return "Event(invalid)"
}
