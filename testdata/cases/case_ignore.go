package cases

type State int

const (
	Created State = iota
	Running
	Stopped
)

func describeState(s State) string {
	switch s { //caseful:ignore
	case Created:
		return "created"
	}
	return "other"
}
