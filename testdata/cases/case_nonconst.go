package cases

type Mode int

const (
	Idle Mode = iota
	Busy
)

func currentMode() Mode { return Idle }

func describeMode(m Mode) string {
	switch m {
	case Idle:
		return "idle"
	case currentMode():
		return "current"
	}
	return "other"
}
