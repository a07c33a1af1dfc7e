package classify

// Band is a discrete risk classification used to pick overlay colors
type Band int

const (
	Safe Band = iota
	Caution
	Danger
	Alert
)

func (b Band) String() string {
	switch b {
	case Safe:
		return "safe"
	case Caution:
		return "caution"
	case Danger:
		return "danger"
	case Alert:
		return "alert"
	default:
		return "unknown"
	}
}

// Side of the body
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}
