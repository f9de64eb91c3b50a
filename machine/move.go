package machine

import "fmt"

// Move is the head displacement of a transition.
type Move int

const (
	Stay  Move = 0
	Right Move = 1
	Left  Move = -1
)

func (m Move) Valid() bool {
	switch m {
	case Stay, Right, Left:
		return true
	}
	return false
}

func (m Move) String() string {
	switch m {
	case Stay:
		return "stay"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// ParseMove accepts the move tags and their equivalent integers.
func ParseMove(str string) (Move, error) {
	switch str {
	case "stay", "0":
		return Stay, nil
	case "right", "1":
		return Right, nil
	case "left", "-1":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: bad move %q", ErrInvalidTable, str)
}
