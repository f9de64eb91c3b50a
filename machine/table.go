package machine

import (
	"errors"
	"fmt"

	"github.com/reusee/turing/tape"
)

var ErrInvalidTable = errors.New("invalid table")

// Key selects a transition by machine state and the symbol under the
// head. A key with tape.Blank as Symbol matches exactly when the cell
// under the head is blank, it is not a wildcard for unmatched symbols.
type Key struct {
	State  int
	Symbol tape.Symbol
}

// Transition is the instruction applied when its Key matches: print
// Write at the head (tape.Blank erases the cell), displace the head by
// Move, switch to state Next.
type Transition struct {
	Write tape.Symbol
	Move  Move
	Next  int
}

type Table map[Key]Transition

func (t Table) validate(alphabet tape.Alphabet) error {
	for key, transition := range t {
		if key.Symbol != tape.Blank && !alphabet.Contains(key.Symbol) {
			return fmt.Errorf("%w: key symbol %q not in alphabet, state %d", ErrInvalidTable, rune(key.Symbol), key.State)
		}
		if transition.Write != tape.Blank && !alphabet.Contains(transition.Write) {
			return fmt.Errorf("%w: write symbol %q not in alphabet, state %d symbol %q", ErrInvalidTable, rune(transition.Write), key.State, rune(key.Symbol))
		}
		if !transition.Move.Valid() {
			return fmt.Errorf("%w: bad move %d, state %d symbol %q", ErrInvalidTable, int(transition.Move), key.State, rune(key.Symbol))
		}
	}
	return nil
}
