package machine

import "github.com/reusee/turing/tape"

// Report is the machine configuration after a step. Tape is a live view
// of the machine's tape, not a snapshot.
type Report struct {
	State int
	Head  int
	Tape  *tape.View
}

// ActionReport describes what the last step did.
type ActionReport struct {
	// Cell is the index that was written, the head position before the
	// move. Symbol is what was printed there, tape.Blank when the cell
	// was erased.
	Cell   int
	Symbol tape.Symbol
	Move   Move
	// Applied is false only for the initial report, which precedes any
	// transition.
	Applied bool
}
