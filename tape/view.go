package tape

import "iter"

// View is a read-only proxy of a Tape. It is dynamic: when the tape
// changes, the view reflects the change.
type View struct {
	tape *Tape
}

func (t *Tape) View() *View {
	return t.view
}

func (v *View) Read(index int) Symbol {
	return v.tape.Read(index)
}

func (v *View) Len() int {
	return v.tape.Len()
}

func (v *View) Bounds() (minIndex, maxIndex int, ok bool) {
	return v.tape.Bounds()
}

func (v *View) All() iter.Seq2[int, Symbol] {
	return v.tape.All()
}

func (v *View) String() string {
	return v.tape.String()
}
