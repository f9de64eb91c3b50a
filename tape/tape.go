package tape

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrInvalidSymbol          = errors.New("invalid symbol")
	ErrInvalidTapeDescription = errors.New("invalid tape description")
)

// Tape is an infinite sequence of cells in two directions. Negative
// indices do not count from the end, they address cells to the left of
// cell 0. Only non-blank cells are stored.
type Tape struct {
	alphabet Alphabet
	cells    map[int]Symbol
	// bounds of the stored cells, meaningless while the tape is empty
	min, max int
	view     *View
}

type Cell struct {
	Index  int
	Symbol Symbol
}

func newTape(alphabet Alphabet, cells map[int]Symbol) *Tape {
	t := &Tape{
		alphabet: alphabet,
		cells:    cells,
	}
	t.view = &View{
		tape: t,
	}
	t.resetBounds()
	return t
}

// FromString builds a tape from a dense sequence of symbols starting at
// cell 0, one cell per rune.
func FromString(alphabet Alphabet, str string) (*Tape, error) {
	cells := make(map[int]Symbol, len(str))
	index := 0
	for _, r := range str {
		symbol := Symbol(r)
		if !alphabet.Contains(symbol) {
			return nil, fmt.Errorf("%w: symbol %q not in alphabet", ErrInvalidTapeDescription, r)
		}
		cells[index] = symbol
		index++
	}
	return newTape(alphabet, cells), nil
}

// FromCells builds a tape from sparse (index, symbol) pairs. Blank
// entries are dropped.
func FromCells(alphabet Alphabet, descs []Cell) (*Tape, error) {
	cells := make(map[int]Symbol, len(descs))
	for _, desc := range descs {
		if desc.Symbol == Blank {
			continue
		}
		if !alphabet.Contains(desc.Symbol) {
			return nil, fmt.Errorf("%w: symbol %q not in alphabet at cell %d", ErrInvalidTapeDescription, rune(desc.Symbol), desc.Index)
		}
		cells[desc.Index] = desc.Symbol
	}
	return newTape(alphabet, cells), nil
}

func (t *Tape) Alphabet() Alphabet {
	return t.alphabet
}

// Read is total, an absent cell reads as Blank.
func (t *Tape) Read(index int) Symbol {
	return t.cells[index]
}

// Write stores symbol at index. Writing Blank erases the cell.
func (t *Tape) Write(index int, symbol Symbol) error {
	if symbol == Blank {
		if _, ok := t.cells[index]; !ok {
			return nil
		}
		delete(t.cells, index)
		if len(t.cells) > 0 && (index == t.min || index == t.max) {
			t.resetBounds()
		}
		return nil
	}
	if !t.alphabet.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, rune(symbol))
	}
	if len(t.cells) == 0 {
		t.min, t.max = index, index
	} else {
		t.min = min(t.min, index)
		t.max = max(t.max, index)
	}
	t.cells[index] = symbol
	return nil
}

// Len is the number of non-blank cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Bounds reports the leftmost and rightmost non-blank cells.
// ok is false when the tape is entirely blank.
func (t *Tape) Bounds() (minIndex, maxIndex int, ok bool) {
	if len(t.cells) == 0 {
		return 0, 0, false
	}
	return t.min, t.max, true
}

// All iterates cells from the leftmost to the rightmost non-blank cell,
// reporting Blank for gaps. The sequence is live: it reads the tape as
// it goes, and each call starts a fresh sequence. An entirely blank
// tape yields nothing.
func (t *Tape) All() iter.Seq2[int, Symbol] {
	return func(yield func(int, Symbol) bool) {
		if len(t.cells) == 0 {
			return
		}
		for i := t.min; i <= t.max; i++ {
			if !yield(i, t.cells[i]) {
				return
			}
		}
	}
}

func (t *Tape) String() string {
	var sb strings.Builder
	for _, symbol := range t.All() {
		if symbol == Blank {
			sb.WriteByte('#')
		} else {
			sb.WriteRune(rune(symbol))
		}
	}
	return sb.String()
}

func (t *Tape) resetBounds() {
	first := true
	for i := range t.cells {
		if first {
			t.min, t.max = i, i
			first = false
			continue
		}
		if i < t.min {
			t.min = i
		}
		if i > t.max {
			t.max = i
		}
	}
}
