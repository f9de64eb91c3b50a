package tape

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

type Symbol rune

// Blank is the distinguished empty symbol. It is never stored in a tape.
const Blank Symbol = 0

type Alphabet struct {
	symbols map[Symbol]struct{}
}

func NewAlphabet(symbols string) Alphabet {
	set := make(map[Symbol]struct{}, len(symbols))
	for _, r := range symbols {
		set[Symbol(r)] = struct{}{}
	}
	return Alphabet{
		symbols: set,
	}
}

const alphanumericSymbols = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789_"

// Alphanumeric is the alphabet of letters, digits and underscore.
var Alphanumeric = sync.OnceValue(func() Alphabet {
	return NewAlphabet(alphanumericSymbols)
})

func (a Alphabet) Contains(symbol Symbol) bool {
	_, ok := a.symbols[symbol]
	return ok
}

func (a Alphabet) Len() int {
	return len(a.symbols)
}

// ParseSymbol converts a string form to a Symbol.
// The empty string is the blank symbol.
func ParseSymbol(str string) (Symbol, error) {
	if str == "" {
		return Blank, nil
	}
	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError || size != len(str) {
		return Blank, fmt.Errorf("%w: not a single symbol: %q", ErrInvalidTapeDescription, str)
	}
	return Symbol(r), nil
}
