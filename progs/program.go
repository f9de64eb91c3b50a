package progs

import (
	"fmt"

	"github.com/reusee/turing/machine"
	"github.com/reusee/turing/tape"
)

// Program is a machine definition as data: an alphabet, an initial
// tape, and transition rules. Symbols are strings where the empty
// string means blank.
type Program struct {
	// Alphabet lists the tape symbols. Empty means the alphanumeric
	// default.
	Alphabet string `json:"alphabet"`
	// Tape is a dense initial tape starting at cell 0. Ignored when
	// Cells is non-empty.
	Tape  string    `json:"tape"`
	Cells []CellDef `json:"cells"`
	Rules []RuleDef `json:"rules"`
}

type CellDef struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

type RuleDef struct {
	State  int    `json:"state"`
	Symbol string `json:"symbol"`
	Write  string `json:"write"`
	Move   string `json:"move"`
	Next   int    `json:"next"`
}

// Table converts the rules. Duplicate (state, symbol) pairs are
// rejected.
func (p Program) Table() (machine.Table, error) {
	table := make(machine.Table, len(p.Rules))
	for _, rule := range p.Rules {
		symbol, err := tape.ParseSymbol(rule.Symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: rule symbol %q, state %d", machine.ErrInvalidTable, rule.Symbol, rule.State)
		}
		write, err := tape.ParseSymbol(rule.Write)
		if err != nil {
			return nil, fmt.Errorf("%w: rule write %q, state %d symbol %q", machine.ErrInvalidTable, rule.Write, rule.State, rule.Symbol)
		}
		move, err := machine.ParseMove(rule.Move)
		if err != nil {
			return nil, err
		}
		key := machine.Key{
			State:  rule.State,
			Symbol: symbol,
		}
		if _, ok := table[key]; ok {
			return nil, fmt.Errorf("%w: duplicate rule, state %d symbol %q", machine.ErrInvalidTable, rule.State, rule.Symbol)
		}
		table[key] = machine.Transition{
			Write: write,
			Move:  move,
			Next:  rule.Next,
		}
	}
	return table, nil
}

func (p Program) Build() (*machine.Machine, error) {
	alphabet := tape.Alphanumeric()
	if p.Alphabet != "" {
		alphabet = tape.NewAlphabet(p.Alphabet)
	}

	table, err := p.Table()
	if err != nil {
		return nil, err
	}

	if len(p.Cells) > 0 {
		cells := make([]tape.Cell, 0, len(p.Cells))
		for _, def := range p.Cells {
			symbol, err := tape.ParseSymbol(def.Symbol)
			if err != nil {
				return nil, err
			}
			cells = append(cells, tape.Cell{
				Index:  def.Index,
				Symbol: symbol,
			})
		}
		return machine.NewSparse(alphabet, table, cells)
	}

	return machine.New(alphabet, table, p.Tape)
}
