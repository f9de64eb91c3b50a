package machine

import (
	"maps"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tape"
)

// Machine is a single-tape Turing machine. It owns its tape; the table
// is read-only after construction. Machines are not safe for concurrent
// use.
type Machine struct {
	Logger logs.Logger

	tape    *tape.Tape
	table   Table
	state   int
	head    int
	started bool
}

// New builds a machine over a dense initial tape. The table is
// validated before the tape is constructed.
func New(alphabet tape.Alphabet, table Table, input string) (*Machine, error) {
	if err := table.validate(alphabet); err != nil {
		return nil, err
	}
	t, err := tape.FromString(alphabet, input)
	if err != nil {
		return nil, err
	}
	return &Machine{
		tape:  t,
		table: table,
	}, nil
}

// NewSparse builds a machine over a sparse initial tape. The table is
// validated before the tape is constructed.
func NewSparse(alphabet tape.Alphabet, table Table, cells []tape.Cell) (*Machine, error) {
	if err := table.validate(alphabet); err != nil {
		return nil, err
	}
	t, err := tape.FromCells(alphabet, cells)
	if err != nil {
		return nil, err
	}
	return &Machine{
		tape:  t,
		table: table,
	}, nil
}

func (m *Machine) State() int {
	return m.state
}

func (m *Machine) Head() int {
	return m.head
}

// Tape is a live read-only view of the machine's tape.
func (m *Machine) Tape() *tape.View {
	return m.tape.View()
}

// Table returns a copy of the transition table.
func (m *Machine) Table() Table {
	return maps.Clone(m.table)
}

// Halted reports whether no transition matches the current
// configuration. It probes the table, it is not a stored flag.
func (m *Machine) Halted() bool {
	_, ok := m.table[Key{
		State:  m.state,
		Symbol: m.tape.Read(m.head),
	}]
	return !ok
}
