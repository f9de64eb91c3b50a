package machine

import "github.com/reusee/turing/tape"

// Next advances the machine by one step. The first call applies no
// transition and reports the untouched initial configuration with an
// empty ActionReport. Every later call looks up a transition for the
// current state and the symbol under the head, applies it, and reports
// the new configuration. ok is false once no transition matches: the
// machine has halted and further calls keep returning false.
func (m *Machine) Next() (Report, ActionReport, bool) {
	var action ActionReport

	if m.started {
		key := Key{
			State:  m.state,
			Symbol: m.tape.Read(m.head),
		}
		transition, ok := m.table[key]
		if !ok {
			return Report{}, ActionReport{}, false
		}

		cell := m.head
		m.state = transition.Next
		if err := m.tape.Write(cell, transition.Write); err != nil {
			// table validation guarantees the symbol is writable
			panic(err)
		}
		m.head += int(transition.Move)

		action = ActionReport{
			Cell:    cell,
			Symbol:  transition.Write,
			Move:    transition.Move,
			Applied: true,
		}
		if m.Logger != nil {
			printed := ""
			if transition.Write != tape.Blank {
				printed = string(rune(transition.Write))
			}
			m.Logger.Debug("step",
				"state", m.state,
				"head", m.head,
				"cell", cell,
				"printed", printed,
				"move", transition.Move.String(),
			)
		}

	} else {
		m.started = true
	}

	return Report{
		State: m.state,
		Head:  m.head,
		Tape:  m.tape.View(),
	}, action, true
}

// Run pushes (Report, ActionReport) pairs until the machine halts or
// the consumer stops. It is forward-only: breaking out and resuming,
// via Run or Next, continues from the exact internal state.
func (m *Machine) Run(yield func(Report, ActionReport) bool) {
	for {
		report, action, ok := m.Next()
		if !ok {
			return
		}
		if !yield(report, action) {
			return
		}
	}
}
