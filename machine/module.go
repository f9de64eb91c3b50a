package machine

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tape"
)

type Module struct {
	dscope.Module
}

type NewMachine func(alphabet tape.Alphabet, table Table, input string) (*Machine, error)

func (Module) NewMachine(
	logger logs.Logger,
) NewMachine {
	return func(alphabet tape.Alphabet, table Table, input string) (*Machine, error) {
		m, err := New(alphabet, table, input)
		if err != nil {
			return nil, err
		}
		m.Logger = logger
		return m, nil
	}
}
