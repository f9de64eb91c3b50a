package progs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machine"
)

type Module struct {
	dscope.Module
}

// LoadMachine builds a machine from CUE definition files.
type LoadMachine func(filePaths ...string) (*machine.Machine, error)

func (Module) LoadMachine(
	logger logs.Logger,
) LoadMachine {
	return func(filePaths ...string) (*machine.Machine, error) {
		loader := configs.NewLoader(filePaths, Schema)
		program, err := Load(loader)
		if err != nil {
			return nil, err
		}
		m, err := program.Build()
		if err != nil {
			return nil, err
		}
		m.Logger = logger
		return m, nil
	}
}
