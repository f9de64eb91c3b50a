package progs

import (
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// FromScript builds a Program by executing a starlark script. The
// script calls alphabet, tape, cell and rule to describe the machine;
// an empty string is the blank symbol.
func FromScript(name string, src string) (Program, error) {
	var program Program

	predeclared := starlark.StringDict{

		"alphabet": starlarkutil.MakeFunc("alphabet", func(symbols string) {
			program.Alphabet = symbols
		}),

		"tape": starlarkutil.MakeFunc("tape", func(symbols string) {
			program.Tape = symbols
		}),

		"cell": starlarkutil.MakeFunc("cell", func(index int, symbol string) {
			program.Cells = append(program.Cells, CellDef{
				Index:  index,
				Symbol: symbol,
			})
		}),

		"rule": starlarkutil.MakeFunc("rule", func(state int, symbol string, write string, move string, next int) {
			program.Rules = append(program.Rules, RuleDef{
				State:  state,
				Symbol: symbol,
				Write:  write,
				Move:   move,
				Next:   next,
			})
		}),
	}

	thread := &starlark.Thread{
		Name: name,
	}
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		},
		thread,
		name,
		src,
		predeclared,
	)
	if err != nil {
		return Program{}, err
	}

	return program, nil
}
