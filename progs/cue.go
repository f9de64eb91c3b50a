package progs

import "github.com/reusee/turing/configs"

// Schema constrains machine definition documents.
const Schema = `
machine?: {
	alphabet?: string
	tape?: string
	cells?: [...{
		index: int
		symbol: string
	}]
	rules: [...{
		state: int
		symbol?: string
		write?: string
		move: string
		next: int
	}]
}
`

// Load decodes the first "machine" value the loader finds.
func Load(loader configs.Loader) (Program, error) {
	var program Program
	if err := loader.AssignFirst("machine", &program); err != nil {
		return Program{}, err
	}
	return program, nil
}
