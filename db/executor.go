package db

import (
	"fmt"

	"github.com/nickyhof/takeql/core"
)

// ContractViolation is the panic value raised when a program holds a command
// the executor cannot run. Programs returned by the parser never do.
type ContractViolation struct {
	Index  int
	Reason string
}

func (v *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation at command %d: %s", v.Index, v.Reason)
}

// Execute folds program into a QueryResult, starting from an unbounded source.
func Execute(program core.Program) QueryResult {
	return execute(program, nil)
}

type stepFunc func(index int, command core.Command, bound core.Bound)

func execute(program core.Program, step stepFunc) QueryResult {
	bound := core.Unbounded()

	for i := 0; i < program.Len(); i++ {
		command := program.At(i)
		bound = apply(bound, i, command)
		if step != nil {
			step(i, command, bound)
		}
	}

	return QueryResult{
		Bound:           bound,
		CommandsApplied: program.Len(),
	}
}

func apply(bound core.Bound, index int, command core.Command) core.Bound {
	switch c := command.(type) {
	case core.TakeCommand:
		return bound.Min(c.N)
	case nil:
		panic(&ContractViolation{Index: index, Reason: "nil command"})
	default:
		panic(&ContractViolation{Index: index, Reason: fmt.Sprintf("unsupported command %T", command)})
	}
}
