// Package core provides the data model shared by the parser and the executor.
//
// # Commands
//
// A Command is one instruction of the language. The set of commands is closed:
// every variant implements an unexported marker method, so only this package
// can add new ones.
//
//	cmd := core.TakeCommand{N: 42}
//
// # Programs
//
// A Program is an ordered, immutable list of commands:
//
//	program := core.NewProgram(core.TakeCommand{N: 10}, core.TakeCommand{N: 3})
//	program.Len() // 2
//
// # Bounds
//
// A Bound is the maximum result size tracked while a program is executed.
// Execution starts from Unbounded() and each take narrows it.
package core
