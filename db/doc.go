// Package db provides the execution engine for TakeQL programs.
//
// The Engine type is the main entry point. It parses program text, executes
// the resulting program and returns results.
//
// # Engine Usage
//
//	engine := db.NewEngine(db.WithLogger(logger))
//	parsed, result, err := engine.Run("take 10\ntake 3\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	parsed.Display(os.Stdout)
//	result.Display(os.Stdout)
//
// # Result Types
//
// There are two result types:
//   - ParseResult: the parsed program
//   - QueryResult: the bound left after every command has been applied
//
// Execution starts from an unbounded default source. Each take narrows the
// bound to the smaller of the current bound and its argument, so the final
// bound of a program is the minimum of its take arguments.
package db
