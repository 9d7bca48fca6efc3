// Package takeql provides a parse-then-execute pipeline for a minimal
// line-oriented command language.
//
// A program is text with one command per line. The parser turns it into an
// immutable core.Program or fails at the first malformed line; the executor
// folds the program into a db.QueryResult.
//
// # Quick Start
//
//	instance := takeql.Open(nil)
//	engine := instance.Engine()
//
//	parsed, result, err := engine.Run("take 10\ntake 3\ntake 7\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	parsed.Display(os.Stdout)
//	result.Display(os.Stdout) // bound 3
//
// # Supported Commands
//
//   - take <n>: limit the result to at most n units
//
// Repeated takes never widen the result; the smallest bound wins. A program
// without commands leaves the default source unbounded.
package takeql
