// Package ql provides lexing and parsing for the TakeQL command language.
//
// A program is one command per line. Blank lines are ignored. Tokens are
// separated by whitespace and keywords are case-sensitive.
//
// # Lexer Usage
//
//	lexer := ql.NewLexer("take 42\ntake 3")
//	for {
//	    token := lexer.NextToken()
//	    if token.Type == ql.EOF {
//	        break
//	    }
//	    fmt.Printf("Token: %s at %d:%d\n", token, token.Pos.Line, token.Pos.Column)
//	}
//
// # Parser Usage
//
//	program, err := ql.Parse("take 10\ntake 3\n")
//	if err != nil {
//	    var parseErr *ql.ParseError
//	    if errors.As(err, &parseErr) {
//	        log.Fatalf("line %d: %s", parseErr.Line, parseErr.Reason)
//	    }
//	}
//
// Parsing stops at the first malformed line.
//
// # Supported Commands
//
//   - take <non-negative integer>
package ql
