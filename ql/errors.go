package ql

import (
	"errors"
	"fmt"
)

// ErrParse matches every *ParseError through errors.Is.
var ErrParse = errors.New("parse error")

// Reason identifies what was wrong with a malformed line.
type Reason int

const (
	UnknownCommand Reason = iota + 1
	MissingArgument
	InvalidNumber
	TrailingTokens
)

func (r Reason) String() string {
	switch r {
	case UnknownCommand:
		return "unknown command"
	case MissingArgument:
		return "missing argument"
	case InvalidNumber:
		return "invalid number"
	case TrailingTokens:
		return "trailing tokens"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// ParseError describes the first malformed line of a program.
// Token is empty when the defect is a missing token.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Reason Reason
}

func newParseError(token Token, reason Reason) *ParseError {
	parseErr := &ParseError{
		Line:   token.Pos.Line,
		Column: token.Pos.Column,
		Reason: reason,
	}
	if token.Type != EOF && token.Type != Newline {
		parseErr.Token = token.Value
	}
	return parseErr
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s %q", e.Line, e.Column, e.Reason, e.Token)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
