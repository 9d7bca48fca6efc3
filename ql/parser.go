package ql

import (
	"strconv"

	"github.com/nickyhof/takeql/core"
)

type Parser struct {
	lexer *Lexer
}

func NewParser(input string) *Parser {
	lexer := NewLexer(input)
	return &Parser{lexer: lexer}
}

// Parse is shorthand for NewParser(input).Parse().
func Parse(input string) (core.Program, error) {
	return NewParser(input).Parse()
}

// Parse reads every line of the input. Blank lines are skipped. The first
// malformed line aborts parsing with a *ParseError.
func (parser *Parser) Parse() (core.Program, error) {
	var commands []core.Command

	for {
		token := parser.lexer.NextToken()
		switch token.Type {
		case EOF:
			return core.NewProgram(commands...), nil
		case Newline:
			continue
		}

		command, err := parser.parseCommand(token)
		if err != nil {
			return core.Program{}, err
		}
		commands = append(commands, command)
	}
}

func (parser *Parser) parseCommand(keyword Token) (core.Command, error) {
	switch keyword.Type {
	case Take:
		return ParseTake(parser)
	default:
		return nil, newParseError(keyword, UnknownCommand)
	}
}

func ParseTake(parser *Parser) (core.Command, error) {
	token := parser.lexer.NextToken()
	if token.Type == EOF || token.Type == Newline {
		return nil, newParseError(token, MissingArgument)
	}
	if token.Type != Int {
		return nil, newParseError(token, InvalidNumber)
	}
	n, err := strconv.ParseUint(token.Value, 10, 64)
	if err != nil {
		return nil, newParseError(token, InvalidNumber)
	}

	if err := parser.expectEndOfLine(); err != nil {
		return nil, err
	}
	return core.TakeCommand{N: n}, nil
}

func (parser *Parser) expectEndOfLine() error {
	token := parser.lexer.NextToken()
	if token.Type != EOF && token.Type != Newline {
		return newParseError(token, TrailingTokens)
	}
	return nil
}
