package ql

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Position is a location in the program text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
}

type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

type TokenType int

const (
	Word TokenType = iota
	Int
	Take
	Newline
	EOF
)

func (token Token) String() string {
	switch token.Type {
	case Word:
		return "Word(" + token.Value + ")"
	case Int:
		return "Int(" + token.Value + ")"
	case Take:
		return "Take"
	case Newline:
		return "Newline"
	case EOF:
		return "EOF"
	default:
		return "Unknown(" + strconv.Itoa(int(token.Type)) + ")"
	}
}

const eof rune = -1

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

func NewLexer(input string) *Lexer {
	lexer := &Lexer{input: input, line: 1}
	lexer.readChar()
	return lexer
}

func (lexer *Lexer) readChar() {
	if lexer.ch == '\n' {
		lexer.line++
		lexer.column = 0
	}
	lexer.position = lexer.readPosition
	if lexer.readPosition >= len(lexer.input) {
		lexer.ch = eof
		lexer.column++
		return
	}
	r, width := utf8.DecodeRuneInString(lexer.input[lexer.readPosition:])
	lexer.ch = r
	lexer.readPosition += width
	lexer.column++
}

// NextToken returns the next token. Newlines are returned as tokens so the
// parser can tell where a command ends; other whitespace is skipped. Once the
// input is exhausted every call returns EOF.
func (lexer *Lexer) NextToken() Token {
	lexer.skipWhitespace()

	pos := Position{Line: lexer.line, Column: lexer.column}

	switch lexer.ch {
	case eof:
		return Token{Type: EOF, Pos: pos}
	case '\n':
		lexer.readChar()
		return Token{Type: Newline, Value: "\n", Pos: pos}
	}

	literal := lexer.readWord()
	return Token{Type: lookupWord(literal), Value: literal, Pos: pos}
}

func (lexer *Lexer) skipWhitespace() {
	for lexer.ch != '\n' && lexer.ch != eof && unicode.IsSpace(lexer.ch) {
		lexer.readChar()
	}
}

func (lexer *Lexer) readWord() string {
	position := lexer.position
	for lexer.ch != eof && !unicode.IsSpace(lexer.ch) {
		lexer.readChar()
	}
	return lexer.input[position:lexer.position]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// lookupWord classifies a whitespace-delimited word. Keyword matching is exact.
func lookupWord(word string) TokenType {
	if word == "take" {
		return Take
	}
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			return Word
		}
	}
	return Int
}

func tokenize(input string) []Token {
	lexer := NewLexer(input)

	var tokens []Token

	for {
		token := lexer.NextToken()
		if token.Type == EOF {
			return append(tokens, token)
		}
		tokens = append(tokens, token)
	}
}
