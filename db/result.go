package db

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/nickyhof/takeql/core"
	"github.com/nickyhof/takeql/ql"
)

type ResultType int

const (
	QueryResultType ResultType = iota
	ParseResultType
)

type Result interface {
	Type() ResultType
	Display(w io.Writer)
}

type QueryResult struct {
	Bound            core.Bound `json:"bound"`
	CommandsApplied  int        `json:"commands"`
	ExecutionTimeSec float64    `json:"executionTimeSec"`
}

// ParseResult wraps a successfully parsed program for display.
type ParseResult struct {
	Program core.Program
}

func (result QueryResult) Type() ResultType {
	return QueryResultType
}

func (result ParseResult) Type() ResultType {
	return ParseResultType
}

// formatDuration formats a duration in human-readable form
func formatDuration(secs float64) string {
	if secs < 0.001 {
		return "<1ms"
	} else if secs < 1 {
		ms := secs * 1000
		if ms < 10 {
			return fmt.Sprintf("%.1fms", ms)
		}
		return fmt.Sprintf("%dms", int(ms))
	} else if secs < 60 {
		if secs < 10 {
			return fmt.Sprintf("%.1fs", secs)
		}
		return fmt.Sprintf("%ds", int(secs))
	}
	mins := int(secs / 60)
	remainSecs := int(secs) % 60
	if remainSecs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm%ds", mins, remainSecs)
}

func (result QueryResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

func (result QueryResult) Display(w io.Writer) {
	data := NewTable(w)
	data.Header([]string{"bound", "commands"})
	data.Row([]string{result.Bound.String(), strconv.Itoa(result.CommandsApplied)})
	data.Render()

	fmt.Fprintf(w, "bound %s (%s)\n", result.Bound, result.ExecutionTime())
}

// ProgramTable returns a table listing one command per row.
func ProgramTable(w io.Writer, program core.Program) *Table {
	data := NewTable(w)
	data.Header([]string{"#", "command", "argument"})
	rows := make([][]string, program.Len())
	for i := range rows {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, commandCells(program.At(i))...)
	}
	data.Bulk(rows)
	return data
}

func commandCells(command core.Command) []string {
	switch c := command.(type) {
	case core.TakeCommand:
		return []string{c.Type().String(), strconv.FormatUint(c.N, 10)}
	default:
		return []string{command.Type().String(), ""}
	}
}

func (result ParseResult) Display(w io.Writer) {
	if result.Program.Len() > 0 {
		ProgramTable(w, result.Program).Render()
	}
	fmt.Fprintf(w, "%d command(s) parsed\n", result.Program.Len())
}

type commandJSON struct {
	Command  string `json:"command"`
	Argument uint64 `json:"argument"`
}

func (result ParseResult) MarshalJSON() ([]byte, error) {
	commands := make([]commandJSON, 0, result.Program.Len())
	for i := 0; i < result.Program.Len(); i++ {
		switch c := result.Program.At(i).(type) {
		case core.TakeCommand:
			commands = append(commands, commandJSON{Command: c.Type().String(), Argument: c.N})
		default:
			return nil, fmt.Errorf("cannot encode command %T", c)
		}
	}
	return json.Marshal(struct {
		Commands []commandJSON `json:"commands"`
		Text     string        `json:"text"`
	}{commands, ql.Format(result.Program)})
}
