package ql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nickyhof/takeql/core"
)

// Format renders a program as text, one command per line. Parsing the output
// yields an equal program.
func Format(program core.Program) string {
	var b strings.Builder
	for i := 0; i < program.Len(); i++ {
		b.WriteString(FormatCommand(program.At(i)))
		b.WriteByte('\n')
	}
	return b.String()
}

func FormatCommand(command core.Command) string {
	switch c := command.(type) {
	case core.TakeCommand:
		return "take " + strconv.FormatUint(c.N, 10)
	default:
		panic(fmt.Sprintf("ql: cannot format command %T", command))
	}
}
