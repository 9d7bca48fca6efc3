package core

import (
	"reflect"
	"strings"
)

// Program is an ordered list of commands. The zero value is an empty program.
type Program struct {
	commands []Command
}

// NewProgram copies cmds into a new Program.
func NewProgram(cmds ...Command) Program {
	if len(cmds) == 0 {
		return Program{}
	}
	commands := make([]Command, len(cmds))
	copy(commands, cmds)
	return Program{commands: commands}
}

func (p Program) Len() int {
	return len(p.commands)
}

func (p Program) At(i int) Command {
	return p.commands[i]
}

// Commands returns a copy of the program's commands in textual order.
func (p Program) Commands() []Command {
	commands := make([]Command, len(p.commands))
	copy(commands, p.commands)
	return commands
}

func (p Program) Equal(other Program) bool {
	if len(p.commands) != len(other.commands) {
		return false
	}
	for i := range p.commands {
		if !commandEqual(p.commands[i], other.commands[i]) {
			return false
		}
	}
	return true
}

// commandEqual compares by variant, so payloads need not be comparable.
func commandEqual(a, b Command) bool {
	switch x := a.(type) {
	case TakeCommand:
		y, ok := b.(TakeCommand)
		return ok && x.N == y.N
	case nil:
		return b == nil
	default:
		return reflect.DeepEqual(a, b)
	}
}

func (p Program) String() string {
	parts := make([]string, len(p.commands))
	for i, cmd := range p.commands {
		if s, ok := cmd.(interface{ String() string }); ok {
			parts[i] = s.String()
		} else {
			parts[i] = cmd.Type().String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
