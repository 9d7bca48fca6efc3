package core

import "strconv"

type CommandType int

const (
	TakeCommandType CommandType = iota
)

func (t CommandType) String() string {
	switch t {
	case TakeCommandType:
		return "take"
	default:
		return "unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// Command is one line of a program. Only this package declares variants.
type Command interface {
	Type() CommandType
	command()
}

// TakeCommand limits the working result to at most N units.
type TakeCommand struct {
	N uint64
}

func (c TakeCommand) Type() CommandType {
	return TakeCommandType
}

func (TakeCommand) command() {}

func (c TakeCommand) String() string {
	return "Take(" + strconv.FormatUint(c.N, 10) + ")"
}
