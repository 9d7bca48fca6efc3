package core

import (
	"encoding/json"
	"strconv"
)

// Bound is the current maximum result size. The zero value is unbounded.
type Bound struct {
	N       uint64
	Limited bool
}

// Unbounded is the size of the implicit default source before any take.
func Unbounded() Bound {
	return Bound{}
}

func Limit(n uint64) Bound {
	return Bound{N: n, Limited: true}
}

// Min narrows the bound to n. An unbounded bound always becomes Limit(n).
func (b Bound) Min(n uint64) Bound {
	if !b.Limited || n < b.N {
		return Limit(n)
	}
	return b
}

func (b Bound) String() string {
	if !b.Limited {
		return "unbounded"
	}
	return strconv.FormatUint(b.N, 10)
}

// MarshalJSON encodes a limited bound as its number and an unbounded one as null.
func (b Bound) MarshalJSON() ([]byte, error) {
	if !b.Limited {
		return []byte("null"), nil
	}
	return strconv.AppendUint(nil, b.N, 10), nil
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	var n *uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n == nil {
		*b = Unbounded()
		return nil
	}
	*b = Limit(*n)
	return nil
}
