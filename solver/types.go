package solver

import "strings"

// Describes basic types and constants that are used in the solver

// A Finish is the way a single color is produced.
// Its underlying value is the digit used in assignment encodings.
type Finish byte

const (
	// Glossy is the cheap finish, encoded as digit '0'.
	Glossy = Finish('0')
	// Matte is the expensive finish, encoded as digit '1'.
	Matte = Finish('1')
)

func (f Finish) String() string {
	switch f {
	case Glossy:
		return "G"
	case Matte:
		return "M"
	default:
		panic("invalid finish")
	}
}

// Status is the status of a problem after a search.
type Status byte

const (
	// Indet means the problem was not searched yet.
	Indet = Status(iota)
	// Sat means an assignment satisfying every customer was found.
	Sat
	// Unsat means no assignment satisfies every customer.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// An Assignment is a fixed-width sequence of finish digits, one per color,
// indexed from 0, left to right.
type Assignment string

// Cost returns the number of matte colors in a.
func (a Assignment) Cost() int {
	cost := 0
	for i := 0; i < len(a); i++ {
		if Finish(a[i]) == Matte {
			cost++
		}
	}
	return cost
}

// String renders a with one letter per color and a trailing space after
// each, e.g. "G G G G M " for the assignment "00001".
func (a Assignment) String() string {
	var sb strings.Builder
	for i := 0; i < len(a); i++ {
		sb.WriteString(Finish(a[i]).String())
		sb.WriteByte(' ')
	}
	return sb.String()
}
