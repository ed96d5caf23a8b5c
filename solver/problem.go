package solver

import (
	"fmt"
	"strconv"
	"strings"
)

// A Wish is a single (color, finish) pair a customer would accept.
// Colors are 0-indexed; the input file format is 1-indexed.
type Wish struct {
	Color  int
	Finish Finish
}

// A Customer is the list of wishes of one customer.
// It is satisfied by an assignment as soon as one of its wishes holds, so a
// customer with no wish at all can never be satisfied.
type Customer []Wish

// satisfiedBy is true iff at least one wish of c holds in a.
// A wish pointing outside a never matches.
func (c Customer) satisfiedBy(a Assignment) bool {
	for _, w := range c {
		if w.Color >= 0 && w.Color < len(a) && Finish(a[w.Color]) == w.Finish {
			return true
		}
	}
	return false
}

// A Problem is a full paint shop instance: a number of colors and the wishes
// of every customer. It is immutable input to a search.
type Problem struct {
	NbColors  int        // Total nb of colors
	Customers []Customer // One entry per customer, in input order
}

// satisfiedBy is true iff every customer of pb is satisfied by a.
func (pb *Problem) satisfiedBy(a Assignment) bool {
	for _, c := range pb.Customers {
		if !c.satisfiedBy(a) {
			return false
		}
	}
	return true
}

// PSString returns a representation of the problem in the input file format.
func (pb *Problem) PSString() string {
	res := fmt.Sprintf("%d\n", pb.NbColors)
	for _, c := range pb.Customers {
		fields := make([]string, 0, 2*len(c))
		for _, w := range c {
			fields = append(fields, strconv.Itoa(w.Color+1), w.Finish.String())
		}
		res += strings.Join(fields, " ") + "\n"
	}
	return res
}
