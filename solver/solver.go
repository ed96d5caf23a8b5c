package solver

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Stats are statistics about the last search performed by a Solver.
type Stats struct {
	NbCandidates int // Size of the full search space, i.e 2^NbColors.
	NbTested     int // Nb of candidates checked before the search stopped.
}

// A Solver searches the cheapest assignment satisfying every customer of a
// problem. It enumerates the whole search space in ascending cost order and
// stops at the first satisfying assignment, so the result is guaranteed
// optimal when it exists.
type Solver struct {
	Verbose bool // Indicates whether the solver should log search info
	Stats   Stats
	pb      *Problem
	status  Status
	model   Assignment
}

// New returns a solver for the given problem.
func New(pb *Problem) *Solver {
	return &Solver{pb: pb}
}

// candidates materializes the full search space of the problem as
// fixed-width encodings sorted by ascending cost.
func (s *Solver) candidates() []string {
	cands := enumerate(s.pb.NbColors)
	encs := make([]string, len(cands))
	for i, cand := range cands {
		encs[i] = encode(cand)
	}
	sortByCost(encs, byte(Matte))
	for i, enc := range encs {
		encs[i] = padLeft(enc, s.pb.NbColors, byte(Glossy))
	}
	return encs
}

// Solve looks for the cheapest assignment satisfying every customer of the
// problem. It returns Sat and remembers the assignment if one exists, Unsat
// otherwise.
func (s *Solver) Solve() Status {
	encs := s.candidates()
	s.Stats = Stats{NbCandidates: len(encs)}
	s.status = Unsat
	s.model = ""
	for _, enc := range encs {
		s.Stats.NbTested++
		if a := Assignment(enc); s.pb.satisfiedBy(a) {
			s.status = Sat
			s.model = a
			break
		}
	}
	if s.Verbose {
		fields := log.Fields{
			"colors":     s.pb.NbColors,
			"customers":  len(s.pb.Customers),
			"candidates": s.Stats.NbCandidates,
			"tested":     s.Stats.NbTested,
		}
		if s.status == Sat {
			fields["cost"] = s.model.Cost()
		}
		log.WithFields(fields).Infof("search finished: %v", s.status)
	}
	return s.status
}

// Status returns the status of the problem, i.e Indet before Solve was
// called, Sat or Unsat after.
func (s *Solver) Status() Status {
	return s.status
}

// Model returns the assignment found by the last call to Solve, or the empty
// assignment if the problem was not solved yet or is unsatisfiable.
func (s *Solver) Model() Assignment {
	return s.model
}

// Enumerate returns the number of assignments satisfying every customer.
// If models is non nil, every satisfying assignment is written to it in
// ascending cost order. In any case, models is closed before the function
// returns.
func (s *Solver) Enumerate(models chan Assignment) int {
	if models != nil {
		defer close(models)
	}
	encs := s.candidates()
	s.Stats = Stats{NbCandidates: len(encs)}
	nb := 0
	for _, enc := range encs {
		s.Stats.NbTested++
		if a := Assignment(enc); s.pb.satisfiedBy(a) {
			nb++
			if models != nil {
				models <- a
			}
		}
	}
	if s.Verbose {
		log.WithFields(log.Fields{
			"candidates": s.Stats.NbCandidates,
			"models":     nb,
		}).Info("enumeration finished")
	}
	return nb
}

// result is the user-facing rendition of the search outcome.
func (s *Solver) result() string {
	if s.status == Sat {
		return s.model.String()
	}
	return "No solution exists"
}

// OutputModel prints the result of the search on stdout: either the
// letter-rendered cheapest assignment, or a message stating no assignment
// can satisfy every customer.
func (s *Solver) OutputModel() {
	fmt.Println(s.result())
}
