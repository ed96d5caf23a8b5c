package solver

import (
	"sort"
	"strings"
)

// costSorter is a structure to facilitate the sorting of encoded candidates
// according to their count of a target digit.
type costSorter struct {
	encs   []string
	target string
}

func (cs *costSorter) Len() int { return len(cs.encs) }
func (cs *costSorter) Less(i, j int) bool {
	return strings.Count(cs.encs[i], cs.target) < strings.Count(cs.encs[j], cs.target)
}
func (cs *costSorter) Swap(i, j int) { cs.encs[i], cs.encs[j] = cs.encs[j], cs.encs[i] }

// sortByCost sorts encs in place by ascending number of target digits.
// The sort is stable: candidates of equal cost keep their enumeration order,
// so the search always returns the same assignment among equally cheap ones.
func sortByCost(encs []string, target byte) {
	sort.Stable(&costSorter{encs: encs, target: string(target)})
}
