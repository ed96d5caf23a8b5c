package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortByCost(t *testing.T) {
	encs := []string{"0", "1", "10", "11", "100", "101", "110", "111", "1000"}
	want := []string{"0", "1", "10", "100", "1000", "11", "101", "110", "111"}
	sortByCost(encs, '1')
	if diff := cmp.Diff(want, encs); diff != "" {
		t.Errorf("sortByCost returned with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestSortByCostStable(t *testing.T) {
	// All candidates have the same cost: the input order must be kept.
	encs := []string{"10", "01", "100", "010", "001"}
	want := []string{"10", "01", "100", "010", "001"}
	sortByCost(encs, '1')
	if diff := cmp.Diff(want, encs); diff != "" {
		t.Errorf("sortByCost broke equal-cost ordering (-want+got):\n%s", diff)
	}
}
