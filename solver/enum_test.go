package solver

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnumerate(t *testing.T) {
	for n := 0; n <= 10; n++ {
		cands := enumerate(n)
		if len(cands) != 1<<uint(n) {
			t.Errorf("enumerate(%d) returned %d candidates, expected %d", n, len(cands), 1<<uint(n))
			continue
		}
		for i, cand := range cands {
			if cand != uint64(i) {
				t.Errorf("enumerate(%d)[%d] = %d, expected %d", n, i, cand, i)
				break
			}
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		val  uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "10"},
		{5, "101"},
		{8, "1000"},
	}
	for _, test := range tests {
		if got := encode(test.val); got != test.want {
			t.Errorf("encode(%d) = %q, expected %q", test.val, got, test.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for k := uint64(0); k < 1024; k++ {
		back, err := strconv.ParseUint(encode(k), 2, 64)
		if err != nil {
			t.Fatalf("encode(%d) is not a base-2 int: %v", k, err)
		}
		if back != k {
			t.Errorf("parsing encode(%d) back as base 2 gave %d", k, back)
		}
	}
}

func TestPadLeft(t *testing.T) {
	encs := []string{"0", "1", "10", "100", "1000", "11", "101", "110", "111"}
	want := []string{"000", "001", "010", "100", "1000", "011", "101", "110", "111"}
	got := make([]string, len(encs))
	for i, enc := range encs {
		got[i] = padLeft(enc, 3, '0')
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("padding to width 3 returned with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestPadLeftZeroWidth(t *testing.T) {
	if got := padLeft("0", 0, '0'); got != "0" {
		t.Errorf("padLeft(\"0\", 0, '0') = %q, expected \"0\"", got)
	}
}
