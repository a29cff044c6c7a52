package hwtest_test

import (
	"math/rand"
	"testing"

	hw "github.com/s224268/hwsim"
	hl "github.com/s224268/hwsim/hwlib"
	"github.com/s224268/hwsim/hwtest"
)

func TestCompare(t *testing.T) {
	a, b := hw.Signal("a"), hw.Signal("b")
	or := &hw.Circuit{
		Name:    "or",
		Inputs:  []string{"a", "b"},
		Outputs: []string{"out"},
		Updates: []hw.Update{{Name: "out", Expr: hl.Or(a, b)}},
	}
	custom := &hw.Circuit{
		Name:    "custom_or",
		Inputs:  []string{"a", "b"},
		Outputs: []string{"out"},
		Updates: []hw.Update{
			{Name: "notA", Expr: hl.Nand(a, a)},
			{Name: "notB", Expr: hl.Nand(b, b)},
			{Name: "out", Expr: hl.Nand(hw.Signal("notA"), hw.Signal("notB"))},
		},
	}
	hwtest.Compare(t, or, custom, 64)
}

func TestRandomTraces(t *testing.T) {
	ts := hwtest.RandomTraces(rand.New(rand.NewSource(1)), 16, "a", "b", "c")
	if len(ts) != 3 {
		t.Fatalf("got %d traces, expected 3", len(ts))
	}
	for i, n := range []string{"a", "b", "c"} {
		if ts[i].Signal != n {
			t.Errorf("trace %d: got signal %q, expected %q", i, ts[i].Signal, n)
		}
		if _, err := ts[i].Bools(); err != nil || ts[i].Len() != 16 {
			t.Errorf("trace %d: length %d, err %v", i, ts[i].Len(), err)
		}
	}
}
