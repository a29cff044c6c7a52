package hwlib_test

import (
	"math/rand"
	"strconv"
	"testing"

	hw "github.com/s224268/hwsim"
	hl "github.com/s224268/hwsim/hwlib"
	"github.com/s224268/hwsim/hwtest"
)

func bus(name string, bits int) []string {
	r := make([]string, bits)
	for i := range r {
		r[i] = name + strconv.Itoa(i)
	}
	return r
}

func TestAdder(t *testing.T) {
	a, b, out := bus("a", 4), bus("b", 4), bus("out", 4)
	ins := append(append([]string(nil), a...), b...)
	outs := append(append([]string(nil), out...), "c")

	add4 := &hw.Circuit{Name: "Adder4", Inputs: ins, Outputs: outs, Updates: hl.Adder(a, b, out, "c")}

	// hand wired version
	sig := hl.S(ins...)
	s0, c0 := hl.HalfAdder(sig[0], sig[4])
	ups := []hw.Update{{Name: "out0", Expr: s0}, {Name: "c0", Expr: c0}}
	for i := 1; i < 4; i++ {
		s, c := hl.FullAdder(sig[i], sig[4+i], hw.Signal("c"+strconv.Itoa(i-1)))
		ups = append(ups, hw.Update{Name: out[i], Expr: s}, hw.Update{Name: "c" + strconv.Itoa(i), Expr: c})
	}
	ups = append(ups, hw.Update{Name: "c", Expr: hw.Signal("c3")})
	wired := &hw.Circuit{Name: "wired", Inputs: ins, Outputs: outs, Updates: ups}

	hwtest.Compare(t, add4, wired, 256)
}

func TestAdder_sum(t *testing.T) {
	const bits = 8
	a, b, out := bus("a", bits), bus("b", bits), bus("out", bits)
	c := &hw.Circuit{
		Name:    "Adder8",
		Inputs:  append(append([]string(nil), a...), b...),
		Outputs: append(append([]string(nil), out...), "c"),
		Updates: hl.Adder(a, b, out, "c"),
	}
	const cycles = 100
	c.SimInputs = hwtest.RandomTraces(rand.New(rand.NewSource(42)), cycles, c.Inputs...)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	word := func(ts []hw.Trace, cycle int) int {
		n := 0
		for i, tr := range ts {
			if tr.Values[cycle] == hw.High {
				n |= 1 << uint(i)
			}
		}
		return n
	}
	for i := 0; i < cycles; i++ {
		x, y := word(c.SimInputs[:bits], i), word(c.SimInputs[bits:], i)
		if got := word(c.Results(), i); got != x+y {
			t.Fatalf("cycle %d: %d + %d = %d, got %d", i, x, y, x+y, got)
		}
	}
}

func TestAdder_mismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Adder did not panic")
		}
	}()
	hl.Adder(bus("a", 2), bus("b", 3), bus("s", 2), "c")
}
