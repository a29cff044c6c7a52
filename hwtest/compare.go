// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/s224268/hwsim"
)

// RandomTraces returns one trace of the given length per signal name, with
// every slot set to a random value.
//
func RandomTraces(r *rand.Rand, cycles int, names ...string) []hwsim.Trace {
	ts := make([]hwsim.Trace, len(names))
	for i, n := range names {
		ts[i] = hwsim.NewTrace(n, cycles)
		for j := range ts[i].Values {
			ts[i].Values[j] = hwsim.BitOf(r.Int63()&(1<<62) != 0)
		}
	}
	return ts
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare runs c1 and c2 with the same input traces and compares their
// outputs. Both circuits must have the same inputs and outputs.
//
// Input traces are all false at cycle 0, all true at cycle 1 and random
// afterwards. Any existing SimInputs of c1 and c2 are replaced.
//
func Compare(t *testing.T, c1, c2 *hwsim.Circuit, cycles int) {
	t.Helper()

	if !sameNames(c1.Inputs, c2.Inputs) {
		t.Fatalf("inputs differ: %v != %v", c1.Inputs, c2.Inputs)
	}
	if !sameNames(c1.Outputs, c2.Outputs) {
		t.Fatalf("outputs differ: %v != %v", c1.Outputs, c2.Outputs)
	}
	if cycles < 2 {
		cycles = 2
	}

	seed := time.Now().UnixNano()
	ins := RandomTraces(rand.New(rand.NewSource(seed)), cycles, c1.Inputs...)
	for _, tr := range ins {
		tr.Values[0], tr.Values[1] = hwsim.Low, hwsim.High
	}
	c1.SimInputs, c2.SimInputs = ins, ins

	start := time.Now()
	if err := c1.Run(); err != nil {
		t.Fatalf("%s: %v", c1.Name, err)
	}
	if err := c2.Run(); err != nil {
		t.Fatalf("%s: %v", c2.Name, err)
	}
	elapsed := time.Since(start)

	errString := func(cycle int, oname string, ex, got hwsim.Bit) string {
		var b strings.Builder
		for i, tr := range ins {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(tr.Signal)
			b.WriteByte('=')
			b.WriteByte(tr.Values[cycle].Char())
		}
		return fmt.Sprintf("\nseed %d, cycle %d: expected %s => %s=%c\nGot %c", seed, cycle, b.String(), oname, ex.Char(), got.Char())
	}

	o1, o2 := c1.Results(), c2.Results()
	for i := 0; i < cycles; i++ {
		for o := range o1 {
			if ex, got := o1[o].Values[i], o2[o].Values[i]; ex != got {
				t.Fatal(errString(i, o1[o].Signal, ex, got))
			}
		}
	}

	t.Logf("%d + %d updates. %d cycles in %v", len(c1.Updates), len(c2.Updates), 2*cycles, elapsed)
}
