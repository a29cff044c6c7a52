// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/s224268/hwsim"

// Mux returns a multiplexer.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(sel, a, b hwsim.Expr) hwsim.Expr {
	return Or(And(a, Not(sel)), And(b, sel))
}

// DMux returns a demultiplexer.
//
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel hwsim.Expr) (a, b hwsim.Expr) {
	return And(in, Not(sel)), And(in, sel)
}

// Mux4Way returns a 4-way multiplexer. sel1 is the most significant selector
// bit.
//
//	Function: out = [a, b, c, d][sel1*2 + sel0]
//
func Mux4Way(sel1, sel0, a, b, c, d hwsim.Expr) hwsim.Expr {
	return Mux(sel1, Mux(sel0, a, b), Mux(sel0, c, d))
}

// MuxN returns the updates of an N-bit multiplexer selecting between buses a
// and b into out. It panics if the bus widths differ.
//
func MuxN(sel string, a, b, out []string) []hwsim.Update {
	if len(a) != len(out) || len(b) != len(out) {
		panic("MuxN: bus width mismatch")
	}
	s := hwsim.Signal(sel)
	ups := make([]hwsim.Update, len(out))
	for i := range out {
		ups[i] = hwsim.Update{Name: out[i], Expr: Mux(s, hwsim.Signal(a[i]), hwsim.Signal(b[i]))}
	}
	return ups
}

// DMuxN returns the updates of an N-bit demultiplexer routing bus in to
// either a or b. It panics if the bus widths differ.
//
func DMuxN(in []string, sel string, a, b []string) []hwsim.Update {
	if len(a) != len(in) || len(b) != len(in) {
		panic("DMuxN: bus width mismatch")
	}
	s := hwsim.Signal(sel)
	ups := make([]hwsim.Update, 0, 2*len(in))
	for i := range in {
		x, y := DMux(hwsim.Signal(in[i]), s)
		ups = append(ups, hwsim.Update{Name: a[i], Expr: x}, hwsim.Update{Name: b[i], Expr: y})
	}
	return ups
}
