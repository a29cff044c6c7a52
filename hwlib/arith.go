// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/s224268/hwsim"
)

// HalfAdder returns a half adder.
//
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b hwsim.Expr) (s, c hwsim.Expr) {
	return Xor(a, b), And(a, b)
}

// FullAdder returns a 3 bit adder.
//
//	Function: s = lsb(a + b + cin)
//	          c = msb(a + b + cin)
//
func FullAdder(a, b, cin hwsim.Expr) (s, c hwsim.Expr) {
	return Xor(Xor(a, b), cin), Or(And(a, b), And(cin, Xor(a, b)))
}

// Adder returns the updates of a ripple carry adder over the bit signals a
// and b, least significant bit first. Sum bits are assigned to the signals
// named in sum, the carry out to carry. Intermediate carries are named
// carry_0, carry_1, etc.
//
// It panics if a, b and sum do not have the same length.
//
func Adder(a, b, sum []string, carry string) []hwsim.Update {
	if len(a) != len(b) || len(a) != len(sum) || len(a) == 0 {
		panic("adder bit count mismatch")
	}
	ups := make([]hwsim.Update, 0, 2*len(a))
	var c hwsim.Expr
	for i := range a {
		var s, co hwsim.Expr
		if c == nil {
			s, co = HalfAdder(hwsim.Signal(a[i]), hwsim.Signal(b[i]))
		} else {
			s, co = FullAdder(hwsim.Signal(a[i]), hwsim.Signal(b[i]), c)
		}
		cn := carry + "_" + strconv.Itoa(i)
		if i == len(a)-1 {
			cn = carry
		}
		ups = append(ups,
			hwsim.Update{Name: sum[i], Expr: s},
			hwsim.Update{Name: cn, Expr: co})
		c = hwsim.Signal(cn)
	}
	return ups
}
