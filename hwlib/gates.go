// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable logic built from the hwsim
// expression primitives (Signal, Not, And, Or).
//
package hwlib

import "github.com/s224268/hwsim"

// S returns signal references for the given names.
//
func S(names ...string) []hwsim.Expr {
	r := make([]hwsim.Expr, len(names))
	for i, n := range names {
		r[i] = hwsim.Signal(n)
	}
	return r
}

// Not returns a NOT gate.
//
//	Function: out = !in
//
func Not(in hwsim.Expr) hwsim.Expr { return &hwsim.Not{X: in} }

// And returns a AND gate.
//
//	Function: out = a && b
//
func And(a, b hwsim.Expr) hwsim.Expr { return &hwsim.And{X: a, Y: b} }

// Or returns a OR gate.
//
//	Function: out = a || b
//
func Or(a, b hwsim.Expr) hwsim.Expr { return &hwsim.Or{X: a, Y: b} }

// Nand returns a NAND gate.
//
//	Function: out = !(a && b)
//
func Nand(a, b hwsim.Expr) hwsim.Expr { return Not(And(a, b)) }

// Nor returns a NOR gate.
//
//	Function: out = !(a || b)
//
func Nor(a, b hwsim.Expr) hwsim.Expr { return Not(Or(a, b)) }

// Xor returns a XOR gate.
//
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b hwsim.Expr) hwsim.Expr { return Or(And(a, Not(b)), And(Not(a), b)) }

// Xnor returns a XNOR gate.
//
//	Function: out = a && b || !a && !b
//
func Xnor(a, b hwsim.Expr) hwsim.Expr { return Or(And(a, b), And(Not(a), Not(b))) }

// AndN returns a N-Way AND gate. It panics if no operand is given.
//
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func AndN(in ...hwsim.Expr) hwsim.Expr {
	return fold(in, And)
}

// OrN returns a N-Way OR gate. It panics if no operand is given.
//
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func OrN(in ...hwsim.Expr) hwsim.Expr {
	return fold(in, Or)
}

func fold(in []hwsim.Expr, f func(a, b hwsim.Expr) hwsim.Expr) hwsim.Expr {
	if len(in) == 0 {
		panic("empty operand list")
	}
	x := in[0]
	for _, y := range in[1:] {
		x = f(x, y)
	}
	return x
}
