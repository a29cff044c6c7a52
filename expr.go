// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strings"

	"github.com/pkg/errors"
)

// Expr is a boolean expression over named signals.
//
// The set of expression types is closed: Signal, Not, And and Or are the only
// implementations.
//
type Expr interface {
	String() string
	expr()
}

// Signal is a reference to the current value of a named signal.
//
type Signal string

// Not is the negation of X.
//
type Not struct {
	X Expr
}

// And is the conjunction of X and Y.
//
type And struct {
	X, Y Expr
}

// Or is the disjunction of X and Y.
//
type Or struct {
	X, Y Expr
}

func (Signal) expr() {}
func (*Not) expr()   {}
func (*And) expr()   {}
func (*Or) expr()    {}

func (s Signal) String() string { return string(s) }
func (n *Not) String() string   { return "!" + operand(n.X) }
func (a *And) String() string   { return operand(a.X) + " && " + operand(a.Y) }
func (o *Or) String() string    { return operand(o.X) + " || " + operand(o.Y) }

func operand(e Expr) string {
	switch e.(type) {
	case *And, *Or:
		return "(" + e.String() + ")"
	}
	return e.String()
}

// Eval evaluates e against the signal values in env.
//
// Both operands of And and Or are always evaluated, left first, so that an
// undefined signal is reported regardless of the value of the other operand.
//
func Eval(e Expr, env Environment) (bool, error) {
	switch e := e.(type) {
	case Signal:
		return env.Get(string(e))
	case *Not:
		v, err := Eval(e.X, env)
		return !v, err
	case *And:
		x, y, err := eval2(e.X, e.Y, env)
		return x && y, err
	case *Or:
		x, y, err := eval2(e.X, e.Y, env)
		return x || y, err
	}
	return false, errors.Errorf("unsupported expression %T", e)
}

func eval2(x, y Expr, env Environment) (bool, bool, error) {
	a, err := Eval(x, env)
	if err != nil {
		return false, false, err
	}
	b, err := Eval(y, env)
	if err != nil {
		return false, false, err
	}
	return a, b, nil
}

// Signals returns the names of the signals referenced by e, in order of first
// appearance.
//
func Signals(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case Signal:
			if !seen[string(e)] {
				seen[string(e)] = true
				names = append(names, string(e))
			}
		case *Not:
			walk(e.X)
		case *And:
			walk(e.X)
			walk(e.Y)
		case *Or:
			walk(e.X)
			walk(e.Y)
		}
	}
	walk(e)
	return names
}

// join renders a list of names separated by a single space.
func join(names []string) string {
	return strings.Join(names, " ")
}
