// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/pkg/errors"

// A Latch is a one cycle delay register: its output during cycle t is the
// value of its input at the end of cycle t-1.
//
//	Inputs: In
//	Outputs: Out
//	Function: out(t) = in(t-1), out(0) = false
//
type Latch struct {
	In  string
	Out string
}

// Init sets the latch output to false. It does not read the input signal.
//
func (l Latch) Init(env Environment) {
	env.Set(l.Out, false)
}

// Advance copies the current value of the input signal to the output signal.
// It must be called once all updates of the current cycle have been applied.
//
func (l Latch) Advance(env Environment) error {
	v, err := env.Get(l.In)
	if err != nil {
		return errors.Wrap(err, "latch "+l.In+" -> "+l.Out)
	}
	env.Set(l.Out, v)
	return nil
}

func (l Latch) String() string { return l.In + " -> " + l.Out }

// An Update assigns the value of an expression to a signal.
//
type Update struct {
	Name string
	Expr Expr
}

// Apply evaluates the update expression and stores the result in env.
//
func (u Update) Apply(env Environment) error {
	v, err := Eval(u.Expr, env)
	if err != nil {
		return errors.Wrap(err, "update "+u.Name)
	}
	env.Set(u.Name, v)
	return nil
}

func (u Update) String() string { return u.Name + " = " + u.Expr.String() }
