// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Circuit is a runnable circuit simulation.
//
// A Circuit is built fully formed, usually by a parser, then simulated by
// calling Run, or Initialize followed by Step for every cycle in increasing
// order.
//
type Circuit struct {
	Name      string
	Inputs    []string
	Outputs   []string
	Latches   []Latch
	Updates   []Update
	SimInputs []Trace

	// SimOutputs holds one trace per output signal. It is allocated by
	// Initialize and filled one slot per call to Step. After a failed run it
	// only holds partial results; use Outputs to get the results of a
	// successful run.
	SimOutputs []Trace

	// OnCycle, if not nil, is called after every successful step with the
	// cycle index and the environment as left by that step.
	OnCycle func(cycle int, env Environment)

	env    Environment
	length int // simulation length
	ready  bool
	failed bool
}

// Initialize validates the simulation inputs and sets up the initial state of
// the circuit: all inputs and latch outputs are false and every update has
// been applied once, in order.
//
// Calling Initialize again discards the state of any previous run.
//
func (c *Circuit) Initialize() error {
	c.ready, c.failed = false, true
	c.env, c.length, c.SimOutputs = nil, 0, nil
	if err := c.checkInputs(0); err != nil {
		return err
	}
	n := c.SimInputs[0].Len()
	for _, t := range c.SimInputs[1:] {
		if t.Len() != n {
			return newError(TraceLengthMismatch, t.Signal, -1)
		}
	}

	env := NewEnv()
	for _, in := range c.Inputs {
		env.Set(in, false)
	}
	for _, l := range c.Latches {
		l.Init(env)
	}
	for _, u := range c.Updates {
		if err := u.Apply(env); err != nil {
			return errors.Wrap(err, "initialize")
		}
	}

	c.env = env
	c.length = n
	c.SimOutputs = make([]Trace, len(c.Outputs))
	for i, o := range c.Outputs {
		c.SimOutputs[i] = NewTrace(o, n)
	}
	c.ready = true
	c.failed = false
	return nil
}

// checkInputs checks the shape of the simulation inputs and that slot i of
// every input trace is set.
//
func (c *Circuit) checkInputs(i int) error {
	cycle := i
	if !c.ready {
		cycle = -1
	}
	if len(c.SimInputs) == 0 {
		return newError(NoSimulationInputs, "", cycle)
	}
	if len(c.SimInputs) != len(c.Inputs) {
		return newError(InputCountMismatch, "", cycle)
	}
	for _, t := range c.SimInputs {
		if i >= t.Len() || t.Values[i] == Unset {
			return newError(UndefinedTraceValue, t.Signal, cycle)
		}
	}
	return nil
}

// Step runs cycle i of the simulation:
//
//	1. input signals are set from slot i of their input traces,
//	2. updates are applied in declaration order,
//	3. output signal values are stored in slot i of the output traces,
//	4. latches are advanced.
//
// Output traces hold the values signals had during the cycle: a latch output
// recorded at cycle i is the latch input at the end of cycle i-1.
//
// Errors raised by updates, latches or outputs carry cycle i. Once a step has
// failed, Step fails with RunAborted until Initialize is called again.
//
func (c *Circuit) Step(i int) (err error) {
	if !c.ready {
		return newError(NotInitialized, "", i)
	}
	if c.failed {
		return newError(RunAborted, "", i)
	}
	defer func() {
		if err != nil {
			c.failed = true
		}
	}()
	if i < 0 || i >= c.length {
		return newError(CycleOutOfRange, "", i)
	}
	if err := c.checkInputs(i); err != nil {
		return err
	}

	for _, t := range c.SimInputs {
		v, _ := t.Values[i].Bool()
		c.env.Set(t.Signal, v)
	}
	for _, u := range c.Updates {
		if err := u.Apply(c.env); err != nil {
			return atCycle(err, i)
		}
	}
	for k, o := range c.Outputs {
		v, err := c.env.Get(o)
		if err != nil {
			return errors.Wrap(atCycle(err, i), "output")
		}
		c.SimOutputs[k].Values[i] = BitOf(v)
	}
	for _, l := range c.Latches {
		if err := l.Advance(c.env); err != nil {
			return atCycle(err, i)
		}
	}

	if c.OnCycle != nil {
		c.OnCycle(i, c.env)
	}
	return nil
}

// Run initializes the circuit and runs all simulation cycles. The first error
// aborts the run.
//
func (c *Circuit) Run() error {
	if err := c.Initialize(); err != nil {
		return err
	}
	for i := 0; i < c.length; i++ {
		if err := c.Step(i); err != nil {
			return err
		}
	}
	return nil
}

// Results returns the output traces. It returns nil if the circuit has not
// been initialized or if a step has failed since the last initialization.
//
func (c *Circuit) Results() []Trace {
	if !c.ready || c.failed {
		return nil
	}
	return c.SimOutputs
}

// Len returns the simulation length, i.e. the common length of the input
// traces. It is 0 until Initialize succeeds.
//
func (c *Circuit) Len() int {
	return c.length
}

// Env returns the environment of the current run, or nil before Initialize.
//
func (c *Circuit) Env() Environment {
	return c.env
}

// String returns a short description of the circuit interface, as in
// "dff(in) -> (out), 1 latch(es), 0 update(s)".
//
func (c *Circuit) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString("(" + join(c.Inputs) + ") -> (" + join(c.Outputs) + "), ")
	b.WriteString(strconv.Itoa(len(c.Latches)) + " latch(es), ")
	b.WriteString(strconv.Itoa(len(c.Updates)) + " update(s)")
	return b.String()
}
