/*
Package hwsim provides a cycle based simulator for synchronous boolean
circuits.

A circuit is made of input and output signals, latches (one cycle delay
registers) and updates (combinational assignments of a boolean expression to a
signal). It is driven by one input trace per input signal and produces one
output trace per output signal.

Every simulation cycle loads the input values for that cycle, applies all
updates in declaration order, records the value of every output signal, then
advances all latches:

	c := &hwsim.Circuit{
		Name:      "dff",
		Inputs:    []string{"in"},
		Outputs:   []string{"out"},
		Latches:   []hwsim.Latch{{In: "in", Out: "out"}},
		SimInputs: []hwsim.Trace{hwsim.BoolTrace("in", true, false, true)},
	}
	if err := c.Run(); err != nil {
		// ...
	}
	fmt.Println(c.Results()[0]) // 010 out

Updates are not reordered: an update reading a signal assigned by a later
update sees the value from the previous cycle.

*/
package hwsim
