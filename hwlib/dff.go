// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/s224268/hwsim"

// DFF returns a data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(in, out string) hwsim.Latch {
	return hwsim.Latch{In: in, Out: out}
}

// Bit returns a 1 bit register. The register keeps its value unless load is
// set, in which case it stores in. The internal wire feeding the latch is
// named out_d.
//
//	Inputs: in, load
//	Outputs: out
//	Function: if load(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
func Bit(in, load, out string) (hwsim.Update, hwsim.Latch) {
	d := out + "_d"
	return hwsim.Update{Name: d, Expr: Mux(hwsim.Signal(load), hwsim.Signal(out), hwsim.Signal(in))},
		DFF(d, out)
}
