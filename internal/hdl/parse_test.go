package hdl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s224268/hwsim"
	"github.com/s224268/hwsim/internal/hdl"
)

const toggleSrc = `# a toggle flip-flop
.hardware toggle
.inputs en
.outputs q
.latch d -> q
.update
d = en && !q || /en && q   // same as xor
.simulate
en = 11011
`

func TestParse_toggle(t *testing.T) {
	c, err := hdl.Parse("toggle.hw", strings.NewReader(toggleSrc))
	require.NoError(t, err)

	assert.Equal(t, "toggle", c.Name)
	assert.Equal(t, []string{"en"}, c.Inputs)
	assert.Equal(t, []string{"q"}, c.Outputs)
	assert.Equal(t, []hwsim.Latch{{In: "d", Out: "q"}}, c.Latches)
	require.Len(t, c.Updates, 1)
	assert.Equal(t, "d = (en && !q) || (!en && q)", c.Updates[0].String())
	require.Len(t, c.SimInputs, 1)
	assert.Equal(t, "11011 en", c.SimInputs[0].String())

	require.NoError(t, c.Run())
	assert.Equal(t, "01001 q", c.Results()[0].String())
}

func TestParse_precedence(t *testing.T) {
	src := `.hardware p
.inputs a b c
.outputs x y z
.update
x = a || b && c
y = !(a || b) && c
z = a && b && c || !!a
.simulate
a=0011
b=0101
c=1x11
`
	c, err := hdl.Parse("p.hw", strings.NewReader(src))
	require.NoError(t, err)
	want := []string{
		"x = a || (b && c)",
		"y = !(a || b) && c",
		"z = ((a && b) && c) || !!a",
	}
	require.Len(t, c.Updates, len(want))
	for i, u := range c.Updates {
		assert.Equal(t, want[i], u.String())
	}
	assert.Equal(t, []hwsim.Bit{hwsim.High, hwsim.Unset, hwsim.High, hwsim.High}, c.SimInputs[2].Values)
}

func TestParse_multiline_sections(t *testing.T) {
	src := `.hardware m
.inputs a
.inputs b
.outputs
  y
.latches a -> p b -> q
  p -> r
.update y = p && r
.simulate a = 10
b = 01
`
	c, err := hdl.Parse("m.hw", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Inputs)
	assert.Equal(t, []string{"y"}, c.Outputs)
	assert.Equal(t, []hwsim.Latch{{In: "a", Out: "p"}, {In: "b", Out: "q"}, {In: "p", Out: "r"}}, c.Latches)
	require.Len(t, c.Updates, 1)
	require.Len(t, c.SimInputs, 2)
}

func TestParse_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
		err  string
	}{
		{"no_hardware", ".inputs a\n", "t.hw:1:1: missing .hardware declaration"},
		{"empty", "", "t.hw:1:1: missing .hardware declaration"},
		{"dup_hardware", ".hardware a\n.hardware b\n", "t.hw:2:1: duplicate .hardware declaration"},
		{"no_name", ".hardware\n", "t.hw:1:10: expected circuit name"},
		{"unknown", ".hardware a\n.foo\n", "t.hw:2:1: unknown directive .foo"},
		{"no_section", ".hardware a\nb\n", "t.hw:2:1: unexpected \"b\""},
		{"latch_arrow", ".hardware a\n.latch a b\n", "t.hw:2:10: expected '->' after latch input"},
		{"update_eq", ".hardware a\n.update y a\n", "t.hw:2:11: expected '=' after y"},
		{"update_expr", ".hardware a\n.update y = a &&\n", "t.hw:2:17: expected expression, got \"\\n\""},
		{"paren", ".hardware a\n.update y = (a || b\n", "t.hw:2:13: unbalanced '('"},
		{"trailing", ".hardware a\n.update y = a b\n", "t.hw:2:15: unexpected \"b\""},
		{"raw", ".hardware a\n.update y = a & b\n", "t.hw:2:15: unexpected '&'"},
		{"bits", ".hardware a\n.inputs a\n.simulate\na = 0120\n", "t.hw:4:5: invalid trace value '2' at position 3"},
		{"dup_sim", ".hardware a\n.inputs a\n.simulate\na = 0\na = 1\n", "t.hw:5:1: duplicate simulation input a"},
		{"undeclared", ".hardware a\n.inputs a\n.simulate\nb = 0\n", "t.hw:4:1: simulation input b is not a declared input"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := hdl.Parse("t.hw", strings.NewReader(d.src))
			require.Error(t, err)
			assert.Equal(t, d.err, err.Error())
		})
	}
}

// Parsed circuits still go through the simulator's own validation.
//
func TestParse_simulation_errors(t *testing.T) {
	src := ".hardware a\n.inputs a b\n.outputs a\n.simulate\na = 01\nb = 1\n"
	c, err := hdl.Parse("t.hw", strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, hwsim.IsKind(c.Run(), hwsim.TraceLengthMismatch))
}
