package symbolic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hw "github.com/s224268/hwsim"
	hl "github.com/s224268/hwsim/hwlib"
	"github.com/s224268/hwsim/internal/hdl"
	"github.com/s224268/hwsim/symbolic"
)

func TestConstant(t *testing.T) {
	a, b := hw.Signal("a"), hw.Signal("b")
	data := []struct {
		name  string
		e     hw.Expr
		ok    bool
		value bool
	}{
		{"signal", a, false, false},
		{"excluded_middle", hl.Or(a, hl.Not(a)), true, true},
		{"contradiction", hl.And(a, hl.Not(a)), true, false},
		{"xor_self", hl.Xor(a, a), true, false},
		{"xnor_self", hl.Xnor(b, b), true, true},
		{"and", hl.And(a, b), false, false},
		{"de_morgan", hl.Xnor(hl.Nand(a, b), hl.Or(hl.Not(a), hl.Not(b))), true, true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			v, ok, err := symbolic.Constant(d.e)
			require.NoError(t, err)
			assert.Equal(t, d.ok, ok)
			assert.Equal(t, d.value, v)
		})
	}
}

func TestEquivalent(t *testing.T) {
	a, b, c := hw.Signal("a"), hw.Signal("b"), hw.Signal("c")

	eq, err := symbolic.Equivalent(hl.Mux(c, a, b), hl.Or(hl.And(hl.Not(c), a), hl.And(c, b)))
	require.NoError(t, err)
	assert.True(t, eq)

	s1, c1 := hl.FullAdder(a, b, c)
	s2, c2 := hl.FullAdder(b, c, a)
	eq, err = symbolic.Equivalent(s1, s2)
	require.NoError(t, err)
	assert.True(t, eq)
	eq, err = symbolic.Equivalent(c1, c2)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = symbolic.Equivalent(hl.And(a, b), hl.Or(a, b))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestSpace_unknown_signal(t *testing.T) {
	s, err := symbolic.NewSpace("a")
	require.NoError(t, err)
	_, _, err = s.Constant(hw.Signal("b"))
	assert.Error(t, err)

	_, err = symbolic.NewSpace()
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	src := `.hardware lint
.inputs a b
.outputs x y z w
.update
x = a && !a
y = a || b
z = !(!a && !b)
w = y || !y
.simulate
a = 01
b = 10
`
	c, err := hdl.Parse("lint.hw", strings.NewReader(src))
	require.NoError(t, err)
	fs, err := symbolic.Check(c)
	require.NoError(t, err)

	var got []string
	for _, f := range fs {
		got = append(got, f.String())
	}
	assert.Equal(t, []string{
		"update x is always false",
		"update z is equivalent to update y",
		"update w is always true",
	}, got)

	fs, err = symbolic.Check(&hw.Circuit{Name: "empty"})
	require.NoError(t, err)
	assert.Empty(t, fs)
}
