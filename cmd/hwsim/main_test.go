package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s224268/hwsim"
)

func testCircuit(t *testing.T, name string) *hwsim.Circuit {
	t.Helper()
	c, err := load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return c
}

func Test_simulate(t *testing.T) {
	var b bytes.Buffer
	c := testCircuit(t, "toggle.hw")
	require.NoError(t, simulate(&b, c, false))
	assert.Equal(t, "11011 en\n01001 q\n", b.String())
}

func Test_simulate_error(t *testing.T) {
	var b bytes.Buffer
	c := testCircuit(t, "bad.hw")
	err := simulate(&b, c, false)
	require.Error(t, err)
	assert.True(t, hwsim.IsKind(err, hwsim.TraceLengthMismatch))
	assert.Equal(t, `bad: traces not the same length "b"`, err.Error())
	assert.Empty(t, b.String())
}

func Test_check(t *testing.T) {
	var b bytes.Buffer
	n, err := check(&b, testCircuit(t, "lint.hw"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "lint: update z is equivalent to update y\n", b.String())

	b.Reset()
	n, err = check(&b, testCircuit(t, "toggle.hw"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, b.String())
}

func Test_load_missing(t *testing.T) {
	_, err := load(filepath.Join("testdata", "nope.hw"))
	assert.Error(t, err)
}

func Test_stepper(t *testing.T) {
	var b bytes.Buffer
	s := &stepper{c: testCircuit(t, "toggle.hw"), w: &b}
	require.NoError(t, s.reset())

	for _, cmd := range []string{"", "step", "o"} {
		assert.False(t, s.exec(cmd))
	}
	assert.Equal(t, strings.Join([]string{
		"cycle 0: q=0; next d=1 en=1 q=1",
		"cycle 1: q=1; next d=0 en=1 q=0",
		"01xxx q",
		"",
	}, "\n"), b.String())

	b.Reset()
	for i := 2; i < 5; i++ {
		s.exec("s")
	}
	b.Reset()
	s.exec("s")
	assert.Equal(t, "simulation complete after 5 cycles\n", b.String())

	b.Reset()
	s.exec("r")
	s.exec("p")
	assert.Equal(t, "d=0 en=0 q=0\n", b.String())

	// a failed step aborts the run until it is restarted
	s.c.SimInputs[0].Values[0] = hwsim.Unset
	b.Reset()
	s.exec("s")
	assert.Equal(t, "undefined trace value \"en\" at cycle 0 (r to restart)\n", b.String())
	s.c.SimInputs[0].Values[0] = hwsim.High
	b.Reset()
	s.exec("s")
	assert.Equal(t, "run aborted by a previous error at cycle 0 (r to restart)\n", b.String())
	b.Reset()
	s.exec("r")
	s.exec("s")
	assert.Equal(t, "cycle 0: q=0; next d=1 en=1 q=1\n", b.String())

	b.Reset()
	s.exec("what")
	assert.Equal(t, stepHelp, b.String())
	assert.True(t, s.exec("quit"))
}
