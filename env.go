package hwsim

import (
	"sort"
	"strings"
)

// Environment holds the current value of every signal in a circuit.
//
type Environment interface {
	// Get returns the value of the named signal. It fails with an
	// UndefinedSignal error if the signal has never been set.
	Get(name string) (bool, error)
	// Set sets the value of the named signal, defining it if needed.
	Set(name string, v bool)
}

// Env is the default Environment implementation.
//
type Env map[string]bool

// NewEnv returns a new empty environment.
//
func NewEnv() Env {
	return make(Env)
}

// Get implements Environment.
//
func (e Env) Get(name string) (bool, error) {
	v, ok := e[name]
	if !ok {
		return false, newError(UndefinedSignal, name, -1)
	}
	return v, nil
}

// Set implements Environment.
//
func (e Env) Set(name string, v bool) {
	e[name] = v
}

// String returns the signal values sorted by name, as in "a=1 b=0".
//
func (e Env) String() string {
	names := make([]string, 0, len(e))
	for n := range e {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		b.WriteByte('=')
		if e[n] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
