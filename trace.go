package hwsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Bit is the value of a trace slot.
//
type Bit uint8

// Bit values. Unset is the zero value: slots of a new trace are all Unset.
//
const (
	Unset Bit = iota
	Low
	High
)

// BitOf converts a boolean to a Bit.
//
func BitOf(v bool) Bit {
	if v {
		return High
	}
	return Low
}

// Bool returns the boolean value of b and whether b is set.
//
func (b Bit) Bool() (v bool, ok bool) {
	return b == High, b != Unset
}

// Char returns the character representation of b: '0', '1' or 'x'.
//
func (b Bit) Char() byte {
	switch b {
	case Low:
		return '0'
	case High:
		return '1'
	}
	return 'x'
}

// A Trace is the sequence of values taken by a signal, one per cycle.
//
type Trace struct {
	Signal string
	Values []Bit
}

// NewTrace returns a trace of the given length with all slots unset.
//
func NewTrace(signal string, length int) Trace {
	return Trace{Signal: signal, Values: make([]Bit, length)}
}

// BoolTrace returns a trace with all slots set from vs.
//
func BoolTrace(signal string, vs ...bool) Trace {
	t := NewTrace(signal, len(vs))
	for i, v := range vs {
		t.Values[i] = BitOf(v)
	}
	return t
}

// Len returns the trace length.
//
func (t Trace) Len() int { return len(t.Values) }

// Bools returns the trace values as booleans. It fails with an
// UndefinedTraceValue error if any slot is unset.
//
func (t Trace) Bools() ([]bool, error) {
	r := make([]bool, len(t.Values))
	for i, b := range t.Values {
		v, ok := b.Bool()
		if !ok {
			return nil, newError(UndefinedTraceValue, t.Signal, i)
		}
		r[i] = v
	}
	return r, nil
}

// String returns the trace values followed by a space and the signal name,
// as in "0110 out".
//
func (t Trace) String() string {
	b := make([]byte, 0, len(t.Values)+1+len(t.Signal))
	for _, v := range t.Values {
		b = append(b, v.Char())
	}
	b = append(b, ' ')
	b = append(b, t.Signal...)
	return string(b)
}

// ParseBits parses a string of '0', '1' and 'x' (unset) characters.
//
func ParseBits(s string) ([]Bit, error) {
	bs := make([]Bit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bs[i] = Low
		case '1':
			bs[i] = High
		case 'x', 'X':
			bs[i] = Unset
		default:
			return nil, errors.Errorf("invalid trace value %s at position %d", strconv.QuoteRune(rune(s[i])), i+1)
		}
	}
	return bs, nil
}
