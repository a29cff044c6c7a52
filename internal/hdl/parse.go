// Package hdl implements a parser for textual circuit descriptions.
//
// A description is line oriented:
//
//	.hardware toggle
//	.inputs en
//	.outputs q
//	.latch d -> q
//	.update
//	d = en && !q || /en && q
//	.simulate
//	en = 11011
//
// Comments start with '#' or "//" and extend to the end of the line.
//
package hdl

import (
	"io"

	"github.com/pkg/errors"
	"github.com/s224268/hwsim"
	"github.com/s224268/hwsim/internal/lex"
)

type section int

const (
	secNone section = iota
	secInputs
	secOutputs
	secLatches
	secUpdates
	secSimulate
)

type simLine struct {
	name string
	pos  lex.Pos
}

type parser struct {
	name string
	l    lex.Interface
	i    lex.Item
	sec  section
	c    *hwsim.Circuit
	sims []simLine
}

// Parse parses a circuit description read from r. The name is only used in
// error messages.
//
func Parse(name string, r io.Reader) (*hwsim.Circuit, error) {
	p := &parser{name: name, l: Lexer(r)}
	p.next()
	if err, ok := p.i.Value.(error); ok {
		return nil, errors.Wrap(err, name)
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.c, nil
}

func (p *parser) next() {
	p.i = p.l.Lex()
}

func (p *parser) errorf(pos lex.Pos, format string, args ...interface{}) error {
	line, col := p.l.Position(pos)
	return errors.Errorf("%s:%d:%d: "+format, append([]interface{}{p.name, line, col}, args...)...)
}

func (p *parser) unexpected() error {
	return p.errorf(p.i.Pos, "unexpected %s", p.i.String())
}

func (p *parser) atEOL() bool {
	return p.i.Type == Newline || p.i.Type == EOF
}

func (p *parser) parse() error {
	for p.i.Type != EOF {
		var err error
		switch p.i.Type {
		case Newline:
			p.next()
			continue
		case Directive:
			err = p.directive()
		default:
			if p.c == nil {
				return p.errorf(p.i.Pos, "missing .hardware declaration")
			}
			err = p.line()
		}
		if err != nil {
			return err
		}
		if !p.atEOL() {
			return p.unexpected()
		}
	}
	if p.c == nil {
		return p.errorf(p.i.Pos, "missing .hardware declaration")
	}
	return p.checkSimulate()
}

func (p *parser) directive() error {
	d, pos := p.i.Value.(string), p.i.Pos
	if p.c == nil && d != "hardware" {
		return p.errorf(pos, "missing .hardware declaration")
	}
	p.next()
	switch d {
	case "hardware":
		if p.c != nil {
			return p.errorf(pos, "duplicate .hardware declaration")
		}
		if p.i.Type != Ident {
			return p.errorf(p.i.Pos, "expected circuit name")
		}
		p.c = &hwsim.Circuit{Name: p.i.Value.(string)}
		p.next()
		p.sec = secNone
		return nil
	case "inputs":
		p.sec = secInputs
	case "outputs":
		p.sec = secOutputs
	case "latch", "latches":
		p.sec = secLatches
	case "update", "updates":
		p.sec = secUpdates
	case "simulate":
		p.sec = secSimulate
	default:
		return p.errorf(pos, "unknown directive .%s", d)
	}
	if p.atEOL() {
		return nil
	}
	return p.line()
}

// line parses the content of a line in the current section.
//
func (p *parser) line() error {
	switch p.sec {
	case secInputs:
		return p.names(&p.c.Inputs)
	case secOutputs:
		return p.names(&p.c.Outputs)
	case secLatches:
		return p.latches()
	case secUpdates:
		return p.update()
	case secSimulate:
		return p.simulate()
	}
	return p.unexpected()
}

func (p *parser) names(l *[]string) error {
	for !p.atEOL() {
		if p.i.Type != Ident {
			return p.errorf(p.i.Pos, "expected signal name")
		}
		*l = append(*l, p.i.Value.(string))
		p.next()
	}
	return nil
}

func (p *parser) ident(what string) (string, error) {
	if p.i.Type != Ident {
		return "", p.errorf(p.i.Pos, "expected %s", what)
	}
	s := p.i.Value.(string)
	p.next()
	return s, nil
}

func (p *parser) latches() error {
	for !p.atEOL() {
		in, err := p.ident("latch input")
		if err != nil {
			return err
		}
		if p.i.Type != Arrow {
			return p.errorf(p.i.Pos, "expected '->' after latch input")
		}
		p.next()
		out, err := p.ident("latch output")
		if err != nil {
			return err
		}
		p.c.Latches = append(p.c.Latches, hwsim.Latch{In: in, Out: out})
	}
	return nil
}

func (p *parser) update() error {
	name, err := p.ident("signal name")
	if err != nil {
		return err
	}
	if p.i.Type != Equal {
		return p.errorf(p.i.Pos, "expected '=' after %s", name)
	}
	p.next()
	e, err := p.or()
	if err != nil {
		return err
	}
	p.c.Updates = append(p.c.Updates, hwsim.Update{Name: name, Expr: e})
	return nil
}

func (p *parser) simulate() error {
	pos := p.i.Pos
	name, err := p.ident("signal name")
	if err != nil {
		return err
	}
	if p.i.Type != Equal {
		return p.errorf(p.i.Pos, "expected '=' after %s", name)
	}
	p.next()
	if p.i.Type != Bits && p.i.Type != Ident {
		return p.errorf(p.i.Pos, "expected trace values")
	}
	vs, err := hwsim.ParseBits(p.i.Value.(string))
	if err != nil {
		return p.errorf(p.i.Pos, "%v", err)
	}
	p.next()
	for _, s := range p.sims {
		if s.name == name {
			return p.errorf(pos, "duplicate simulation input %s", name)
		}
	}
	p.sims = append(p.sims, simLine{name, pos})
	p.c.SimInputs = append(p.c.SimInputs, hwsim.Trace{Signal: name, Values: vs})
	return nil
}

// checkSimulate checks that simulation inputs only drive declared inputs.
//
func (p *parser) checkSimulate() error {
	ins := make(map[string]bool, len(p.c.Inputs))
	for _, n := range p.c.Inputs {
		ins[n] = true
	}
	for _, s := range p.sims {
		if !ins[s.name] {
			return p.errorf(s.pos, "simulation input %s is not a declared input", s.name)
		}
	}
	return nil
}

// or parses a || b || ...
//
func (p *parser) or() (hwsim.Expr, error) {
	x, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.i.Type == OrOp {
		p.next()
		y, err := p.and()
		if err != nil {
			return nil, err
		}
		x = &hwsim.Or{X: x, Y: y}
	}
	return x, nil
}

// and parses a && b && ...
//
func (p *parser) and() (hwsim.Expr, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.i.Type == AndOp {
		p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = &hwsim.And{X: x, Y: y}
	}
	return x, nil
}

func (p *parser) unary() (hwsim.Expr, error) {
	switch p.i.Type {
	case NotOp:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &hwsim.Not{X: x}, nil
	case ParenOpen:
		pos := p.i.Pos
		p.next()
		x, err := p.or()
		if err != nil {
			return nil, err
		}
		if p.i.Type != ParenClose {
			return nil, p.errorf(pos, "unbalanced '('")
		}
		p.next()
		return x, nil
	case Ident:
		s := hwsim.Signal(p.i.Value.(string))
		p.next()
		return s, nil
	}
	return nil, p.errorf(p.i.Pos, "expected expression, got %s", p.i.String())
}
