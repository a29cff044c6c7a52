// Package lex provides a small state function based lexer.
//
// A lexer is driven by state functions: each state function reads runes with
// Next, emits zero or more items with Emit and returns the next state. A nil
// state restarts the lexer at the initial state for the next item.
//
package lex

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
)

// EOF is both the rune returned by Next at the end of input and the Type of
// the item emitted at the end of input.
//
const EOF = -1

// Type is the type of a lexed item.
//
type Type int

// Pos is the offset in runes of an item in the input.
//
type Pos int

// Item is a lexed item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	if i.Type == EOF {
		return "end of input"
	}
	switch v := i.Value.(type) {
	case string:
		return strconv.Quote(v)
	case rune:
		return strconv.QuoteRune(v)
	}
	return fmt.Sprint(i.Value)
}

// StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

// Interface is implemented by lexers.
//
type Interface interface {
	// Lex returns the next item. Once the input is exhausted, Lex keeps
	// returning EOF items.
	Lex() Item
	// Position converts a Pos to 1-based line and column numbers.
	Position(p Pos) (line, col int)
}

// Lexer is the state of a lexer, passed to state functions.
//
type Lexer struct {
	in    []rune
	pos   Pos // position of the current rune
	start Pos // start of the item being lexed
	init  StateFn
	state StateFn
	items []Item
	err   error
}

// New returns a new lexer reading from r, starting in the init state.
//
// A read error is reported as a single item of type EOF whose value is the
// error.
//
func New(r io.Reader, init StateFn) Interface {
	b, err := ioutil.ReadAll(r)
	return &Lexer{in: []rune(string(b)), pos: -1, init: init, err: err}
}

// Lex implements Interface.
//
func (l *Lexer) Lex() Item {
	if l.err != nil {
		err := l.err
		l.err = nil
		l.in = nil
		return Item{Type: EOF, Pos: 0, Value: err}
	}
	for len(l.items) == 0 {
		if l.state == nil {
			l.state = l.init
			l.start = l.pos + 1
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Position implements Interface.
//
func (l *Lexer) Position(p Pos) (line, col int) {
	line, col = 1, 1
	for i := 0; i < int(p) && i < len(l.in); i++ {
		if l.in[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Next returns the next rune in the input, or EOF.
//
func (l *Lexer) Next() rune {
	if int(l.pos) < len(l.in) {
		l.pos++
	}
	return l.Current()
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	if l.pos < 0 || int(l.pos) >= len(l.in) {
		return EOF
	}
	return l.in[l.pos]
}

// Peek returns the next rune without consuming it.
//
func (l *Lexer) Peek() rune {
	r := l.Next()
	l.Backup()
	return r
}

// Backup un-reads the last rune returned by Next. It can be called only once
// per call to Next.
//
func (l *Lexer) Backup() {
	if l.pos >= 0 {
		l.pos--
	}
}

// AcceptWhile consumes runes for as long as f returns true.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for f(l.Next()) {
	}
	l.Backup()
}

// Emit emits an item of type t and value v, positioned at the start of the
// current item. The next item starts after the current rune.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: v})
	l.start = l.pos + 1
}
