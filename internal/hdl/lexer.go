package hdl

import (
	"io"
	"strings"
	"unicode"

	"github.com/s224268/hwsim/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Bits
	Directive
	Newline
	Equal
	Arrow
	AndOp
	OrOp
	NotOp
	ParenOpen
	ParenClose
)

// Lexer returns a new lexer for circuit descriptions.
//
func Lexer(r io.Reader) lex.Interface {
	return lex.New(r, lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case r == '\n':
		l.Emit(Newline, "\n")
	case unicode.IsSpace(r):
		l.AcceptWhile(isBlank)
	case r == '#':
		return lexComment
	case r == '/':
		if l.Peek() == '/' {
			return lexComment
		}
		l.Emit(NotOp, "/")
	case r == '!':
		l.Emit(NotOp, "!")
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case '0' <= r && r <= '9':
		return lexBits
	case r == '.':
		return lexDirective
	case r == '=':
		l.Emit(Equal, "=")
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == '-':
		if l.Next() == '>' {
			l.Emit(Arrow, "->")
			break
		}
		l.Backup()
		l.Emit(Raw, r)
	case r == '&':
		if l.Next() == '&' {
			l.Emit(AndOp, "&&")
			break
		}
		l.Backup()
		l.Emit(Raw, r)
	case r == '|':
		if l.Next() == '|' {
			l.Emit(OrOp, "||")
			break
		}
		l.Backup()
		l.Emit(Raw, r)
	default:
		l.Emit(Raw, r)
	}
	return nil
}

func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// lexComment skips everything up to, but not including, the end of line.
//
func lexComment(l *lex.Lexer) lex.StateFn {
	l.AcceptWhile(func(r rune) bool { return r != '\n' && r != lex.EOF })
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for isIdentRune(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

// lexBits lexes a word starting with a digit, like a trace value "0110x".
// Its content is validated by the parser.
//
func lexBits(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	r := l.Next()
	for isIdentRune(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Bits, buf.String())
	return nil
}

func lexDirective(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	r := l.Next()
	for unicode.IsLetter(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	if buf.Len() == 0 {
		l.Emit(Raw, '.')
		return nil
	}
	l.Emit(Directive, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
