package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/zerr"
)

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenName            // 'unrestricted name'
	tokenString
	tokenNumber
	tokenSymbol
	tokenLBrace
	tokenRBrace
	tokenSemicolon
)

type token struct {
	kind tokenKind
	text string
	line int
}

const symbolChars = "!#$%&()*+,-./:<=>?@[\\]^|~"

// lexer splits SysML and KerML source into tokens. Comments are dropped.
type lexer struct {
	src  []byte
	pos  int
	line int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

// tokens lexes the whole input.
func (l *lexer) tokens() ([]token, error) {
	var out []token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}

//nolint:cyclop // single dispatch over the first byte
func (l *lexer) next() (token, bool, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, false, err
	}
	if l.pos >= len(l.src) {
		return token{}, false, nil
	}

	line := l.line
	c := l.src[l.pos]

	switch {
	case c == '{':
		l.pos++
		return token{kind: tokenLBrace, text: "{", line: line}, true, nil
	case c == '}':
		l.pos++
		return token{kind: tokenRBrace, text: "}", line: line}, true, nil
	case c == ';':
		l.pos++
		return token{kind: tokenSemicolon, text: ";", line: line}, true, nil
	case c == '\'':
		text, err := l.quoted('\'')
		return token{kind: tokenName, text: text, line: line}, err == nil, err
	case c == '"':
		text, err := l.quoted('"')
		return token{kind: tokenString, text: text, line: line}, err == nil, err
	case c == ':' && l.peekByte(1) == ':':
		l.pos += 2
		return token{kind: tokenSymbol, text: "::", line: line}, true, nil
	case c >= '0' && c <= '9':
		return token{kind: tokenNumber, text: l.word(), line: line}, true, nil
	case isSymbol(c):
		l.pos++
		return token{kind: tokenSymbol, text: string(c), line: line}, true, nil
	}

	r, _ := utf8.DecodeRune(l.src[l.pos:])
	if r == '_' || unicode.IsLetter(r) {
		return token{kind: tokenIdent, text: l.word(), line: line}, true, nil
	}

	return token{}, false, zerr.With(syntaxError(domain.ErrUnexpectedCharacter, line), "char", string(r))
}

func isSymbol(c byte) bool {
	for i := 0; i < len(symbolChars); i++ {
		if symbolChars[i] == c {
			return true
		}
	}
	return false
}

// word consumes an identifier or number.
func (l *lexer) word() string {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRune(l.src[l.pos:])
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		// A dot only continues numbers such as 1.5.
		if r == '.' && !unicode.IsDigit(rune(l.src[start])) {
			break
		}
		l.pos += size
	}
	return string(l.src[start:l.pos])
}

// quoted consumes a quoted run and returns its content without quotes.
func (l *lexer) quoted(quote byte) (string, error) {
	line := l.line
	l.pos++ // opening quote
	var buf []byte
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '\\':
			if l.pos+1 < len(l.src) {
				buf = append(buf, l.src[l.pos+1])
				l.pos += 2
				continue
			}
		case quote:
			l.pos++
			return string(buf), nil
		case '\n':
			l.line++
		}
		buf = append(buf, c)
		l.pos++
	}
	return "", syntaxError(domain.ErrUnterminatedString, line)
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f':
			l.pos++
		case c == '/' && l.peekByte(1) == '/' && l.peekByte(2) == '*':
			// //* note */
			if err := l.blockComment(3); err != nil {
				return err
			}
		case c == '/' && l.peekByte(1) == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case c == '/' && l.peekByte(1) == '*':
			if err := l.blockComment(2); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) blockComment(openLen int) error {
	line := l.line
	l.pos += openLen
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peekByte(1) == '/' {
			l.pos += 2
			return nil
		}
		if l.src[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
	return syntaxError(domain.ErrUnterminatedComment, line)
}

// syntaxError wraps sentinel with the offending line number.
func syntaxError(sentinel error, line int) error {
	return zerr.With(zerr.Wrap(sentinel, fmt.Sprintf("line %d", line)), "line", line)
}
