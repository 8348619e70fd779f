// Package parser implements an outline parser for the SysML v2 and KerML
// textual notations. It records named declarations with their qualified
// names and the import targets of each file; bodies are not interpreted.
package parser

import (
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

// kindKeywords start a declaration. Consecutive keywords are joined, so
// "use case def" is a single kind.
var kindKeywords = map[string]bool{
	// SysML
	"package": true, "part": true, "attribute": true, "port": true, "item": true,
	"action": true, "state": true, "requirement": true, "constraint": true,
	"calc": true, "connection": true, "interface": true, "allocation": true,
	"enum": true, "occurrence": true, "view": true, "viewpoint": true,
	"rendering": true, "metadata": true, "analysis": true, "verification": true,
	"concern": true, "case": true, "use": true, "flow": true, "alias": true,
	// KerML
	"namespace": true, "type": true, "classifier": true, "class": true,
	"struct": true, "datatype": true, "assoc": true, "feature": true,
	"function": true, "predicate": true, "behavior": true, "step": true,
	"expr": true, "interaction": true, "metaclass": true,
}

// modifierKeywords may precede or sit inside a declaration without naming it.
var modifierKeywords = map[string]bool{
	"abstract": true, "library": true, "standard": true, "private": true,
	"public": true, "protected": true, "ref": true, "readonly": true,
	"derived": true, "end": true, "in": true, "out": true, "inout": true,
	"variation": true, "variant": true, "individual": true, "all": true,
	"doc": true, "comment": true, "about": true, "locale": true,
}

// Parser implements ports.Parser.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// LoadAndParse reads and parses the file at path.
func (p *Parser) LoadAndParse(path string) (*domain.SyntaxFile, error) {
	lang, ok := domain.LanguageForPath(path)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedExtension, "cannot parse file"), "path", path)
	}

	src, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	file, err := p.Parse(path, lang, src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse file"), "path", path)
	}
	return file, nil
}

// Parse builds the outline of src.
func (p *Parser) Parse(path string, lang domain.Language, src []byte) (*domain.SyntaxFile, error) {
	tokens, err := newLexer(src).tokens()
	if err != nil {
		return nil, err
	}

	b := &outlineBuilder{}
	if err := b.build(tokens); err != nil {
		return nil, err
	}

	return &domain.SyntaxFile{
		Path:        path,
		Language:    lang,
		Elements:    b.elements,
		Imports:     b.imports,
		ContentHash: xxhash.Sum64(src),
	}, nil
}

// declaration is a declaration whose terminator has not been seen yet.
type declaration struct {
	kind   []string
	name   string
	line   int
	closed bool // no further tokens may supply the name
}

type outlineBuilder struct {
	scopes   []string
	pending  *declaration
	elements []domain.Element
	imports  []string

	importing bool
	group     bool
	prefix    string
	target    strings.Builder
}

//nolint:cyclop,gocognit // token dispatch
func (b *outlineBuilder) build(tokens []token) error {
	skipShortName := false

	for _, tok := range tokens {
		if b.importing {
			b.consumeImport(tok)
			continue
		}

		if skipShortName {
			if tok.kind == tokenSymbol && tok.text == ">" {
				skipShortName = false
			}
			continue
		}

		switch tok.kind {
		case tokenIdent:
			switch {
			case tok.text == "import":
				b.pending = nil
				b.importing = true
			case kindKeywords[tok.text] || tok.text == "def":
				b.addKind(tok)
			case modifierKeywords[tok.text]:
			default:
				b.nameWith(tok.text)
			}
		case tokenName:
			b.nameWith(tok.text)
		case tokenSymbol:
			if b.pending == nil {
				continue
			}
			if tok.text == "<" && b.pending.name == "" && !b.pending.closed {
				skipShortName = true
				continue
			}
			b.pending.closed = true
		case tokenString, tokenNumber:
			if b.pending != nil {
				b.pending.closed = true
			}
		case tokenSemicolon:
			b.flush()
		case tokenLBrace:
			name := ""
			if b.pending != nil {
				name = b.pending.name
			}
			b.flush()
			b.scopes = append(b.scopes, name)
		case tokenRBrace:
			b.flush()
			if len(b.scopes) == 0 {
				return syntaxError(domain.ErrUnbalancedBraces, tok.line)
			}
			b.scopes = b.scopes[:len(b.scopes)-1]
		}
	}

	b.flush()
	if b.importing {
		b.finishImport()
	}
	if len(b.scopes) > 0 {
		last := 0
		if len(tokens) > 0 {
			last = tokens[len(tokens)-1].line
		}
		return syntaxError(domain.ErrUnbalancedBraces, last)
	}
	return nil
}

func (b *outlineBuilder) addKind(tok token) {
	if b.pending == nil || b.pending.name != "" || b.pending.closed {
		b.flush()
		b.pending = &declaration{line: tok.line}
	}
	b.pending.kind = append(b.pending.kind, tok.text)
}

func (b *outlineBuilder) nameWith(name string) {
	if b.pending == nil || b.pending.closed || b.pending.name != "" {
		if b.pending != nil {
			b.pending.closed = true
		}
		return
	}
	b.pending.name = name
}

// flush records the pending declaration if it was named.
func (b *outlineBuilder) flush() {
	d := b.pending
	b.pending = nil
	if d == nil || d.name == "" {
		return
	}

	qualified := make([]string, 0, len(b.scopes)+1)
	for _, s := range b.scopes {
		if s != "" {
			qualified = append(qualified, s)
		}
	}
	qualified = append(qualified, d.name)

	b.elements = append(b.elements, domain.Element{
		Kind:          domain.NewElementKind(strings.Join(d.kind, " ")),
		Name:          d.name,
		QualifiedName: strings.Join(qualified, "::"),
		Line:          d.line,
	})
}

// consumeImport accumulates an import target. Group imports such as
// "import ISQ::{mass, length};" produce one target per member.
func (b *outlineBuilder) consumeImport(tok token) {
	switch {
	case tok.kind == tokenSemicolon:
		b.finishImport()
	case tok.kind == tokenLBrace && !b.group:
		b.group = true
		b.prefix = b.target.String()
		b.target.Reset()
	case b.group && tok.kind == tokenRBrace:
		b.emitImport()
		b.group = false
	case b.group && tok.kind == tokenSymbol && tok.text == ",":
		b.emitImport()
	case tok.kind == tokenIdent && modifierKeywords[tok.text]:
	default:
		b.target.WriteString(tok.text)
	}
}

func (b *outlineBuilder) emitImport() {
	if b.target.Len() > 0 {
		b.imports = append(b.imports, b.prefix+b.target.String())
	}
	b.target.Reset()
}

func (b *outlineBuilder) finishImport() {
	b.emitImport()
	b.importing = false
	b.group = false
	b.prefix = ""
}
