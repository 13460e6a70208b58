package parser

// maxNestingDepth is the parser's own context-stack limit; exceeding it
// aborts parsing with MaxNestingLevelExceeded (spec.md §4.4/§6).
const maxNestingDepth = 256

// Parser drives a Tokenizer through a recursive-descent grammar, tagging
// every emitted value token with its structural context (root, array
// member, or object member), rejecting duplicate object names and
// excessive nesting, and producing the validated ParserToken list the
// Node tree is built from.
//
// The parser keeps its own context stack, separate from the Tokenizer's:
// the Tokenizer's stack exists only to let scalar termination distinguish
// root-level garbage from deferred, container-level grammar errors; the
// Parser's stack exists to tag tokens and enforce the 256-deep nesting
// bound.
type Parser struct {
	tz       *Tokenizer
	tokens   []ParserToken
	stack    []rune
	dupStack []map[string]bool
}

// NewParser creates a Parser over the given CharBuffer.
func NewParser(chars []rune) *Parser {
	return &Parser{tz: NewTokenizer(chars)}
}

// ParseBytes decodes raw bytes as strict UTF-8 and parses the result,
// combining Decode and Parse into the single convenience entry point most
// callers want.
func ParseBytes(input []byte) (Node, error) {
	chars, err := Decode(input)
	if err != nil {
		return nil, err
	}
	return NewParser(chars).Parse()
}

// Parse consumes the entire token stream and returns the root Node, or
// the first grammar/lexical error encountered. No partial tree is ever
// returned alongside an error.
func (p *Parser) Parse() (Node, error) {
	tok, ok, err := p.tz.Peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newErrorNoPos(MalformedStructure, "Unexpected end of input. Expected a JSON value.")
	}

	switch tok.Kind {
	case RBRACE, RBRACKET, COLON, COMMA:
		return nil, newError(UnexpectedCharacter, tok.Start, "Unexpected character: '%s'.", p.raw(tok))
	}

	if err := p.parseValue(); err != nil {
		return nil, err
	}

	trailing, ok, err := p.tz.Peek()
	if err != nil {
		return nil, wrapPeekErr(err, MalformedStructure, "Unexpected character.")
	}
	if ok {
		return nil, newError(MalformedStructure, trailing.Start, "Unexpected character. Expected end of input.")
	}

	return RootNode(p.tz.CharBuffer(), p.tokens), nil
}

func (p *Parser) raw(tok Token) string {
	return rawText(p.tz.buf, tok.Start, tok.End)
}

func (p *Parser) topCtx() rune {
	if len(p.stack) == 0 {
		return 0
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) pushCtx(ch rune) error {
	if len(p.stack) >= maxNestingDepth {
		return newErrorNoPos(MaxNestingLevelExceeded, "Maximum nesting depth of %d exceeded.", maxNestingDepth)
	}
	p.stack = append(p.stack, ch)
	return nil
}

func (p *Parser) popCtx() {
	p.stack = p.stack[:len(p.stack)-1]
}

// wrapPeekErr reinterprets a lexical error raised while the parser was
// only looking ahead (peek, not consume) as a structural error reflecting
// what the parser itself expected at that point, per spec.md §7's
// propagation policy, while preserving the lexer's reported position.
func wrapPeekErr(err error, kind ErrorKind, message string) error {
	pe, ok := err.(*ParseError)
	if !ok || !pe.hasPos {
		return err
	}
	return newError(kind, pe.Position, message)
}

// parseValue parses a single value (scalar, object, or array), tagging a
// scalar's ParserToken with the current container context.
func (p *Parser) parseValue() error {
	tok, ok, err := p.tz.Peek()
	if err != nil {
		return err
	}
	if !ok {
		return newErrorNoPos(MalformedStructure, "Unexpected end of input. Expected a valid JSON value.")
	}

	switch tok.Kind {
	case LBRACE:
		return p.parseObject()
	case LBRACKET:
		return p.parseArray()
	case NUMBER, STRING, BOOLEAN, NULL:
		p.tz.Consume()
		kind := scalarKindFor(tok.Kind, p.topCtx())
		p.tokens = append(p.tokens, ParserToken{Start: tok.Start, End: tok.End, Kind: kind})
		return nil
	default:
		return newError(MalformedStructure, tok.Start, "Expected a valid JSON value.")
	}
}

// parseObject parses "{" (name ":" value ("," name ":" value)*)? "}".
func (p *Parser) parseObject() error {
	open, _, _ := p.tz.Consume() // '{'
	if err := p.pushCtx('{'); err != nil {
		return err
	}
	p.dupStack = append(p.dupStack, map[string]bool{})
	p.tokens = append(p.tokens, ParserToken{Start: open.Start, End: open.End, Kind: OBJECT_START})

	sawComma := false

	for {
		next, ok, err := p.tz.Peek()
		if err != nil {
			return wrapPeekErr(err, MalformedStructure, "Expected double-quoted value for object name.")
		}
		if !ok {
			return newError(MalformedStructure, open.Start, "Unterminated value. Expected '}' for Object.")
		}

		if next.Kind == RBRACE {
			if sawComma {
				return newError(MalformedStructure, next.Start, "Expected double-quoted value for object name.")
			}
			p.tz.Consume()
			p.tokens = append(p.tokens, ParserToken{Start: next.Start, End: next.End, Kind: OBJECT_END})
			p.popCtx()
			p.dupStack = p.dupStack[:len(p.dupStack)-1]
			return nil
		}

		if next.Kind != STRING {
			return newError(MalformedStructure, next.Start, "Expected double-quoted value for object name.")
		}

		nameTok, _, _ := p.tz.Consume()
		inner := rawText(p.tz.buf, nameTok.Start+1, nameTok.End-1)
		dup := p.dupStack[len(p.dupStack)-1]
		if dup[inner] {
			return newErrorNoPos(DuplicateObjectNameError, "Duplicate object name: %s", inner)
		}
		dup[inner] = true
		p.tokens = append(p.tokens, ParserToken{Start: nameTok.Start, End: nameTok.End, Kind: OBJECT_PROPERTY_NAME})

		colon, ok, err := p.tz.Peek()
		if err != nil {
			return wrapPeekErr(err, MalformedStructure, "Expected ':' to separate name-value.")
		}
		if !ok {
			return newError(MalformedStructure, nameTok.Start, "Expected ':' to separate name-value.")
		}
		if colon.Kind != COLON {
			return newError(MalformedStructure, colon.Start, "Expected ':' to separate name-value.")
		}
		p.tz.Consume()
		p.tokens = append(p.tokens, ParserToken{Start: colon.Start, End: colon.End, Kind: NAME_SEPARATOR})

		if err := p.parseValue(); err != nil {
			return err
		}

		sep, ok, err := p.tz.Peek()
		if err != nil {
			return wrapPeekErr(err, MalformedStructure, "Expected ',' or '}'.")
		}
		if !ok {
			return newError(MalformedStructure, open.Start, "Unterminated value. Expected '}' for Object.")
		}

		switch sep.Kind {
		case COMMA:
			p.tz.Consume()
			p.tokens = append(p.tokens, ParserToken{Start: sep.Start, End: sep.End, Kind: VALUE_SEPARATOR})
			sawComma = true
		case RBRACE:
			sawComma = false
		default:
			return newError(MalformedStructure, sep.Start, "Expected ',' or '}'.")
		}
	}
}

// parseArray parses "[" (value ("," value)*)? "]".
func (p *Parser) parseArray() error {
	open, _, _ := p.tz.Consume() // '['
	if err := p.pushCtx('['); err != nil {
		return err
	}
	p.tokens = append(p.tokens, ParserToken{Start: open.Start, End: open.End, Kind: ARRAY_START})

	next, ok, err := p.tz.Peek()
	if err != nil {
		return wrapPeekErr(err, MalformedStructure, "Expected a valid JSON value.")
	}
	if !ok {
		return newError(MalformedStructure, open.Start, "Unterminated value. Expected: ']' for Array.")
	}
	if next.Kind == RBRACKET {
		p.tz.Consume()
		p.tokens = append(p.tokens, ParserToken{Start: next.Start, End: next.End, Kind: ARRAY_END})
		p.popCtx()
		return nil
	}

	for {
		if err := p.parseValue(); err != nil {
			return err
		}

		sep, ok, err := p.tz.Peek()
		if err != nil {
			return wrapPeekErr(err, MalformedStructure, "Expected comma to separate Array values.")
		}
		if !ok {
			return newError(MalformedStructure, open.Start, "Unterminated value. Expected: ']' for Array.")
		}

		switch sep.Kind {
		case COMMA:
			p.tz.Consume()
			p.tokens = append(p.tokens, ParserToken{Start: sep.Start, End: sep.End, Kind: VALUE_SEPARATOR})

			nxt, ok, err := p.tz.Peek()
			if err != nil {
				return wrapPeekErr(err, MalformedStructure, "Expected a valid JSON value after comma.")
			}
			if !ok {
				return newError(MalformedStructure, sep.Start, "Unexpected end of array. Expected a valid JSON value after comma.")
			}
			if nxt.Kind == RBRACKET {
				return newError(MalformedStructure, nxt.Start, "Unexpected character: ']'. Expected a valid JSON value.")
			}
		case RBRACKET:
			p.tz.Consume()
			p.tokens = append(p.tokens, ParserToken{Start: sep.Start, End: sep.End, Kind: ARRAY_END})
			p.popCtx()
			return nil
		default:
			return newError(MalformedStructure, sep.Start, "Unexpected character: '%s'. Expected: comma to separate Array values.", p.raw(sep))
		}
	}
}
