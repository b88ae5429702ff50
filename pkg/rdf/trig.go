package rdf

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Parse parses a TriG/Turtle/N-Quads document into quads, preserving
// statement order. Malformed statements are skipped: nanopublication
// servers are not uniform about serialization details, and a partial
// parse is more useful than none. Parse only returns an error when a
// non-blank document yields no quads at all.
func Parse(src string) ([]Quad, error) {
	p := &parser{
		s:        &scanner{src: src},
		prefixes: make(map[string]string),
	}
	p.run()

	if len(p.quads) == 0 && p.sawError {
		return nil, errors.New("no parseable statements found")
	}
	return p.quads, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokIRI
	tokPName
	tokBlank
	tokLiteral
	tokDot
	tokSemicolon
	tokComma
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokDirective // @prefix, @base
	tokKeyword   // a, GRAPH, PREFIX, BASE
)

type token struct {
	kind tokKind
	val  string
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		case '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) peekAt(offset int) byte {
	if s.pos+offset < len(s.src) {
		return s.src[s.pos+offset]
	}
	return 0
}

func (s *scanner) next() (token, error) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return token{kind: tokEOF}, nil
	}

	switch c := s.src[s.pos]; {
	case c == '<':
		return s.scanIRI()
	case c == '"' || c == '\'':
		return s.scanLiteral(c)
	case c == '_' && s.peekAt(1) == ':':
		return s.scanBlank()
	case c == '@':
		return s.scanDirective()
	case c == '.':
		if d := s.peekAt(1); d >= '0' && d <= '9' {
			return s.scanNumber()
		}
		s.pos++
		return token{kind: tokDot}, nil
	case c == ';':
		s.pos++
		return token{kind: tokSemicolon}, nil
	case c == ',':
		s.pos++
		return token{kind: tokComma}, nil
	case c == '{':
		s.pos++
		return token{kind: tokLBrace}, nil
	case c == '}':
		s.pos++
		return token{kind: tokRBrace}, nil
	case c == '[':
		s.pos++
		return token{kind: tokLBracket}, nil
	case c == ']':
		s.pos++
		return token{kind: tokRBracket}, nil
	case c == '(':
		s.pos++
		return token{kind: tokLParen}, nil
	case c == ')':
		s.pos++
		return token{kind: tokRParen}, nil
	case c == '+' || c == '-' || (c >= '0' && c <= '9'):
		return s.scanNumber()
	default:
		return s.scanPNameOrKeyword()
	}
}

func (s *scanner) scanIRI() (token, error) {
	s.pos++ // past '<'
	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			b.WriteByte(s.src[s.pos+1])
			s.pos += 2
			continue
		}
		if c == '>' {
			s.pos++
			return token{kind: tokIRI, val: b.String()}, nil
		}
		if c == '\n' {
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return token{}, errors.New("unterminated IRI")
}

func (s *scanner) scanLiteral(quote byte) (token, error) {
	long := s.peekAt(1) == quote && s.peekAt(2) == quote
	if long {
		s.pos += 3
	} else {
		s.pos++
	}

	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			// keep raw, unescaped in one pass afterwards
			b.WriteByte(c)
			b.WriteByte(s.src[s.pos+1])
			s.pos += 2
			continue
		}
		if c == quote {
			if !long {
				s.pos++
				s.consumeLiteralSuffix()
				return token{kind: tokLiteral, val: unescape(b.String())}, nil
			}
			if s.peekAt(1) == quote && s.peekAt(2) == quote {
				s.pos += 3
				s.consumeLiteralSuffix()
				return token{kind: tokLiteral, val: unescape(b.String())}, nil
			}
		}
		if !long && c == '\n' {
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return token{}, errors.New("unterminated literal")
}

// consumeLiteralSuffix eats an optional @lang tag or ^^datatype. The tag
// and datatype are dropped: matching downstream only needs the value and
// the literal/IRI distinction.
func (s *scanner) consumeLiteralSuffix() {
	if s.peekAt(0) == '@' {
		s.pos++
		for s.pos < len(s.src) && (isAlphaNum(s.src[s.pos]) || s.src[s.pos] == '-') {
			s.pos++
		}
		return
	}
	if s.peekAt(0) == '^' && s.peekAt(1) == '^' {
		s.pos += 2
		_, _ = s.next() // the datatype IRI is dropped
	}
}

func (s *scanner) scanBlank() (token, error) {
	s.pos += 2 // past "_:"
	start := s.pos
	for s.pos < len(s.src) && isNameChar(s.src[s.pos]) {
		s.pos++
	}
	val := s.src[start:s.pos]
	for strings.HasSuffix(val, ".") {
		val = val[:len(val)-1]
		s.pos--
	}
	if val == "" {
		return token{}, errors.New("empty blank node label")
	}
	return token{kind: tokBlank, val: "_:" + val}, nil
}

func (s *scanner) scanDirective() (token, error) {
	s.pos++ // past '@'
	start := s.pos
	for s.pos < len(s.src) && isAlpha(s.src[s.pos]) {
		s.pos++
	}
	word := strings.ToLower(s.src[start:s.pos])
	if word != "prefix" && word != "base" {
		return token{}, fmt.Errorf("unknown directive @%s", word)
	}
	return token{kind: tokDirective, val: word}, nil
}

func (s *scanner) scanNumber() (token, error) {
	start := s.pos
	if c := s.src[s.pos]; c == '+' || c == '-' {
		s.pos++
	}
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.peekAt(0) == '.' && s.peekAt(1) >= '0' && s.peekAt(1) <= '9' {
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	if c := s.peekAt(0); c == 'e' || c == 'E' {
		s.pos++
		if c := s.peekAt(0); c == '+' || c == '-' {
			s.pos++
		}
		for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	return token{kind: tokLiteral, val: s.src[start:s.pos]}, nil
}

func (s *scanner) scanPNameOrKeyword() (token, error) {
	start := s.pos
	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			// PN_LOCAL_ESC: keep the escaped character
			b.WriteByte(s.src[s.pos+1])
			s.pos += 2
			continue
		}
		if !isPNameChar(c) {
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	val := b.String()
	for strings.HasSuffix(val, ".") {
		val = val[:len(val)-1]
		s.pos--
	}
	if val == "" {
		s.pos++ // consume the offending byte so resync makes progress
		return token{}, fmt.Errorf("unexpected character %q", s.src[start])
	}

	switch {
	case val == "a":
		return token{kind: tokKeyword, val: "a"}, nil
	case val == "true" || val == "false":
		return token{kind: tokLiteral, val: val}, nil
	case strings.EqualFold(val, "GRAPH"),
		strings.EqualFold(val, "PREFIX"),
		strings.EqualFold(val, "BASE"):
		return token{kind: tokKeyword, val: strings.ToUpper(val)}, nil
	case strings.Contains(val, ":"):
		return token{kind: tokPName, val: val}, nil
	}
	return token{}, fmt.Errorf("unexpected token %q", val)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

func isNameChar(c byte) bool {
	return isAlphaNum(c) || c == '_' || c == '-' || c == '.' || c >= 0x80
}

func isPNameChar(c byte) bool {
	return isAlphaNum(c) || c == '_' || c == '-' || c == '.' || c == ':' ||
		c == '%' || c >= 0x80
}

func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '"', '\'', '\\':
			b.WriteByte(s[i])
		case 'u':
			if i+4 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 4
					continue
				}
			}
			b.WriteByte(s[i])
		case 'U':
			if i+8 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+9], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 8
					continue
				}
			}
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

type parser struct {
	s        *scanner
	prefixes map[string]string
	base     string
	quads    []Quad
	blankSeq int
	peeked   *token
	sawError bool
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	return p.s.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		tok, err := p.s.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

// recoverToSync skips tokens until a statement boundary: past a '.', up to
// a '}' (left for the caller), or EOF.
func (p *parser) recoverToSync() {
	p.sawError = true
	for {
		tok, err := p.peek()
		if err != nil {
			p.peeked = nil
			continue
		}
		switch tok.kind {
		case tokEOF, tokRBrace:
			return
		case tokDot:
			p.peeked = nil
			return
		default:
			p.peeked = nil
		}
	}
}

func (p *parser) run() {
	for {
		tok, err := p.peek()
		if err != nil {
			p.recoverToSync()
			continue
		}
		switch tok.kind {
		case tokEOF:
			return
		case tokDirective:
			if err := p.parseDirective(); err != nil {
				p.recoverToSync()
			}
		case tokKeyword:
			switch tok.val {
			case "PREFIX", "BASE":
				if err := p.parseDirective(); err != nil {
					p.recoverToSync()
				}
			case "GRAPH":
				p.peeked = nil
				if err := p.parseNamedGraph(); err != nil {
					p.recoverToSync()
				}
			default:
				p.recoverToSync()
			}
		case tokLBrace:
			p.peeked = nil
			if err := p.parseGraphBody(""); err != nil {
				p.recoverToSync()
			}
		case tokDot, tokRBrace:
			// stray statement terminator or brace, tolerate
			p.peeked = nil
			p.sawError = true
		default:
			if err := p.parseLabelOrTriples(); err != nil {
				p.recoverToSync()
			}
		}
	}
}

func (p *parser) parseDirective() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	sparqlForm := tok.kind == tokKeyword
	word := strings.ToLower(tok.val)

	switch word {
	case "prefix":
		ns, err := p.next()
		if err != nil {
			return err
		}
		if ns.kind != tokPName || !strings.HasSuffix(ns.val, ":") {
			return fmt.Errorf("expected prefix name, got %q", ns.val)
		}
		iri, err := p.next()
		if err != nil {
			return err
		}
		if iri.kind != tokIRI {
			return errors.New("expected IRI in prefix directive")
		}
		p.prefixes[strings.TrimSuffix(ns.val, ":")] = p.resolveIRI(iri.val)
	case "base":
		iri, err := p.next()
		if err != nil {
			return err
		}
		if iri.kind != tokIRI {
			return errors.New("expected IRI in base directive")
		}
		p.base = p.resolveIRI(iri.val)
	default:
		return fmt.Errorf("unknown directive %q", tok.val)
	}

	// '@' directives require the dot; SPARQL-style ones go without, but
	// tolerate either
	if next, err := p.peek(); err == nil && next.kind == tokDot {
		p.peeked = nil
	} else if !sparqlForm {
		return errors.New("missing '.' after directive")
	}
	return nil
}

// parseLabelOrTriples handles the TriG ambiguity at the top level: a term
// followed by '{' opens a named graph, anything else starts default-graph
// triples.
func (p *parser) parseLabelOrTriples() error {
	mark := len(p.quads)
	subject, _, err := p.parseTerm("")
	if err != nil {
		return err
	}
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.kind == tokLBrace {
		p.peeked = nil
		return p.parseGraphBody(subject)
	}
	if err := p.parsePredicateObjectList(subject, ""); err != nil {
		return err
	}
	// N-Quads puts the graph label in fourth position
	if tok, err := p.peek(); err == nil &&
		(tok.kind == tokIRI || tok.kind == tokPName || tok.kind == tokBlank) {
		graph, _, err := p.parseTerm("")
		if err != nil {
			return err
		}
		for i := mark; i < len(p.quads); i++ {
			p.quads[i].Graph = graph
		}
	}
	return p.expectDot()
}

func (p *parser) parseNamedGraph() error {
	label, _, err := p.parseTerm("")
	if err != nil {
		return err
	}
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.kind != tokLBrace {
		return errors.New("expected '{' after graph label")
	}
	return p.parseGraphBody(label)
}

func (p *parser) parseGraphBody(graph string) error {
	for {
		tok, err := p.peek()
		if err != nil {
			p.recoverToSync()
			continue
		}
		switch tok.kind {
		case tokRBrace:
			p.peeked = nil
			// optional trailing '.' after the block
			if next, err := p.peek(); err == nil && next.kind == tokDot {
				p.peeked = nil
			}
			return nil
		case tokEOF:
			return errors.New("unterminated graph block")
		case tokDot:
			p.peeked = nil
		default:
			subject, _, err := p.parseTerm(graph)
			if err == nil {
				err = p.parsePredicateObjectList(subject, graph)
			}
			if err != nil {
				p.recoverToSync()
				continue
			}
			if next, perr := p.peek(); perr == nil && next.kind == tokDot {
				p.peeked = nil
			}
		}
	}
}

func (p *parser) parsePredicateObjectList(subject, graph string) error {
	for {
		verb, err := p.parseVerb()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subject, verb, graph); err != nil {
			return err
		}
		tok, err := p.peek()
		if err != nil || tok.kind != tokSemicolon {
			return err
		}
		p.peeked = nil
		// a ';' may be trailing before the statement end
		tok, err = p.peek()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokDot, tokRBrace, tokRBracket, tokEOF:
			return nil
		}
	}
}

func (p *parser) parseObjectList(subject, verb, graph string) error {
	for {
		object, isLit, err := p.parseTerm(graph)
		if err != nil {
			return err
		}
		p.quads = append(p.quads, Quad{
			Subject:   subject,
			Predicate: verb,
			Object:    object,
			Graph:     graph,
			IsLiteral: isLit,
		})
		tok, err := p.peek()
		if err != nil || tok.kind != tokComma {
			return err
		}
		p.peeked = nil
	}
}

func (p *parser) parseVerb() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	switch tok.kind {
	case tokKeyword:
		if tok.val == "a" {
			return rdfType, nil
		}
	case tokIRI:
		return p.resolveIRI(tok.val), nil
	case tokPName:
		return p.expandPName(tok.val)
	}
	return "", fmt.Errorf("expected predicate, got %q", tok.val)
}

// parseTerm parses a subject, object or graph label. Returns the term's
// string form and whether it is a literal.
func (p *parser) parseTerm(graph string) (string, bool, error) {
	tok, err := p.next()
	if err != nil {
		return "", false, err
	}
	switch tok.kind {
	case tokIRI:
		return p.resolveIRI(tok.val), false, nil
	case tokPName:
		expanded, err := p.expandPName(tok.val)
		return expanded, false, err
	case tokBlank:
		return tok.val, false, nil
	case tokLiteral:
		return tok.val, true, nil
	case tokLBracket:
		return p.parseAnonNode(graph)
	case tokLParen:
		return p.skipCollection()
	}
	return "", false, fmt.Errorf("expected term, got token kind %d", tok.kind)
}

// parseAnonNode handles [ ... ] property lists, attributing the contained
// triples to a fresh blank node.
func (p *parser) parseAnonNode(graph string) (string, bool, error) {
	p.blankSeq++
	node := fmt.Sprintf("_:anon%d", p.blankSeq)

	tok, err := p.peek()
	if err != nil {
		return "", false, err
	}
	if tok.kind == tokRBracket {
		p.peeked = nil
		return node, false, nil
	}
	if err := p.parsePredicateObjectList(node, graph); err != nil {
		return "", false, err
	}
	tok, err = p.next()
	if err != nil {
		return "", false, err
	}
	if tok.kind != tokRBracket {
		return "", false, errors.New("expected ']'")
	}
	return node, false, nil
}

// skipCollection consumes a ( ... ) collection and stands in a fresh blank
// node for it. Nanopublications do not use RDF collections, so members are
// not expanded into first/rest triples.
func (p *parser) skipCollection() (string, bool, error) {
	depth := 1
	for depth > 0 {
		tok, err := p.next()
		if err != nil {
			return "", false, err
		}
		switch tok.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		case tokEOF:
			return "", false, errors.New("unterminated collection")
		}
	}
	p.blankSeq++
	return fmt.Sprintf("_:anon%d", p.blankSeq), false, nil
}

func (p *parser) expectDot() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.kind != tokDot {
		return errors.New("expected '.'")
	}
	return nil
}

func (p *parser) resolveIRI(raw string) string {
	if p.base == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() {
		return raw
	}
	b, err := url.Parse(p.base)
	if err != nil {
		return raw
	}
	return b.ResolveReference(u).String()
}

func (p *parser) expandPName(val string) (string, error) {
	idx := strings.Index(val, ":")
	prefix, local := val[:idx], val[idx+1:]
	ns, ok := p.prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("undefined prefix %q", prefix)
	}
	return ns + local, nil
}
