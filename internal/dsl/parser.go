package dsl

import (
	"regexp"
	"strconv"
	"strings"
)

// emailPattern mirrors the EMAIL terminal from the original grammar:
// [a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Parse parses already-filtered DSL text (no prose lines, no fences) into a
// Document. Use ParseFiltered to run the masking/filtering pipeline first.
func Parse(text string) (*Document, error) {
	s := newScanner(text)
	doc := &Document{}

	s.skipNewlines()
	for !s.eof() {
		stmt, err := parseStatement(s)
		if err != nil {
			return nil, err
		}
		doc.Statements = append(doc.Statements, stmt)
		if err := expectStatementEnd(s); err != nil {
			return nil, err
		}
		s.skipNewlines()
	}

	return doc, nil
}

// ParseFiltered masks fenced/brace regions, drops prose lines, restores the
// masked regions, then parses the result.
func ParseFiltered(text string) (*Document, error) {
	return Parse(filterBody(text))
}

func parseStatement(s *scanner) (Statement, error) {
	switch s.peek() {
	case '#':
		return parseHashtag(s)
	case ':':
		return parseAttributeDecl(s)
	case '/':
		return parseItemOrVote(s)
	default:
		return parseEmail(s)
	}
}

func parseHashtag(s *scanner) (Statement, error) {
	line, col := s.line, s.col
	s.advance() // '#'
	name, err := scanIdent(s)
	if err != nil {
		return nil, newSyntaxError(line, col, "hashtag missing name: %v", err)
	}
	return Hashtag{Name: name}, nil
}

func parseAttributeDecl(s *scanner) (Statement, error) {
	var names []string
	for s.peek() == ':' {
		line, col := s.line, s.col
		s.advance() // ':'
		name, err := scanWord(s)
		if err != nil {
			return nil, newSyntaxError(line, col, "attribute missing name: %v", err)
		}
		names = append(names, name)
		s.skipInlineWS()
	}
	if len(names) == 0 {
		return nil, newSyntaxError(s.line, s.col, "expected attribute declaration")
	}
	return AttributeDecl{Names: names}, nil
}

// parseItemOrVote resolves the shared '/ident' prefix: if what follows the
// first item reference is a comparison operator, this is a vote; otherwise
// it is an item with an optional body.
func parseItemOrVote(s *scanner) (Statement, error) {
	line, col := s.line, s.col
	s.advance() // '/'
	title, err := scanIdent(s)
	if err != nil {
		return nil, newSyntaxError(line, col, "item reference missing name: %v", err)
	}
	s.skipInlineWS()

	if looksLikeComparison(s) {
		left, right, err := parseComparison(s)
		if err != nil {
			return nil, err
		}
		s.skipInlineWS()
		if s.peek() != '/' {
			return nil, newSyntaxError(s.line, s.col, "vote missing second item reference")
		}
		s.advance() // '/'
		item2, err := scanIdent(s)
		if err != nil {
			return nil, newSyntaxError(s.line, s.col, "vote missing second item name: %v", err)
		}
		s.skipInlineWS()

		var explanation *string
		if s.peek() == '{' {
			text, err := scanBody(s)
			if err != nil {
				return nil, err
			}
			explanation = &text
		}

		return Vote{
			Item1:       title,
			Item2:       item2,
			RatioLeft:   left,
			RatioRight:  right,
			Explanation: explanation,
		}, nil
	}

	var body *string
	if s.peek() == '{' {
		text, err := scanBody(s)
		if err != nil {
			return nil, err
		}
		body = &text
	}
	return Item{Title: title, Body: body}, nil
}

func looksLikeComparison(s *scanner) bool {
	r := s.peek()
	return isDigit(r) || r == '>' || r == '<' || r == '='
}

func parseComparison(s *scanner) (int, int, error) {
	switch r := s.peek(); {
	case r == '>':
		s.advance()
		return 2, 1, nil
	case r == '<':
		s.advance()
		return 1, 2, nil
	case r == '=':
		s.advance()
		return 1, 1, nil
	case isDigit(r):
		line, col := s.line, s.col
		left, err := scanNumber(s)
		if err != nil {
			return 0, 0, newSyntaxError(line, col, "invalid ratio: %v", err)
		}
		if s.peek() != ':' {
			return 0, 0, newSyntaxError(s.line, s.col, "expected ':' in ratio")
		}
		s.advance()
		right, err := scanNumber(s)
		if err != nil {
			return 0, 0, newSyntaxError(s.line, s.col, "invalid ratio: %v", err)
		}
		return left, right, nil
	default:
		return 0, 0, newSyntaxError(s.line, s.col, "expected comparison operator")
	}
}

func parseEmail(s *scanner) (Statement, error) {
	line, col := s.line, s.col
	remaining := string(s.runes[s.pos:])
	loc := emailPattern.FindStringIndex(remaining)
	if loc == nil || loc[0] != 0 {
		return nil, newSyntaxError(line, col, "unrecognized statement")
	}
	matched := remaining[:loc[1]]
	for range matched {
		s.advance()
	}
	return EmailLiteral{Address: matched}, nil
}

// scanIdent reads [A-Za-z0-9_]+(-[A-Za-z0-9_]+)*.
func scanIdent(s *scanner) (string, error) {
	var b strings.Builder
	if !isIdentRune(s.peek()) {
		return "", newSyntaxError(s.line, s.col, "expected identifier")
	}
	for isIdentRune(s.peek()) {
		b.WriteRune(s.advance())
	}
	for s.peek() == '-' && isIdentRune(s.peekAt(1)) {
		b.WriteRune(s.advance()) // '-'
		for isIdentRune(s.peek()) {
			b.WriteRune(s.advance())
		}
	}
	return b.String(), nil
}

// scanWord reads [A-Za-z0-9_]+ (attribute names do not allow dashes).
func scanWord(s *scanner) (string, error) {
	var b strings.Builder
	if !isIdentRune(s.peek()) {
		return "", newSyntaxError(s.line, s.col, "expected word")
	}
	for isIdentRune(s.peek()) {
		b.WriteRune(s.advance())
	}
	return b.String(), nil
}

func scanNumber(s *scanner) (int, error) {
	var b strings.Builder
	if !isDigit(s.peek()) {
		return 0, newSyntaxError(s.line, s.col, "expected number")
	}
	for isDigit(s.peek()) {
		b.WriteRune(s.advance())
	}
	return strconv.Atoi(b.String())
}

// scanBody reads a brace-delimited body. "{{ ... }}" bodies close at the
// first "}}" and may contain anything, including single braces and
// newlines; "{ ... }" bodies close at the first "}" and may not contain
// braces, mirroring the original grammar's terminals exactly.
func scanBody(s *scanner) (string, error) {
	line, col := s.line, s.col
	if s.peek() == '{' && s.peekAt(1) == '{' {
		s.advance()
		s.advance()
		var b strings.Builder
		for {
			if s.eof() {
				return "", newSyntaxError(line, col, "unterminated double-brace body")
			}
			if s.peek() == '}' && s.peekAt(1) == '}' {
				s.advance()
				s.advance()
				return strings.TrimSpace(b.String()), nil
			}
			b.WriteRune(s.advance())
		}
	}

	s.advance() // '{'
	var b strings.Builder
	for {
		if s.eof() {
			return "", newSyntaxError(line, col, "unterminated body")
		}
		if s.peek() == '}' {
			s.advance()
			return strings.TrimSpace(b.String()), nil
		}
		if s.peek() == '{' {
			return "", newSyntaxError(s.line, s.col, "single-brace body cannot contain nested braces; use {{ }}")
		}
		b.WriteRune(s.advance())
	}
}

// expectStatementEnd requires the statement to be followed by a newline or
// end of input; newlines separate statements but carry no other meaning.
// Statements cannot share a line, even though they carry no other meaning;
// this matches the original grammar's own newline-separated statement list.
func expectStatementEnd(s *scanner) error {
	s.skipInlineWS()
	if s.eof() {
		return nil
	}
	if s.peek() == '\n' {
		return nil
	}
	return newSyntaxError(s.line, s.col, "unexpected trailing content after statement")
}
