package hqlfmt

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

var hqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `::|<-|=>|[{}()\[\]<>,:.=-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// normalizeTokens rewrites vocabulary identifiers to their canonical
// capitalization, leaving everything else, string literals included, byte
// for byte. Identifiers are only touched in positions where the grammar
// expects a vocabulary token, so user identifiers that happen to spell a
// step name in another case survive outside those positions. On lexing
// failure the source is returned unchanged.
func normalizeTokens(src string) string {
	lex, err := hqlLexer.Lex("", strings.NewReader(src))
	if err != nil {
		return src
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return src
	}
	symbols := hqlLexer.Symbols()
	identType := symbols["Ident"]
	wsType := symbols["Whitespace"]

	var b strings.Builder
	b.Grow(len(src))
	prev := ""
	atLineStart := true
	for i, t := range toks {
		if t.EOF() {
			break
		}
		if t.Type == wsType {
			b.WriteString(t.Value)
			if strings.Contains(t.Value, "\n") {
				atLineStart = true
				prev = ""
			}
			continue
		}
		v := t.Value
		if t.Type == identType {
			if c, ok := canonicalIdent(v, prev, atLineStart, nextValue(toks, i, wsType)); ok {
				v = c
			}
		}
		b.WriteString(v)
		prev = v
		atLineStart = false
	}
	return b.String()
}

// nextValue returns the value of the next non-whitespace token after i.
func nextValue(toks []lexer.Token, i int, wsType lexer.TokenType) string {
	for _, t := range toks[i+1:] {
		if t.EOF() {
			return ""
		}
		if t.Type == wsType {
			continue
		}
		return t.Value
	}
	return ""
}

// canonicalIdent decides whether the identifier v sits in a vocabulary
// position, judged by the previous significant token on the line and the
// next one, and returns the canonical spelling if so.
func canonicalIdent(v, prev string, atLineStart bool, next string) (string, bool) {
	c, ok := hql.Canonical(v)
	if !ok {
		return "", false
	}
	switch {
	case prev == "::":
		return c, true
	case prev == ":" || prev == "[":
		if hql.Scalar(c).Valid() {
			return c, true
		}
	case prev == "<":
		if c == hql.OrderAsc || c == hql.OrderDesc {
			return c, true
		}
	case prev == hql.KwDefault:
		if c == hql.KwNow {
			return c, true
		}
	case prev == hql.KwUnique:
		if c == hql.KwIndex {
			return c, true
		}
	case prev == hql.KwDrop || prev == "<-":
		// Traversal sources: N<...>, AddN<...>, SearchV<...> and friends.
		if next == "<" || next == "::" {
			return c, true
		}
	case prev == "(" && c == hql.KwExists && next == "(":
		return c, true
	case atLineStart:
		switch c {
		case hql.KwQuery, hql.KwReturn, hql.KwDrop, hql.KwUnique, hql.KwIndex:
			return c, true
		case hql.PrefixNode, hql.PrefixEdge, hql.PrefixVector:
			if next == "::" {
				return c, true
			}
		}
	}
	return "", false
}
