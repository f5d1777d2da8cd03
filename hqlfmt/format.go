// Package hqlfmt re-formats HQL source text: canonical keyword
// capitalization, four-space block indentation, one traversal step per
// line for long chains, and one field per line in multi-field projections.
//
// Formatting is best effort and never fails. Input the formatter does not
// understand passes through with its spacing normalized, and formatted
// output formats to itself.
package hqlfmt

import (
	"strings"

	"github.com/nodfans/helixdb-explorer-sub000/ast"
	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

// inlineStepLimit is the top-level step count above which a chain is split
// one step per line.
const inlineStepLimit = 2

// Format normalizes src. The result carries no leading or trailing blank
// lines and runs of blank lines collapse to one.
func Format(src string) string {
	src = normalizeTokens(src)

	var out []string
	braces := 0
	inQuery := false
	sawReturn := false
	blank := true
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if !blank {
				blank = true
				out = append(out, "")
			}
			continue
		}
		blank = false
		switch {
		case strings.HasPrefix(line, hql.KwQuery+" "):
			inQuery = true
			sawReturn = false
			braces = 0
		case braces == 0 && isSchemaHeader(line):
			inQuery = false
			sawReturn = false
		}
		segs := []string{line}
		if inQuery {
			segs = splitChain(line)
		}
		for _, seg := range segs {
			out = append(out, strings.Repeat(ast.Indent, indentFor(seg, braces, inQuery))+seg)
			braces += netBraces(seg)
		}
		if strings.HasPrefix(line, hql.KwReturn) {
			sawReturn = true
		}
		if inQuery && sawReturn && braces == 0 {
			inQuery = false
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func isSchemaHeader(line string) bool {
	for _, p := range []string{hql.PrefixNode, hql.PrefixEdge, hql.PrefixVector} {
		if strings.HasPrefix(line, p+"::") {
			return true
		}
	}
	return false
}

// indentFor computes the indent level of a segment from the open brace
// count. Query bodies sit one level in, continuation step lines two.
func indentFor(seg string, braces int, inQuery bool) int {
	base := braces - leadingClosers(seg)
	if base < 0 {
		base = 0
	}
	if !inQuery {
		return base
	}
	switch {
	case strings.HasPrefix(seg, hql.KwQuery+" "):
		return 0
	case strings.HasPrefix(seg, "::"):
		return base + 2
	default:
		return base + 1
	}
}

func leadingClosers(seg string) int {
	n := 0
	for _, c := range seg {
		if c == '}' {
			n++
			continue
		}
		if c == ')' || c == ']' {
			continue
		}
		break
	}
	return n
}

// netBraces counts curly braces outside string literals and comments.
func netBraces(seg string) int {
	d := depthMap(seg)
	n := 0
	for i := 0; i < len(seg); i++ {
		if d[i] < 0 {
			continue
		}
		switch seg[i] {
		case '{':
			n++
		case '}':
			n--
		}
	}
	return n
}

// splitChain breaks an inline statement line into continuation segments.
// A chain splits when it carries more than inlineStepLimit named steps, or
// when any named step holds an inline multi-field projection. Bare
// projection steps stay glued to the segment before them. Lines that are
// already continuations pass through, so formatted output is stable.
func splitChain(line string) []string {
	head, steps := splitSteps(line)
	if head == "" || len(steps) == 0 {
		return expandProjection(line)
	}
	named := 0
	split := false
	for _, s := range steps {
		if strings.HasPrefix(s, "::{") {
			continue
		}
		named++
		if hasInlineMultiField(s) {
			split = true
		}
	}
	if named > inlineStepLimit {
		split = true
	}
	if !split {
		return expandProjection(line)
	}
	segs := []string{head}
	for _, s := range steps {
		if strings.HasPrefix(s, "::{") {
			segs[len(segs)-1] += s
		} else {
			segs = append(segs, s)
		}
	}
	var out []string
	for _, seg := range segs {
		out = append(out, expandProjection(seg)...)
	}
	return out
}

// splitSteps cuts a line at every top-level "::", returning the text before
// the first cut and one segment per step. Chained operators inside parens,
// angle brackets, braces, or strings are never cut points.
func splitSteps(line string) (string, []string) {
	d := depthMap(line)
	var cuts []int
	for i := 0; i+1 < len(line); i++ {
		if line[i] == ':' && line[i+1] == ':' && d[i] == 0 && d[i+1] == 0 {
			cuts = append(cuts, i)
			i++
		}
	}
	if len(cuts) == 0 {
		return line, nil
	}
	head := strings.TrimSpace(line[:cuts[0]])
	steps := make([]string, 0, len(cuts))
	for j, c := range cuts {
		end := len(line)
		if j+1 < len(cuts) {
			end = cuts[j+1]
		}
		steps = append(steps, strings.TrimSpace(line[c:end]))
	}
	return head, steps
}

// expandProjection rewrites the first inline multi-field projection of the
// segment to one field per line and recurses on the remainder. Property
// braces like _::{name} hold no colon-separated fields and pass through.
func expandProjection(seg string) []string {
	d := depthMap(seg)
	for i := 0; i < len(seg); i++ {
		if seg[i] != '{' || d[i] < 0 {
			continue
		}
		close := matchingClose(seg, d, i)
		if close < 0 {
			break
		}
		fields, ok := projectionFields(seg[i+1 : close])
		if !ok || len(fields) < 2 {
			i = close
			continue
		}
		lines := []string{strings.TrimSpace(seg[:i+1])}
		for k, f := range fields {
			if k < len(fields)-1 {
				f += ","
			}
			lines = append(lines, f)
		}
		return append(lines, expandProjection(strings.TrimSpace(seg[close:]))...)
	}
	return []string{seg}
}

func hasInlineMultiField(seg string) bool {
	d := depthMap(seg)
	for i := 0; i < len(seg); i++ {
		if seg[i] != '{' || d[i] < 0 {
			continue
		}
		close := matchingClose(seg, d, i)
		if close < 0 {
			return false
		}
		if fields, ok := projectionFields(seg[i+1 : close]); ok && len(fields) > 1 {
			return true
		}
		i = close
	}
	return false
}

// matchingClose finds the closing brace paired with the opener at index i,
// or -1 when the block continues on a later line.
func matchingClose(seg string, d []int, i int) int {
	for j := i + 1; j < len(seg); j++ {
		if seg[j] == '}' && d[j] == d[i] {
			return j
		}
	}
	return -1
}

// projectionFields splits projection content on its top-level commas. Every
// part must be a name: value field for the block to count as a projection.
func projectionFields(content string) ([]string, bool) {
	d := depthMap(content)
	var fields []string
	start := 0
	for i := 0; i <= len(content); i++ {
		if i < len(content) && (content[i] != ',' || d[i] != 0) {
			continue
		}
		part := strings.TrimSpace(content[start:i])
		if part == "" {
			return nil, false
		}
		if !hasTopLevelColon(part) {
			return nil, false
		}
		fields = append(fields, part)
		start = i + 1
	}
	return fields, true
}

func hasTopLevelColon(part string) bool {
	d := depthMap(part)
	for i := 0; i < len(part); i++ {
		if part[i] != ':' || d[i] != 0 {
			continue
		}
		// "::" is a chain, not a field separator.
		if i+1 < len(part) && part[i+1] == ':' {
			i++
			continue
		}
		if i > 0 && part[i-1] == ':' {
			continue
		}
		return true
	}
	return false
}

// depthMap records the bracket nesting depth at every byte of the line.
// Bytes inside string literals or comments map to -1. The arrows "<-" and
// "=>" do not open or close angle depth.
func depthMap(s string) []int {
	d := make([]int, len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			d[i] = -1
			for i++; i < len(s); i++ {
				d[i] = -1
				if s[i] == '\\' && i+1 < len(s) {
					i++
					d[i] = -1
					continue
				}
				if s[i] == '"' {
					break
				}
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for ; i < len(s); i++ {
				d[i] = -1
			}
			break
		}
		switch c {
		case '(', '[', '{':
			d[i] = depth
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				depth = 0
			}
			d[i] = depth
		case '<':
			d[i] = depth
			if i+1 < len(s) && s[i+1] == '-' {
				i++
				d[i] = depth
			} else {
				depth++
			}
		case '>':
			if i > 0 && s[i-1] == '=' {
				d[i] = depth
			} else {
				depth--
				if depth < 0 {
					depth = 0
				}
				d[i] = depth
			}
		default:
			d[i] = depth
		}
	}
	return d
}
