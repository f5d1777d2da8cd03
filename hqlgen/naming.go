package hqlgen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// PascalCase transforms an underscore- or hyphen-delimited name into
// PascalCase by removing the delimiters and capitalizing each segment.
// Segment tails are preserved, so the transform is idempotent:
// PascalCase(PascalCase(s)) == PascalCase(s).
func PascalCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var b strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// SnakeCase transforms a PascalCase or camelCase name into snake_case.
// Runs of uppercase letters stay together: "UserID" becomes "user_id".
func SnakeCase(name string) string {
	var b strings.Builder
	var prev rune
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && prev != '_' && !unicode.IsUpper(prev) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

var pluralRules = inflect.NewDefaultRuleset()

// Plural returns the plural identifier form of a PascalCase name, used in
// collection-shaped query names such as GetAllUsers.
func Plural(name string) string {
	return pluralRules.Pluralize(name)
}
