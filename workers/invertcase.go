package workers

import (
	"strings"
	"unicode"

	"github.com/fulldump/clientsdb/clients"
)

// InvertCase returns a copy of fields with the case of every letter of every
// text field flipped. The encoded image is left untouched.
func InvertCase(fields clients.Fields) clients.Fields {
	result := fields
	for _, text := range result.TextFields() {
		if text == &result.Image {
			continue
		}
		*text = InvertString(*text)
	}
	return result
}

func InvertString(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.ToUpper(r) == r:
			return unicode.ToLower(r)
		case unicode.ToLower(r) == r:
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}
