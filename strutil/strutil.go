package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separators = strings.NewReplacer("-", " ", "_", " ")

// Camelize converts a dash or underscore separated string to CamelCase.
// Every word's first letter is upper-cased and the separators are dropped;
// the rest of each word is kept as is. Word starts follow Unicode title
// casing, so a letter after a digit also starts a word ("foo-1bar" becomes
// "Foo1Bar"). Pass pascalCase=false to lower-case the very first letter
// instead.
//
//	Camelize("foo-bar-baz")        // "FooBarBaz"
//	Camelize("foo_bar_baz", false) // "fooBarBaz"
func Camelize(s string, pascalCase ...bool) string {
	// Casers carry state, so each call gets its own.
	title := cases.Title(language.Und, cases.NoLower)
	out := strings.ReplaceAll(title.String(separators.Replace(s)), " ", "")

	if len(pascalCase) > 0 && !pascalCase[0] {
		return lowerFirst(out)
	}
	return out
}

// Words splits s around runs of white space.
func Words(s string) []string {
	return strings.Fields(s)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
