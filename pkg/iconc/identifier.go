package iconc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	separatorRun    = regexp.MustCompile(`[-_]+`)
	nonWordOrSpace  = regexp.MustCompile(`[^\w\s]`)
	spaceThenChar   = regexp.MustCompile(` (.)`)
	validIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

// BaseName strips the .svg extension from filename
func BaseName(filename string) string {
	return strings.TrimSuffix(filename, SVGExt)
}

// CamelCase lower-cases s, turns runs of '-' and '_' into word boundaries,
// drops anything that is not a word character or whitespace, and joins the
// words upper-casing the first character after each space.
//
//	CamelCase("Arrow-LEFT_circle") == "arrowLeftCircle"
func CamelCase(s string) string {
	s = strings.ToLower(s)
	s = separatorRun.ReplaceAllString(s, " ")
	s = nonWordOrSpace.ReplaceAllString(s, "")
	s = spaceThenChar.ReplaceAllStringFunc(s, strings.ToUpper)
	return strings.ReplaceAll(s, " ", "")
}

// UpcaseFirst upper-cases the first character of s
func UpcaseFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// DeriveIdentifier turns an icon filename into its export name.
// The result must start with a letter and contain only letters and digits,
// otherwise an *InvalidIdentifierError is returned.
func DeriveIdentifier(filename string, upcaseFirst bool) (string, error) {
	name := CamelCase(BaseName(filename))
	if upcaseFirst {
		name = UpcaseFirst(name)
	}

	if !validIdentifier.MatchString(name) {
		return "", &InvalidIdentifierError{File: filename, Identifier: name}
	}
	return name, nil
}
