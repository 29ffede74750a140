package identity

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxNameLength is the longest holder name, in runes, after normalisation.
const MaxNameLength = 64

var (
	errEmptyName   = errors.New("name is empty")
	errNameTooLong = errors.New("name is too long")
)

// NormalizeName trims a holder name, collapses inner whitespace and upper-cases
// it with Turkish rules, so "iğdir" becomes "İĞDİR" rather than "IĞDIR".
func NormalizeName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", errEmptyName
	}

	name = cases.Upper(language.Turkish).String(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", errNameTooLong
	}

	return name, nil
}
