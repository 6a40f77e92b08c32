// Package text provides string presence checks, pattern validation and masking.
package text

import (
	"strings"

	"github.com/grafana/regexp"
)

// MaskRune replaces hidden characters.
const MaskRune = '*'

// Unset marks an index argument of Hidden as not provided.
const Unset = -1

var (
	emailPattern  = regexp.MustCompile("^[\\w!#$%&'*+/=?^_`{|}~-]+(?:\\.[\\w!#$%&'*+/=?^_`{|}~-]+)*@(?:\\w(?:[\\w-]*\\w)?\\.)+\\w(?:[\\w-]*\\w)?$")
	phonePattern  = regexp.MustCompile(`^1[3578][0-9]{9}$`)
	letterPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// HasLength reports whether s has at least one character, whitespace included.
func HasLength(s string) bool {
	return len(s) > 0
}

// HasText reports whether s has at least one character once surrounding
// whitespace is trimmed.
func HasText(s string) bool {
	return len(strings.TrimSpace(s)) > 0
}

// IsEmail reports whether s is a well-formed e-mail address with a dotted domain.
func IsEmail(s string) bool {
	return HasLength(s) && emailPattern.MatchString(s)
}

// IsPhone reports whether s is an 11 digit mobile number with a 13, 15, 17 or 18 prefix.
func IsPhone(s string) bool {
	return HasLength(s) && phonePattern.MatchString(s)
}

// IsLetter reports whether s consists only of ASCII letters.
func IsLetter(s string) bool {
	return HasLength(s) && letterPattern.MatchString(s)
}

// Hidden masks every rune of src whose index i satisfies start <= i <= end.
//
// src is returned unchanged when it has no text or start is Unset. An Unset
// end masks through the last rune; an end past the last rune is clamped.
//
//	Hidden("13856237928", 3, 7) // "138****7928"
func Hidden(src string, start, end int) string {
	if !HasText(src) || start == Unset {
		return src
	}
	runes := []rune(src)
	if end == Unset {
		end = len(runes)
	}

	var b strings.Builder
	b.Grow(len(src))
	for i, r := range runes {
		if i >= start && i <= end {
			b.WriteRune(MaskRune)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
