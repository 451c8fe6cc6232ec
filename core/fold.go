package core

import "golang.org/x/text/cases"

// Fold returns the Unicode case-folded form of s. Folded strings are the
// lookup keys of the broad-synonym channel, which is what makes
// case-insensitive matching work through a case-sensitive store primitive.
func Fold(s string) string {
	return cases.Fold().String(s)
}
