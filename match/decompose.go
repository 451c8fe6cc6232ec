package match

import "strings"

// Sub-phrase separators: any run of these splits the query into words.
func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.'
}

// Decompose generates every contiguous word sub-phrase of text, joined by
// single spaces. Sub-phrases of the same word count appear together in
// left-to-right offset order, and longer word counts precede shorter ones,
// so the first match in this order is always the longest. A text of n
// words yields n*(n+1)/2 sub-phrases; empty or separator-only input yields
// none.
func Decompose(text string) []string {
	var phrases []string
	for _, group := range decomposeGroups(text) {
		phrases = append(phrases, group...)
	}
	return phrases
}

// decomposeGroups returns the sub-phrases grouped by word count, the
// longest group first. The matcher consumes groups one at a time so it can
// stop at the first word count that produces hits.
func decomposeGroups(text string) [][]string {
	words := strings.FieldsFunc(text, isSeparator)
	if len(words) == 0 {
		return nil
	}

	groups := make([][]string, 0, len(words))
	for length := len(words); length >= 1; length-- {
		group := make([]string, 0, len(words)-length+1)
		for start := 0; start+length <= len(words); start++ {
			group = append(group, strings.Join(words[start:start+length], " "))
		}
		groups = append(groups, group)
	}
	return groups
}
