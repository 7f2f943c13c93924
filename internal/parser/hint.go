package parser

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/tinyrange/sysy/internal/lexer"
)

// closestKeyword returns the keyword with the smallest edit distance from
// name, or "" when every keyword would need its text replaced entirely.
func closestKeyword(name string) (closest string) {
	nameRunes := []rune(name)
	closestDistance := len(name)

	for _, keyword := range lexer.Keywords() {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(keyword),
			levenshtein.DefaultOptions,
		)
		if distance < closestDistance && distance < len(keyword) {
			closest = keyword
			closestDistance = distance
		}
	}
	return
}

// keywordHint formats a suggestion suffix for an identifier that looks
// like a misspelt keyword.
func keywordHint(name string) string {
	keyword := closestKeyword(name)
	if keyword == "" {
		return ""
	}
	return fmt.Sprintf("; did you mean '%s'?", keyword)
}
