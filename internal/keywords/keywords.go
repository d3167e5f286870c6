// Package keywords derives descriptive tags from free-text organization
// bios. Tokens are segmented per UAX #29 word boundaries, lower-cased with
// English folding, then filtered down to distinctive content words.
package keywords

import (
	"sort"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/daoatlas/daoatlas/pkg/constants"
)

var lower = cases.Lower(language.English)

// Extract returns the distinct content words of a bio, sorted
// alphabetically. Stopwords, tokens shorter than the minimum keyword
// length, URL fragments, and tokens with non-alphanumeric runes are
// dropped.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	tokens := words.FromString(text)
	for tokens.Next() {
		token := lower.String(strings.TrimSpace(tokens.Value()))
		if !keep(token) {
			continue
		}
		seen[token] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	result := make([]string, 0, len(seen))
	for token := range seen {
		result = append(result, token)
	}
	sort.Strings(result)
	return result
}

func keep(token string) bool {
	if len([]rune(token)) < constants.MinKeywordLength {
		return false
	}
	if _, ok := stopwords[token]; ok {
		return false
	}
	if strings.Contains(token, "http") {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
