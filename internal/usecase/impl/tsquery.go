package impl

import (
	"regexp"
	"strings"
)

// Postgres to_tsquery parses its argument as an expression language, so raw
// user input has to be rebuilt into something it will always accept: strip
// everything but word characters, whitespace and hyphens, then chain the
// remaining terms as prefix matches in order.
var (
	tsqueryStripPattern = regexp.MustCompile(`[^\w\s-]`)
	tsqueryTermPattern  = regexp.MustCompile(`((?:\w+-?)+\w{0,})`)
)

// sanitizeTSQuery turns free-form user input into a to_tsquery expression of
// the form "term:* <-> term:*". An empty string comes back when nothing
// searchable survives the stripping.
func sanitizeTSQuery(query string) string {
	stripped := tsqueryStripPattern.ReplaceAllString(query, "")

	terms := tsqueryTermPattern.FindAllString(stripped, -1)
	if len(terms) == 0 {
		return ""
	}

	for i, term := range terms {
		terms[i] = term + ":*"
	}

	return strings.Join(terms, " <-> ")
}
