package app

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// $1 for postgres/pgx, ? for sqlite
	placeholderRunRegex = regexp.MustCompile(`(\$\d+|\?)(?:\s*,\s*(?:\$\d+|\?)){3,}`)
	valuesRowsRegex     = regexp.MustCompile(`(?i)(VALUES\s*\([^()]*\))(?:\s*,\s*\([^()]*\))+`)
)

// formatDBQueryForTrace shortens a statement for span attributes. Batch
// inserts and IN lists are folded so a roster save does not blow the limit
// with hundreds of placeholders.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	query = queryWhitespaceRegex.ReplaceAllString(query, " ")
	query = placeholderRunRegex.ReplaceAllString(query, "$1, ...")
	query = valuesRowsRegex.ReplaceAllString(query, "$1, ...")
	if len(query) <= maxTracedQueryLength {
		return query
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}
