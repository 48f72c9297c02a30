package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	citationRe = regexp.MustCompile(`\[[^\]]*\]`)
	parenRe    = regexp.MustCompile(`\([^)]*\)`)
	yearRe     = regexp.MustCompile(`(?:^|[^0-9])([0-9]{4})(?:[^0-9]|$)`)
)

// stripCitations removes bracketed citation markers like "[1]" or "[note 3]".
func stripCitations(s string) string {
	return citationRe.ReplaceAllString(s, "")
}

// stripParens removes parenthetical annotations.
func stripParens(s string) string {
	return parenRe.ReplaceAllString(s, "")
}

// trimEdges removes stray commas and spaces left at either end after cleanup.
func trimEdges(s string) string {
	return strings.Trim(s, ", ")
}

// normalizeList cleans a comma-separated list field (directors, countries):
// citations and parentheticals are removed, blank fragments are dropped, and
// the remainder is rejoined with ", ".
func normalizeList(s string) string {
	s = stripParens(stripCitations(s))

	var kept []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return trimEdges(strings.Join(kept, ", "))
}

// cleanMoney normalizes a box office value: citations stripped, non-breaking
// spaces replaced with ordinary spaces, thousands-separator commas removed,
// and the literal "US" qualifier dropped wherever it occurs. This is a raw
// substring removal, not a currency-aware transform.
func cleanMoney(s string) string {
	s = stripCitations(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "US", "")
	return trimEdges(s)
}

// extractYear returns the first run of exactly four consecutive digits found
// anywhere in s, or false if no such run exists.
func extractYear(s string) (int, bool) {
	m := yearRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
