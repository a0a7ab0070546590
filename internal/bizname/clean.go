// Package bizname extracts display-ready business names from raw bank
// account metadata. All functions are pure and deterministic.
package bizname

import (
	"regexp"
	"strings"
	"unicode"
)

// UnknownBusiness is returned when no name can be derived at all.
const UnknownBusiness = "Unknown Business"

// boilerplate lists banking terms stripped from raw account names, in
// order. Multi-word phrases come before their constituent words so a
// partial removal cannot leave stray fragments behind.
var boilerplate = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcurrent\s+account\b`),
	regexp.MustCompile(`(?i)\bbusiness\s+account\b`),
	regexp.MustCompile(`(?i)\bsavings\s+account\b`),
	regexp.MustCompile(`(?i)\bchecking\s+account\b`),
	regexp.MustCompile(`(?i)\bcompany\s+account\b`),
	regexp.MustCompile(`(?i)\baccount\b`),
	regexp.MustCompile(`(?i)\bcurrent\b`),
	regexp.MustCompile(`(?i)\bsavings\b`),
	regexp.MustCompile(`(?i)\bchecking\b`),
	regexp.MustCompile(`(?i)\bbusiness\b`),
	regexp.MustCompile(`(?i)\bbus\b`),
	regexp.MustCompile(`(?i)\bcurr\b`),
	regexp.MustCompile(`(?i)\bacc\b`),
	regexp.MustCompile(`(?i)\bltd\s+current\b`),
	regexp.MustCompile(`(?i)\bltd\s+business\b`),
	regexp.MustCompile(`(?i)\blimited\s+current\b`),
	regexp.MustCompile(`(?i)\blimited\s+business\b`),
	regexp.MustCompile(`-\s*\d+\b`),    // trailing numeric suffixes: "- 1234"
	regexp.MustCompile(`\(\d+\)`),      // parenthesized numeric codes
	regexp.MustCompile(`\[\d+\]`),      // bracketed numeric codes
	regexp.MustCompile(`\b\d{8,}\b`),   // account numbers
	regexp.MustCompile(`(?i)\bsort\s*code\b`),
	regexp.MustCompile(`(?i)\biban\b`),
	regexp.MustCompile(`(?i)\bswift\b`),
}

var (
	separators = regexp.MustCompile(`[_\-]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

const edgePunctuation = " .,;:()[]{}"

// Clean strips banking boilerplate from a raw account name and
// title-cases the remainder. When cleaning leaves fewer than two
// characters, a capitalized copy of the original input is returned
// instead, so a poor extraction still shows something recognizable.
func Clean(raw string) string {
	if raw == "" {
		return UnknownBusiness
	}

	name := strings.TrimSpace(raw)
	for _, re := range boilerplate {
		name = re.ReplaceAllString(name, "")
	}

	name = separators.ReplaceAllString(name, " ")
	name = whitespace.ReplaceAllString(name, " ")
	name = strings.Trim(name, edgePunctuation)
	name = capitalizeWords(name)

	if len(name) < 2 {
		return capitalizeWords(strings.TrimSpace(raw))
	}
	return name
}

// capitalizeWords upper-cases the first letter of each word and
// lower-cases the rest, collapsing runs of whitespace.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
