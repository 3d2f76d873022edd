// Package strutil provides the string cleaning and normalization helpers
// shared by the notification extractors: whitespace collapsing, case name
// harmonization, docket number recognition, and tolerant date conversion.
package strutil

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Versus tokens that courts render inconsistently: "v", "v.", "vs",
	// "vs.", "V.", "VS." and so on.
	versusRe = regexp.MustCompile(`(?i)\s+v[s]?\.?\s+`)

	usaRe = regexp.MustCompile(`\bU\.?S\.?A\.?\b|\bUnited States of America\b`)
)

// Clean collapses runs of whitespace (including non-breaking spaces and
// tabs) into single spaces and trims the result.
func Clean(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "​", "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Harmonize canonicalizes a case name per domain convention: versus tokens
// become " v. ", "USA" variants become "United States", and trailing
// punctuation is dropped. It does not attempt the full normalization of a
// docket report; notification emails only need a stable display form.
func Harmonize(s string) string {
	s = Clean(s)
	s = versusRe.ReplaceAllString(s, " v. ")
	s = usaRe.ReplaceAllString(s, "United States")
	s = strings.TrimRight(s, " ,;")
	return s
}

var (
	docketNumberRe = regexp.MustCompile(`(?:\d{1,2}:)?\d\d-[a-zA-Z]{1,5}-\d{1,10}`)

	// Bankruptcy courts sometimes use bare yy-nnnnn numbers.
	bankruptcyNumberRe = regexp.MustCompile(`\d\d-\d{1,10}`)
)

// ParseDocketNumbers picks the first docket-number-shaped token out of the
// candidate strings, preferring the office:year-type-number form over the
// bare bankruptcy year-number form. Returns "" when no candidate matches.
func ParseDocketNumbers(candidates []string) string {
	for _, c := range candidates {
		if m := docketNumberRe.FindString(c); m != "" {
			return m
		}
	}
	for _, c := range candidates {
		if m := bankruptcyNumberRe.FindString(c); m != "" {
			return m
		}
	}
	return ""
}

// ParseDate converts a loosely formatted date string (e.g. "10/4/2022")
// into a time.Time.
func ParseDate(s string) (time.Time, error) {
	return dateparse.ParseAny(strings.TrimSpace(s))
}
