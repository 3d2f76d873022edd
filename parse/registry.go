package parse

import (
	"regexp"
	"strings"

	"github.com/ttys0dev/juriscraper"
)

var _ juriscraper.ShortDescriptionRegistry = (*Registry)(nil)

// Registry is a closed dispatch table of per-court bankruptcy subject-line
// grammars. It is populated at startup and read-only afterwards, so
// parallel parses can share one instance.
type Registry struct {
	rules map[string]juriscraper.ShortDescriptionRule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]juriscraper.ShortDescriptionRule)}
}

// NewShortDescriptionRegistry creates a Registry preloaded with every
// court whose subject grammar has a known example.
func NewShortDescriptionRegistry() *Registry {
	r := NewRegistry()
	for _, court := range []string{"cacb", "ctb", "cob"} {
		r.Register(court, afterDocketNumberRule)
	}
	r.Register("njb", trailingSegmentRule)
	r.Register("nysb", chapterMarkerRule)
	r.Register("pawb", afterCaseNameRule)
	return r
}

// Derive applies the rule registered for courtID.
func (r *Registry) Derive(courtID, subject, docketNumber, caseName string) (string, bool) {
	rule, ok := r.rules[courtID]
	if !ok {
		return "", false
	}
	return rule(subject, docketNumber, caseName), true
}

// Register adds a rule for a court. An existing rule is replaced.
func (r *Registry) Register(courtID string, rule juriscraper.ShortDescriptionRule) {
	r.rules[courtID] = rule
}

// List returns all registered court ids.
func (r *Registry) List() []string {
	courts := make([]string, 0, len(r.rules))
	for c := range r.rules {
		courts = append(courts, c)
	}
	return courts
}

// docketTraceRe strips the judge-initials trace ("-SY ") a docket number
// split leaves behind.
var docketTraceRe = regexp.MustCompile(`^-.*?\s`)

// chapterRe matches chapter markers like "Ch13".
var chapterRe = regexp.MustCompile(`\bCh\d+\b`)

func splitAfter(s, sep string) string {
	if sep == "" {
		return s
	}
	parts := strings.Split(s, sep)
	return parts[len(parts)-1]
}

func splitBefore(s, sep string) string {
	if sep == "" {
		return s
	}
	return strings.Split(s, sep)[0]
}

// afterDocketNumberRule handles subjects shaped like
// "6:22-bk-13643-SY Request for courtesy Notice of Electronic Filing (NEF)":
// the label is everything after the docket number, minus number traces.
func afterDocketNumberRule(subject, docketNumber, _ string) string {
	short := splitAfter(subject, docketNumber)
	return docketTraceRe.ReplaceAllString(short, "")
}

// trailingSegmentRule handles subjects shaped like
// "Ch-11 19-27439-MBK Determination of Adjournment Request - Hollister
// Construc": like afterDocketNumberRule, but a trailing dash-delimited
// segment repeats the case name and is dropped.
func trailingSegmentRule(subject, docketNumber, _ string) string {
	short := splitAfter(subject, docketNumber)
	if i := strings.LastIndex(short, "-"); i >= 0 {
		short = short[:i]
	}
	return docketTraceRe.ReplaceAllString(short, "")
}

// chapterMarkerRule handles subjects shaped like
// "22-22507-cgm Ch13 Affidavit Re: Gerasimos Stefanitsis": the label sits
// between the docket number with its chapter marker and a "Re:" case name.
func chapterMarkerRule(subject, docketNumber, caseName string) string {
	short := splitBefore(subject, caseName)
	short = strings.ReplaceAll(short, "Re:", "")
	short = splitAfter(short, docketNumber)
	short = chapterRe.ReplaceAllString(short, "")
	return docketTraceRe.ReplaceAllString(short, "")
}

// afterCaseNameRule handles subjects shaped like
// "Ch-7 22-20823-GLT U LOCK INC Reply": the label trails the case name.
func afterCaseNameRule(subject, _, caseName string) string {
	return splitAfter(subject, caseName)
}
