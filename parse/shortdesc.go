package parse

import (
	"regexp"
	"strings"

	"github.com/ttys0dev/juriscraper/strutil"
)

// shortDescription derives the concise document label for the entry from
// the subject line (or, for appellate messages, the footer), dispatching
// on the notification category.
func (p *Parser) shortDescription(ctx *parseContext) string {
	if ctx.msg.Subject == "" {
		return ""
	}
	subject := strutil.Clean(ctx.msg.Subject)

	// The subject references only one of the case names seen in the
	// message; find the one that actually divides it.
	parts := []string{subject}
	for _, caseName := range ctx.caseNames {
		if caseName == "" {
			continue
		}
		parts = strings.Split(subject, caseName)
		if len(parts) > 1 {
			break
		}
	}

	var short string
	switch {
	case ctx.appellate:
		short = p.appellateShortDescription(ctx, parts[len(parts)-1])
	case ctx.bankruptcy:
		short = p.bankruptcyShortDescription(ctx, subject)
	default:
		// District subjects read "Activity in Case <number> <case name>
		// <label>"; the label is whatever trails the case name.
		short = strings.TrimSpace(parts[len(parts)-1])
	}
	return strutil.Clean(short)
}

var quotedRe = regexp.MustCompile(`"(.*?)"`)

// appellateShortDescription computes two independent candidates, the
// footer's "Document Description:" text and the first double-quoted
// substring after the case name in the subject, and keeps the longer one.
func (p *Parser) appellateShortDescription(ctx *parseContext, subjectTail string) string {
	footer := strings.TrimSpace(ctx.body.FooterDescription())
	// Underscores render names like Defective_Document_Notice.
	footer = strings.ReplaceAll(footer, "_", " ")
	// A footer that only says "Main document" carries no information.
	if footer == "Main document" {
		footer = ""
	}

	var fromSubject string
	if m := quotedRe.FindStringSubmatch(subjectTail); m != nil {
		fromSubject = m[1]
	}

	if len(fromSubject) >= len(footer) {
		return fromSubject
	}
	return footer
}

// bankruptcyShortDescription dispatches on the per-court rule registry.
// Multi-docket bankruptcy subjects have no known grammar yet and degrade
// to an empty label with a diagnosable warning.
func (p *Parser) bankruptcyShortDescription(ctx *parseContext, subject string) string {
	if len(ctx.docketNumbers) > 1 {
		p.logger.Error("not parsing short description for bankruptcy multi-docket notification",
			"court", ctx.msg.CourtID,
			"fingerprint", ctx.msg.CourtID+"-not-parsing-multi-docket-short-description",
		)
		return ""
	}
	if len(ctx.docketNumbers) == 0 || len(ctx.caseNames) == 0 {
		return ""
	}
	short, ok := p.registry.Derive(ctx.msg.CourtID, subject, ctx.docketNumbers[0], ctx.caseNames[0])
	if !ok {
		return ""
	}
	return short
}
