// Package plaintext implements the juriscraper.Body document accessor for
// plain text notification bodies. Where the HTML accessor issues tree
// queries, this one matches line-anchored patterns against the raw text.
package plaintext

import (
	"regexp"
	"strings"

	"github.com/ttys0dev/juriscraper"
	"github.com/ttys0dev/juriscraper/strutil"
)

var _ juriscraper.Body = (*Body)(nil)

// Body is a plain text notification body.
type Body struct {
	text string
}

// NewBody wraps text in a Body.
func NewBody(text string) *Body {
	return &Body{text: text}
}

// Text returns the message text.
func (b *Body) Text() string {
	return b.text
}

// Contains reports whether the message contains marker.
func (b *Body) Contains(marker string) bool {
	return strings.Contains(b.text, marker)
}

// DocketBlocks returns a single block covering the whole body. Plain text
// notifications carry one docket; a second "Case Name:" line inside the
// block signals an unsupported shape and is surfaced through CaseNames.
func (b *Body) DocketBlocks() []juriscraper.DocketBlock {
	return []juriscraper.DocketBlock{&docketBlock{text: b.text}}
}

var attachmentsRe = regexp.MustCompile(`(?s)The following document\(s\) are associated with this transaction:(.*?)(?:electronically mailed to:|$)`)

// AttachmentCount counts "Document description:" lines inside the
// associated-documents section.
func (b *Body) AttachmentCount() int {
	m := attachmentsRe.FindStringSubmatch(b.text)
	if m == nil {
		return 0
	}
	count := 0
	for _, line := range strings.Split(m[1], "\n") {
		if strings.Contains(line, "Document description:") {
			count++
		}
	}
	return count
}

// FooterDescription returns "". The footer label only appears in HTML
// NDAs.
func (b *Body) FooterDescription() string {
	return ""
}

const mailedToPlain = "Notice has been electronically mailed to:"

// RecipientLines returns every line after the notified-parties marker.
// Plain text recipient sections never embed hyperlinks.
func (b *Body) RecipientLines(bool) ([]string, bool) {
	_, rest, found := strings.Cut(b.text, mailedToPlain)
	if !found {
		return nil, false
	}
	return strings.Split(rest, "\n"), false
}

// RecipientBlockText returns the notified-parties section as one string.
func (b *Body) RecipientBlockText(bool) string {
	_, rest, found := strings.Cut(b.text, mailedToPlain)
	if !found {
		return ""
	}
	return rest
}

var _ juriscraper.DocketBlock = (*docketBlock)(nil)

type docketBlock struct {
	text string
}

var (
	caseNameRe     = regexp.MustCompile(`Case Name:(.*)`)
	caseNumberRe   = regexp.MustCompile(`Case Number:(.*)`)
	descriptionRe  = regexp.MustCompile(`(?s)Docket Text:(.*?)(?:The following document|electronically mailed to:)`)
	documentURLRe  = regexp.MustCompile(`view the document:[\r\n\s]+([^\r\n]+)`)
	documentNumRe  = regexp.MustCompile(`Document Number:(.*)`)
	caseURLRe      = regexp.MustCompile(`Case Number: .*? (https?://\S+)`)
	noticeHasBeen  = "Notice has been"
)

// CaseNames returns one candidate per "Case Name:" line. More than one
// means a multi-docket plain text message, which the extractor rejects.
func (d *docketBlock) CaseNames() []string {
	var names []string
	for _, m := range caseNameRe.FindAllStringSubmatch(d.text, -1) {
		names = append(names, m[1])
	}
	return names
}

// DocketNumberCandidates returns the remainder of every "Case Number:"
// line.
func (d *docketBlock) DocketNumberCandidates(bool) []string {
	var numbers []string
	for _, m := range caseNumberRe.FindAllStringSubmatch(d.text, -1) {
		numbers = append(numbers, m[1])
	}
	return numbers
}

// Description captures everything between "Docket Text:" and the first
// boundary marker, truncating early at transaction notice lines.
func (d *docketBlock) Description(bool) (string, bool) {
	m := descriptionRe.FindStringSubmatch(d.text)
	if m == nil {
		return "", false
	}
	var sb strings.Builder
	for _, line := range strings.Split(m[1], "\n") {
		if strings.Contains(line, noticeHasBeen) {
			break
		}
		sb.WriteString(" ")
		sb.WriteString(line)
	}
	if desc := strutil.Clean(sb.String()); desc != "" {
		return desc, true
	}
	return "", false
}

// DocumentLink captures the URL announced by the "view the document:"
// marker.
func (d *docketBlock) DocumentLink(bool) (string, bool) {
	m := documentURLRe.FindStringSubmatch(d.text)
	if m == nil {
		return "", false
	}
	url := strings.TrimSpace(m[1])
	return url, url != ""
}

// DocumentNumberText returns the remainder of the "Document Number:" line.
func (d *docketBlock) DocumentNumberText() (string, bool) {
	m := documentNumRe.FindStringSubmatch(d.text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CaseLink captures a URL embedded on the "Case Number:" segment.
func (d *docketBlock) CaseLink() (string, bool) {
	m := caseURLRe.FindStringSubmatch(d.text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
