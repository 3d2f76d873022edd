// Package goquery implements the juriscraper.Body document accessor for
// HTML notification bodies. Label lookups run against the parsed tree via
// goquery selections; queries that need XPath-style document-order axes
// ("following", sibling text nodes) walk the underlying x/net/html nodes
// directly.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ttys0dev/juriscraper"
	"github.com/ttys0dev/juriscraper/strutil"
)

var _ juriscraper.Body = (*Body)(nil)

// Body is an HTML notification body.
type Body struct {
	doc *goquery.Document
}

// NewBody parses src into a Body. A parse failure means the message is not
// a usable notification.
func NewBody(src string) (*Body, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return &Body{doc: doc}, nil
}

// Text returns the text content of the whole message.
func (b *Body) Text() string {
	return b.doc.Text()
}

// Contains reports whether the message text contains marker.
func (b *Body) Contains(marker string) bool {
	return strings.Contains(b.Text(), marker)
}

// DocketBlocks returns one block per innermost table containing the
// "Case Name:" label. Outer layout tables that merely wrap a docket table
// are skipped so each docket is counted once.
func (b *Body) DocketBlocks() []juriscraper.DocketBlock {
	var blocks []juriscraper.DocketBlock
	b.doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		if !strings.Contains(s.Text(), "Case Name:") {
			return
		}
		inner := s.Find("table").FilterFunction(func(_ int, t *goquery.Selection) bool {
			return strings.Contains(t.Text(), "Case Name:")
		})
		if inner.Length() > 0 {
			return
		}
		if len(s.Nodes) == 0 {
			return
		}
		blocks = append(blocks, &docketBlock{table: s.Nodes[0]})
	})
	return blocks
}

// AttachmentCount counts the per-document "Document description:" markers.
func (b *Body) AttachmentCount() int {
	if len(b.doc.Nodes) == 0 {
		return 0
	}
	nodes := findAll(b.doc.Nodes[0], func(n *html.Node) bool {
		return isElement(n, "strong") && strings.Contains(collectText(n), "Document description:")
	})
	return len(nodes)
}

// FooterDescription returns the text node following the
// "Document Description:" label in the NDA footer.
func (b *Body) FooterDescription() string {
	if len(b.doc.Nodes) == 0 {
		return ""
	}
	labels := findAll(b.doc.Nodes[0], func(n *html.Node) bool {
		return isElement(n, "strong") && strings.Contains(collectText(n), "Document Description:")
	})
	for _, label := range labels {
		for sib := label.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type == html.TextNode {
				return sib.Data
			}
		}
	}
	return ""
}

// Recipient section markers. District and bankruptcy NEFs use a bold
// "has been" heading; NDAs and some NEF variants use "will be".
const (
	mailedToNEF         = "Notice has been electronically mailed to"
	mailedToAlternative = "Notice will be electronically mailed to"
)

// recipientMarkers returns the candidate heading nodes that open the
// notified-parties section, most specific first.
func (b *Body) recipientMarkers(appellate bool) []*html.Node {
	if len(b.doc.Nodes) == 0 {
		return nil
	}
	root := b.doc.Nodes[0]
	if appellate {
		return findAll(root, func(n *html.Node) bool {
			return isElement(n, "strong") && strings.Contains(collectText(n), mailedToAlternative)
		})
	}
	markers := findAll(root, func(n *html.Node) bool {
		return isElement(n, "b") && strings.Contains(collectText(n), mailedToNEF)
	})
	fallback := findAll(root, func(n *html.Node) bool {
		return isElement(n, "b") && strings.Contains(collectText(n), mailedToAlternative)
	})
	return append(markers, fallback...)
}

// RecipientLines returns the physical lines of the text node siblings
// following the notified-parties heading, and whether anchor siblings are
// present.
func (b *Body) RecipientLines(appellate bool) ([]string, bool) {
	for _, marker := range b.recipientMarkers(appellate) {
		var lines []string
		hasLinks := false
		for sib := marker.NextSibling; sib != nil; sib = sib.NextSibling {
			switch {
			case sib.Type == html.TextNode:
				for _, line := range strings.Split(sib.Data, "\n") {
					if strings.TrimSpace(line) != "" {
						lines = append(lines, line)
					}
				}
			case isElement(sib, "a"):
				hasLinks = true
			}
		}
		if len(lines) > 0 || hasLinks {
			return lines, hasLinks && !appellate
		}
	}
	return nil, false
}

// RecipientBlockText returns the full text of the notified-parties block
// (the heading's parent node).
func (b *Body) RecipientBlockText(appellate bool) string {
	for _, marker := range b.recipientMarkers(appellate) {
		if marker.Parent != nil {
			return collectText(marker.Parent)
		}
	}
	return ""
}

var _ juriscraper.DocketBlock = (*docketBlock)(nil)

// docketBlock scopes queries to a single docket table.
type docketBlock struct {
	table *html.Node
}

// labelSibling returns the value cell that follows the cell containing the
// given label, mirroring the key: value table layout of NEFs and NDAs.
func (d *docketBlock) labelSibling(label string) *html.Node {
	cells := findAll(d.table, func(n *html.Node) bool {
		return isElement(n, "td") && strings.Contains(collectText(n), label+":")
	})
	for _, cell := range cells {
		for sib := cell.NextSibling; sib != nil; sib = sib.NextSibling {
			if isElement(sib, "td") {
				return sib
			}
		}
	}
	return nil
}

// CaseNames returns at most one candidate: the value cell's own text,
// falling back to a nested paragraph when the direct lookup is empty.
func (d *docketBlock) CaseNames() []string {
	cell := d.labelSibling("Case Name")
	if cell == nil {
		return nil
	}
	if name := ownText(cell); strutil.Clean(name) != "" {
		return []string{name}
	}
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, "p") {
			if name := collectText(c); strutil.Clean(name) != "" {
				return []string{name}
			}
		}
	}
	if name := collectText(cell); strutil.Clean(name) != "" {
		return []string{name}
	}
	return nil
}

// DocketNumberCandidates returns the anchor texts under the "Case Number:"
// value cell. Appellate case numbers are links whose text is the number
// itself, so the first anchor is returned verbatim.
func (d *docketBlock) DocketNumberCandidates(appellate bool) []string {
	cell := d.labelSibling("Case Number")
	if cell == nil {
		return nil
	}
	if appellate {
		anchors := findAll(cell, func(n *html.Node) bool { return isElement(n, "a") })
		if len(anchors) == 0 {
			return nil
		}
		return []string{collectText(anchors[0])}
	}
	var texts []string
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, "a") {
			texts = append(texts, collectText(c))
		}
	}
	if len(texts) == 0 {
		for c := cell.FirstChild; c != nil; c = c.NextSibling {
			if !isElement(c, "p") {
				continue
			}
			for _, a := range findAll(c, func(n *html.Node) bool { return isElement(n, "a") }) {
				texts = append(texts, collectText(a))
			}
		}
	}
	return texts
}

// docketTextMarker locates the first "Docket Text:" heading following the
// docket table in document order.
func (d *docketBlock) docketTextMarker() *html.Node {
	return findFollowing(d.table, func(n *html.Node) bool {
		return isElement(n, "strong") && strings.Contains(collectText(n), "Docket Text:")
	})
}

// Description tries a fixed ordered list of text-bearing paths under the
// "Docket Text:" marker until one yields non-empty text. NDAs instead take
// everything following the marker up to the notified-parties boundary.
func (d *docketBlock) Description(appellate bool) (string, bool) {
	marker := d.docketTextMarker()
	if marker == nil {
		return "", false
	}
	if appellate {
		return d.appellateDescription(marker)
	}
	p := marker.Parent
	if p == nil {
		return "", false
	}
	for _, candidate := range []string{
		firstChildDescendantText(p, "font", "b"),
		firstChildDescendantText(p, "b", "span"),
		ownText(p),
		followingFontText(marker),
	} {
		if desc := strutil.Clean(candidate); desc != "" {
			return desc, true
		}
	}
	return "", false
}

// appellateDescription collects text following the marker until the
// notified-parties boundary terminates collection.
func (d *docketBlock) appellateDescription(marker *html.Node) (string, bool) {
	var sb strings.Builder
	following(marker, func(n *html.Node) bool {
		if n.Type != html.TextNode {
			return true
		}
		if strings.Contains(n.Data, mailedToAlternative) {
			return false
		}
		sb.WriteString(n.Data)
		return true
	})
	if desc := strutil.Clean(sb.String()); desc != "" {
		return desc, true
	}
	return "", false
}

// firstChildDescendantText returns the text of all descendants with the
// inner tag under the first child element with the outer tag.
func firstChildDescendantText(p *html.Node, outer, inner string) string {
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if !isElement(c, outer) {
			continue
		}
		var sb strings.Builder
		for _, n := range findAll(c, func(n *html.Node) bool { return isElement(n, inner) }) {
			sb.WriteString(collectText(n))
		}
		return sb.String()
	}
	return ""
}

// followingFontText concatenates the text of every font element with
// face="arial,helvetica" following the marker; some courts put the docket
// text there instead of inside the marker's paragraph.
func followingFontText(marker *html.Node) string {
	var sb strings.Builder
	following(marker, func(n *html.Node) bool {
		if isElement(n, "font") && attr(n, "face") == "arial,helvetica" {
			sb.WriteString(collectText(n))
		}
		return true
	})
	return sb.String()
}

// DocumentLink returns the href of the anchor under the document label's
// value cell.
func (d *docketBlock) DocumentLink(appellate bool) (string, bool) {
	label := "Document Number"
	if appellate {
		label = "Document(s)"
	}
	cell := d.labelSibling(label)
	if cell == nil {
		return "", false
	}
	anchors := findAll(cell, func(n *html.Node) bool { return isElement(n, "a") })
	if len(anchors) == 0 {
		return "", false
	}
	href := attr(anchors[0], "href")
	return href, href != ""
}

// DocumentNumberText returns the raw text of the "Document Number:" value
// cell.
func (d *docketBlock) DocumentNumberText() (string, bool) {
	cell := d.labelSibling("Document Number")
	if cell == nil {
		return "", false
	}
	return collectText(cell), true
}

// CaseLink returns the href of the anchor under the "Case Number:" value
// cell.
func (d *docketBlock) CaseLink() (string, bool) {
	cell := d.labelSibling("Case Number")
	if cell == nil {
		return "", false
	}
	anchors := findAll(cell, func(n *html.Node) bool { return isElement(n, "a") })
	if len(anchors) == 0 {
		return "", false
	}
	href := attr(anchors[0], "href")
	return href, href != ""
}
