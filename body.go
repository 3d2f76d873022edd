package juriscraper

// Body answers structural queries over a decoded notification body. Two
// implementations exist: an HTML document tree (goquery package) and a
// plain text scanner (plaintext package). The parsing engine is written
// once against this capability interface, so the HTML-vs-plain duplication
// of every extraction step lives behind it rather than at the call sites.
type Body interface {
	// Text returns the text content of the whole message.
	Text() string

	// Contains reports whether the message text contains marker.
	Contains(marker string) bool

	// DocketBlocks returns one block per docket structural anchor found in
	// the message: innermost tables containing "Case Name:" for HTML, the
	// single body for plain text.
	DocketBlocks() []DocketBlock

	// AttachmentCount counts the per-document "Document description:"
	// markers used to detect notifications carrying multiple associated
	// documents.
	AttachmentCount() int

	// FooterDescription returns the text following the
	// "Document Description:" label in the NDA footer, or "".
	FooterDescription() string

	// RecipientLines returns the raw lines of the notified-parties section
	// and whether that section embeds hyperlinks.
	RecipientLines(appellate bool) (lines []string, hasLinks bool)

	// RecipientBlockText returns the full text of the notified-parties
	// block for token-based recipient extraction.
	RecipientBlockText(appellate bool) string
}

// DocketBlock answers queries scoped to a single docket's region of the
// message.
type DocketBlock interface {
	// CaseNames returns the raw case name candidates found in the block.
	// HTML blocks resolve their label-sibling and nested-paragraph
	// fallbacks internally and return at most one candidate; plain text
	// returns one candidate per "Case Name:" line, so more than one
	// candidate signals an unsupported multi-docket plain text message.
	CaseNames() []string

	// DocketNumberCandidates returns the raw strings that may carry the
	// docket number. Appellate case numbers are links and are returned
	// verbatim rather than as tokens to post-process.
	DocketNumberCandidates(appellate bool) []string

	// Description returns the filer's docket text. ok is false when no
	// known path yields text.
	Description(appellate bool) (description string, ok bool)

	// DocumentLink returns the URL of the referenced document, if any.
	DocumentLink(appellate bool) (href string, ok bool)

	// DocumentNumberText returns the raw text paired with the
	// "Document Number:" label, if present.
	DocumentNumberText() (text string, ok bool)

	// CaseLink returns the URL of the case link, used as a fallback source
	// for the PACER case id.
	CaseLink() (href string, ok bool)
}
