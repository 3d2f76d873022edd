// Package parse implements the notification parsing engine: content
// classification, docket and docket entry extraction, short description
// derivation, and recipient extraction. The engine is written once against
// the juriscraper.Body capability interface; the goquery and plaintext
// packages supply the content-type-specific implementations.
package parse

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ttys0dev/juriscraper"
	gq "github.com/ttys0dev/juriscraper/goquery"
	"github.com/ttys0dev/juriscraper/pacer"
	"github.com/ttys0dev/juriscraper/plaintext"
	"github.com/ttys0dev/juriscraper/strutil"
)

// Appellate notifications announce themselves with this marker phrase.
const appellateMarker = "Notice of Docket Activity"

// Courts send other mail through the same system: claims filing notices,
// CM/ECF announcements, hearing invitations, and docket corrections. Any
// of these markers means the message carries no filing to record.
var invalidContentMarkers = []string{
	"Notice of Electronic Claims Filing",
	"This is an announcement e-mail message generated by Court action through the CM/ECF system.",
	"Join ZoomGov Meeting",
	"Modified Dkt text from",
	"Modified Date Filed from",
	"Added Correct PDF to document",
}

// Parser parses decoded notification messages. It is stateless across
// invocations and safe for concurrent use; every parse carries its own
// context value.
type Parser struct {
	registry juriscraper.ShortDescriptionRegistry
	ids      juriscraper.IDDecoder
	logger   *slog.Logger
}

// New creates a Parser. A nil registry falls back to the default
// bankruptcy rule registry, a nil decoder to the PACER URL decoder, and a
// nil logger to slog's default.
func New(registry juriscraper.ShortDescriptionRegistry, ids juriscraper.IDDecoder, logger *slog.Logger) *Parser {
	if registry == nil {
		registry = NewShortDescriptionRegistry()
	}
	if ids == nil {
		ids = pacer.NewDecoder()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{registry: registry, ids: ids, logger: logger}
}

// parseContext holds the per-message intermediate state threaded through
// the extraction calls: the cleaned but pre-harmonized case names and the
// docket numbers seen so far, used to disambiguate short description
// matching across multiple dockets in the same message.
type parseContext struct {
	msg  *juriscraper.Message
	body juriscraper.Body

	appellate  bool
	bankruptcy bool

	caseNames     []string
	docketNumbers []string
}

// ParseMessage builds the content-type-appropriate Body for msg and parses
// it. A nil Notification with a nil error means the message was invalid
// (image attachment, or a body that could not be interpreted) and holds no
// filing data.
func (p *Parser) ParseMessage(msg *juriscraper.Message) (*juriscraper.Notification, error) {
	var body juriscraper.Body
	switch msg.ContentType {
	case juriscraper.ContentTypePlain:
		body = plaintext.NewBody(msg.Body)
	default:
		b, err := gq.NewBody(msg.Body)
		if err != nil {
			return nil, nil
		}
		body = b
	}
	return p.Parse(msg, body)
}

// Parse extracts a Notification from msg using the given body accessor.
// Fatal errors abort only the current message and always name the court.
func (p *Parser) Parse(msg *juriscraper.Message, body juriscraper.Body) (*juriscraper.Notification, error) {
	if msg.ImageAttached || body == nil {
		return nil, nil
	}
	for _, marker := range invalidContentMarkers {
		if body.Contains(marker) {
			return nil, nil
		}
	}

	ctx := &parseContext{
		msg:        msg,
		body:       body,
		appellate:  body.Contains(appellateMarker),
		bankruptcy: strings.HasSuffix(msg.CourtID, "b"),
	}

	dockets, err := p.dockets(ctx)
	if err != nil {
		return nil, err
	}

	return &juriscraper.Notification{
		CourtID:             msg.CourtID,
		Appellate:           ctx.appellate,
		Bankruptcy:          ctx.bankruptcy,
		ContentType:         msg.ContentType,
		ContainsAttachments: body.AttachmentCount() > 1,
		EmailRecipients:     p.recipients(ctx),
		Dockets:             dockets,
	}, nil
}

// dockets extracts one Docket per structural anchor in the message.
func (p *Parser) dockets(ctx *parseContext) ([]juriscraper.Docket, error) {
	blocks := ctx.body.DocketBlocks()
	if ctx.appellate && len(blocks) > 1 {
		return nil, juriscraper.Errorf(juriscraper.ENOTIMPLEMENTED,
			"received a potential multi-docket appellate notification, court: %s", ctx.msg.CourtID)
	}

	var dockets []juriscraper.Docket
	for _, block := range blocks {
		docket, err := p.docket(ctx, block)
		if err != nil {
			return nil, err
		}
		dockets = append(dockets, *docket)
	}

	if len(dockets) > 1 {
		// In multi-docket NEFs the subject only describes the first item,
		// so it replaces every docket's entry-level derivation.
		short := p.shortDescription(ctx)
		for i := range dockets {
			if len(dockets[i].DocketEntries) > 0 {
				dockets[i].DocketEntries[0].ShortDescription = short
			}
		}
	}
	return dockets, nil
}

func (p *Parser) docket(ctx *parseContext, block juriscraper.DocketBlock) (*juriscraper.Docket, error) {
	number := p.docketNumber(ctx, block)
	ctx.docketNumbers = append(ctx.docketNumbers, number)

	caseName, err := p.caseName(ctx, block)
	if err != nil {
		return nil, err
	}

	entries, err := p.docketEntries(ctx, block)
	if err != nil {
		return nil, err
	}

	return &juriscraper.Docket{
		CaseName:      caseName,
		DocketNumber:  number,
		DocketEntries: entries,
	}, nil
}

// caseName resolves the docket's case name, caching the cleaned
// pre-harmonized value for short description matching.
func (p *Parser) caseName(ctx *parseContext, block juriscraper.DocketBlock) (string, error) {
	candidates := block.CaseNames()
	if len(candidates) > 1 {
		return "", juriscraper.Errorf(juriscraper.ENOTIMPLEMENTED,
			"received a potential multi-docket %s notification, court: %s",
			ctx.msg.ContentType, ctx.msg.CourtID)
	}

	raw := juriscraper.UnknownCaseTitle
	if len(candidates) == 1 && strutil.Clean(candidates[0]) != "" {
		raw = candidates[0]
	}
	ctx.caseNames = append(ctx.caseNames, strutil.Clean(raw))
	return strutil.Clean(strutil.Harmonize(raw)), nil
}

// docketNumber resolves the docket number. Appellate case numbers are
// anchor text kept verbatim; NEF numbers go through the docket number
// parser.
func (p *Parser) docketNumber(ctx *parseContext, block juriscraper.DocketBlock) string {
	candidates := block.DocketNumberCandidates(ctx.appellate)
	if ctx.appellate {
		if len(candidates) == 0 {
			return ""
		}
		return strutil.Clean(candidates[0])
	}
	return strutil.ParseDocketNumbers(candidates)
}

// docketEntries extracts the docket's single entry: one notification
// event, one filed-document entry.
func (p *Parser) docketEntries(ctx *parseContext, block juriscraper.DocketBlock) ([]juriscraper.DocketEntry, error) {
	description, ok := block.Description(ctx.appellate)
	if !ok {
		return nil, juriscraper.Errorf(juriscraper.EINVALID,
			"can't get docket entry description, court: %s", ctx.msg.CourtID)
	}

	dateFiled, err := p.dateFiled(ctx)
	if err != nil {
		return nil, err
	}

	entry := juriscraper.DocketEntry{
		DateFiled:        dateFiled,
		Description:      description,
		ShortDescription: p.shortDescription(ctx),
	}

	if !ctx.appellate {
		if raw, ok := block.DocumentNumberText(); ok {
			if number := normalizeDocumentNumber(raw); number != "" {
				entry.DocumentNumber = &number
			}
		}
	}

	if docURL, ok := block.DocumentLink(ctx.appellate); ok {
		entry.DocumentURL = &docURL
		if id, ok := p.ids.DocID(docURL); ok {
			entry.PacerDocID = &id
		}
		if magic, ok := p.ids.MagicNum(docURL, ctx.appellate); ok {
			entry.PacerMagicNum = &magic
		}
		if !ctx.appellate {
			if id, ok := p.ids.CaseID(docURL); ok {
				entry.PacerCaseID = &id
			}
			if seq, ok := p.ids.SeqNo(docURL); ok {
				entry.PacerSeqNo = &seq
			}
		}
	}

	// Fall back on the case link for the case id.
	if entry.PacerCaseID == nil {
		if caseURL, ok := block.CaseLink(); ok {
			if id, ok := p.ids.CaseIDFromCaseURL(caseURL, ctx.appellate); ok {
				entry.PacerCaseID = &id
			}
		}
	}

	return []juriscraper.DocketEntry{entry}, nil
}

var dateFiledRe = regexp.MustCompile(`filed on ([\d/]+)`)

// dateFiled locates the filing date announced in the message text. A
// notification always states one; its absence is fatal.
func (p *Parser) dateFiled(ctx *parseContext) (time.Time, error) {
	m := dateFiledRe.FindStringSubmatch(strutil.Clean(ctx.body.Text()))
	if m == nil {
		return time.Time{}, juriscraper.Errorf(juriscraper.EINVALID,
			"can't get docket entry filing date, court: %s", ctx.msg.CourtID)
	}
	date, err := strutil.ParseDate(m[1])
	if err != nil {
		return time.Time{}, juriscraper.Errorf(juriscraper.EINVALID,
			"can't convert filing date %q, court: %s", m[1], ctx.msg.CourtID)
	}
	return date, nil
}

// Document number sentinels that mean "no usable number". The literal
// token "doc" leaks out of some courts' markup and is not a valid number.
var documentNumberSplitRe = regexp.MustCompile(`\(|\s`)

func normalizeDocumentNumber(raw string) string {
	text := strutil.Clean(raw)
	if text == "" || text == "No document attached" {
		return ""
	}
	words := documentNumberSplitRe.Split(text, -1)
	if len(words) == 0 || words[0] == "doc" {
		return ""
	}
	return words[0]
}
