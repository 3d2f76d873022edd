package mock

import "github.com/ttys0dev/juriscraper"

var _ juriscraper.ShortDescriptionRegistry = (*ShortDescriptionRegistry)(nil)

// ShortDescriptionRegistry is a mock implementation of
// juriscraper.ShortDescriptionRegistry.
type ShortDescriptionRegistry struct {
	DeriveFn   func(courtID, subject, docketNumber, caseName string) (string, bool)
	RegisterFn func(courtID string, rule juriscraper.ShortDescriptionRule)
	ListFn     func() []string
}

func (r *ShortDescriptionRegistry) Derive(courtID, subject, docketNumber, caseName string) (string, bool) {
	return r.DeriveFn(courtID, subject, docketNumber, caseName)
}

func (r *ShortDescriptionRegistry) Register(courtID string, rule juriscraper.ShortDescriptionRule) {
	r.RegisterFn(courtID, rule)
}

func (r *ShortDescriptionRegistry) List() []string {
	return r.ListFn()
}

var _ juriscraper.IDDecoder = (*IDDecoder)(nil)

// IDDecoder is a mock implementation of juriscraper.IDDecoder.
type IDDecoder struct {
	DocIDFn             func(docURL string) (string, bool)
	CaseIDFn            func(docURL string) (string, bool)
	SeqNoFn             func(docURL string) (string, bool)
	MagicNumFn          func(docURL string, appellate bool) (string, bool)
	CaseIDFromCaseURLFn func(caseURL string, appellate bool) (string, bool)
}

func (d *IDDecoder) DocID(docURL string) (string, bool) {
	return d.DocIDFn(docURL)
}

func (d *IDDecoder) CaseID(docURL string) (string, bool) {
	return d.CaseIDFn(docURL)
}

func (d *IDDecoder) SeqNo(docURL string) (string, bool) {
	return d.SeqNoFn(docURL)
}

func (d *IDDecoder) MagicNum(docURL string, appellate bool) (string, bool) {
	return d.MagicNumFn(docURL, appellate)
}

func (d *IDDecoder) CaseIDFromCaseURL(caseURL string, appellate bool) (string, bool) {
	return d.CaseIDFromCaseURLFn(caseURL, appellate)
}
