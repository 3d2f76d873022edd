// Package pacer decodes the identifiers PACER embeds in its document and
// case view URLs. A NEF document link looks like
//
//	https://ecf.cand.uscourts.gov/doc1/035122944127?caseid=375021&de_seq_num=13&magic_num=22908383
//
// where the path segment carries the doc id (with the fourth digit flagging
// an attachment view) and the query string carries the rest. NDA links use
// a docs1 path and a caseId query parameter on the case link instead.
package pacer

import (
	"regexp"

	"github.com/ttys0dev/juriscraper"
)

var _ juriscraper.IDDecoder = (*Decoder)(nil)

// Decoder implements juriscraper.IDDecoder with pure regexp extraction.
type Decoder struct{}

// NewDecoder returns a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

var (
	doc1Re        = regexp.MustCompile(`/docs?1/(\d+)`)
	caseIDParamRe = regexp.MustCompile(`[?&](?i:caseid)=(\d+)`)
	seqNoParamRe  = regexp.MustCompile(`[?&]de_seq_num=(\d+)`)
	magicParamRe  = regexp.MustCompile(`[?&]magic_num=(\d+)`)
	uidParamRe    = regexp.MustCompile(`[?&]uid=([0-9a-f]+)`)
	nonceRe       = regexp.MustCompile(`\?(\d+)(?:&|$)`)
)

// DocID returns the PACER document id from a doc1-style URL. The fourth
// digit selects between the document and its attachment menu, so it is
// normalized to zero.
func (d *Decoder) DocID(docURL string) (string, bool) {
	m := doc1Re.FindStringSubmatch(docURL)
	if m == nil {
		return "", false
	}
	id := []byte(m[1])
	if len(id) > 3 {
		id[3] = '0'
	}
	return string(id), true
}

// CaseID returns the PACER case id from a doc1-style URL's query string.
func (d *Decoder) CaseID(docURL string) (string, bool) {
	return firstGroup(caseIDParamRe, docURL)
}

// SeqNo returns the docket sequence number from a doc1-style URL.
func (d *Decoder) SeqNo(docURL string) (string, bool) {
	return firstGroup(seqNoParamRe, docURL)
}

// MagicNum returns the one-free-look magic number from a doc1-style URL.
// Appellate links carry it as a uid token rather than a magic_num
// parameter.
func (d *Decoder) MagicNum(docURL string, appellate bool) (string, bool) {
	if appellate {
		return firstGroup(uidParamRe, docURL)
	}
	return firstGroup(magicParamRe, docURL)
}

// CaseIDFromCaseURL returns the PACER case id from a case link. Appellate
// links carry an explicit caseId query parameter; district and bankruptcy
// links embed the id as the bare query of a nonce URL
// (e.g. .../DktRpt.pl?375021).
func (d *Decoder) CaseIDFromCaseURL(caseURL string, appellate bool) (string, bool) {
	if appellate {
		return firstGroup(caseIDParamRe, caseURL)
	}
	if id, ok := firstGroup(nonceRe, caseURL); ok {
		return id, true
	}
	return firstGroup(caseIDParamRe, caseURL)
}

func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
