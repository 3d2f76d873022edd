package juriscraper

// ShortDescriptionRule derives a concise document label from a bankruptcy
// notification subject line. Subjects for bankruptcy vary a lot from court
// to court, so each supported court registers its own string surgery.
type ShortDescriptionRule func(subject, docketNumber, caseName string) string

// ShortDescriptionRegistry maps bankruptcy court ids to their subject-line
// grammars. It is built once at process start and treated as read-only
// configuration afterwards.
type ShortDescriptionRegistry interface {
	// Derive applies the rule registered for courtID. ok is false when the
	// court has no known rule.
	Derive(courtID, subject, docketNumber, caseName string) (shortDescription string, ok bool)

	// Register adds a rule for a court.
	Register(courtID string, rule ShortDescriptionRule)

	// List returns all registered court ids.
	List() []string
}

// IDDecoder extracts the PACER identifiers embedded in document and case
// view URLs.
type IDDecoder interface {
	// DocID returns the PACER document id from a doc1-style URL.
	DocID(docURL string) (string, bool)

	// CaseID returns the PACER case id from a doc1-style URL.
	CaseID(docURL string) (string, bool)

	// SeqNo returns the docket sequence number from a doc1-style URL.
	SeqNo(docURL string) (string, bool)

	// MagicNum returns the one-free-look magic number from a doc1-style
	// URL.
	MagicNum(docURL string, appellate bool) (string, bool)

	// CaseIDFromCaseURL returns the PACER case id from a case link.
	// Appellate links carry it as a caseId query parameter; district and
	// bankruptcy links embed it in a nonce URL.
	CaseIDFromCaseURL(caseURL string, appellate bool) (string, bool)
}
