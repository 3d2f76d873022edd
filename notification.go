package juriscraper

import "time"

// ContentType identifies the body flavor of a notification email.
type ContentType string

// Supported notification body flavors.
const (
	ContentTypeHTML  ContentType = "text/html"
	ContentTypePlain ContentType = "text/plain"
)

// Notification is one parsed court email describing filing activity on one
// or more dockets. Its JSON form matches the ingestion contract consumed
// downstream: court_id, appellate, dockets, contains_attachments,
// email_recipients.
type Notification struct {
	CourtID             string      `json:"court_id"`
	Appellate           bool        `json:"appellate"`
	Bankruptcy          bool        `json:"-"`
	ContentType         ContentType `json:"-"`
	ContainsAttachments bool        `json:"contains_attachments"`
	EmailRecipients     []Recipient `json:"email_recipients"`
	Dockets             []Docket    `json:"dockets"`
}

// Docket is a single case's filing record within a notification.
type Docket struct {
	// CaseName is never empty; unparseable names fall back to the
	// UnknownCaseTitle sentinel.
	CaseName     string `json:"case_name"`
	DocketNumber string `json:"docket_number"`

	// DateFiled is left nil by the email parser and populated downstream.
	DateFiled *time.Time `json:"date_filed"`

	DocketEntries []DocketEntry `json:"docket_entries"`
}

// UnknownCaseTitle is stored as the case name when no case name can be
// located in the notification.
const UnknownCaseTitle = "Unknown Case Title"

// DocketEntry is one filed-document event within a docket.
type DocketEntry struct {
	DateFiled   time.Time `json:"date_filed"`
	Description string    `json:"description"`

	// ShortDescription is a concise human label for the filed document,
	// derived from the email subject or the notification footer.
	ShortDescription string `json:"short_description"`

	// DocumentNumber is nil when the notification has no attached document
	// or when the extracted token is a known non-number sentinel. Appellate
	// entries never carry a document number.
	DocumentNumber *string `json:"document_number"`
	DocumentURL    *string `json:"document_url"`

	// PACER identifiers decoded from DocumentURL when present. PacerCaseID
	// falls back to the case link when the document URL does not yield one.
	PacerDocID    *string `json:"pacer_doc_id"`
	PacerCaseID   *string `json:"pacer_case_id"`
	PacerSeqNo    *string `json:"pacer_seq_no"`
	PacerMagicNum *string `json:"pacer_magic_num"`
}

// Recipient is one notified party with one or more email addresses.
// Recipients without at least one address are discarded during extraction.
type Recipient struct {
	Name           string   `json:"name"`
	EmailAddresses []string `json:"email_addresses"`
}

// Message is a decoded notification email, ready for parsing. MIME
// decoding, part selection and line-ending normalization happen upstream
// (see the mime package).
type Message struct {
	// CourtID is the CourtListener-style court identifier (e.g. "cand",
	// "cacb", "ca9"). Bankruptcy courts end in "b".
	CourtID string

	// Subject is the decoded Subject header. May be empty; short
	// descriptions degrade to "" without it.
	Subject string

	ContentType ContentType

	// Body is the decoded payload of the selected MIME part.
	Body string

	// ImageAttached reports whether any MIME part of the source message had
	// a top-level media type of image. Such messages are not notifications
	// and parse to an empty result.
	ImageAttached bool
}
