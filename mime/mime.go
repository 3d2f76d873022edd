// Package mime decodes raw notification emails into juriscraper.Message
// values: part selection (HTML preferred over plain text), transfer
// decoding, charset fallback, image attachment detection, and the
// line-ending repair needed for SES messages archived in S3.
package mime

import (
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/ttys0dev/juriscraper"
)

// Decode parses a raw RFC822 message into a Message. The CourtID field is
// left empty; it comes from the mailbox, not the message. A multipart
// message selects its HTML part when one exists, otherwise its plain text
// part, and flags any image part.
func Decode(raw string) (*juriscraper.Message, error) {
	m, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		return nil, juriscraper.Errorf(juriscraper.EINVALID, "can't read message: %v", err)
	}

	msg := &juriscraper.Message{Subject: decodeSubject(m.Header.Get("Subject"))}

	contentType := m.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil && contentType != "" {
		return nil, juriscraper.Errorf(juriscraper.EINVALID, "can't parse content type %q: %v", contentType, err)
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := walkMultipart(m.Body, params["boundary"], msg); err != nil {
			return nil, err
		}
	} else {
		payload, err := io.ReadAll(m.Body)
		if err != nil {
			return nil, juriscraper.Errorf(juriscraper.EINVALID, "can't read message body: %v", err)
		}
		msg.ContentType = juriscraper.ContentTypePlain
		if mediaType == string(juriscraper.ContentTypeHTML) {
			msg.ContentType = juriscraper.ContentTypeHTML
		}
		msg.Body = decodeText(decodeTransfer(payload, m.Header.Get("Content-Transfer-Encoding")))
	}

	if msg.Body == "" && !msg.ImageAttached {
		return nil, juriscraper.Errorf(juriscraper.EINVALID, "message has no text or html part")
	}
	return msg, nil
}

// DecodeS3 decodes a SES message archived in S3, whose HTML body arrives
// with hard-wrapped lines. Soft line breaks ("=" at end of line) are
// rejoined before the body is handed to the HTML parser.
func DecodeS3(raw string) (*juriscraper.Message, error) {
	msg, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if msg.ContentType == juriscraper.ContentTypeHTML {
		msg.Body = combineBrokenLines(msg.Body)
	}
	return msg, nil
}

// walkMultipart scans every part (recursing into nested multiparts),
// recording the first HTML and plain text parts and flagging image parts.
func walkMultipart(r io.Reader, boundary string, msg *juriscraper.Message) error {
	var htmlBody, plainBody string
	haveHTML, havePlain := false, false

	var walk func(io.Reader, string) error
	walk = func(r io.Reader, boundary string) error {
		mr := multipart.NewReader(r, boundary)
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return juriscraper.Errorf(juriscraper.EINVALID, "can't read message part: %v", err)
			}
			mediaType, params, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
			switch {
			case strings.HasPrefix(mediaType, "multipart/"):
				if err := walk(part, params["boundary"]); err != nil {
					return err
				}
			case strings.HasPrefix(mediaType, "image/"):
				msg.ImageAttached = true
			case mediaType == string(juriscraper.ContentTypeHTML) && !haveHTML:
				payload, _ := io.ReadAll(part)
				htmlBody = decodeText(decodeTransfer(payload, part.Header.Get("Content-Transfer-Encoding")))
				haveHTML = true
			case mediaType == string(juriscraper.ContentTypePlain) && !havePlain:
				if strings.Contains(part.Header.Get("Content-Disposition"), "attachment") {
					continue
				}
				payload, _ := io.ReadAll(part)
				plainBody = decodeText(decodeTransfer(payload, part.Header.Get("Content-Transfer-Encoding")))
				havePlain = true
			}
		}
	}
	if err := walk(r, boundary); err != nil {
		return err
	}

	switch {
	case haveHTML:
		msg.ContentType = juriscraper.ContentTypeHTML
		msg.Body = htmlBody
	case havePlain:
		msg.ContentType = juriscraper.ContentTypePlain
		msg.Body = plainBody
	}
	return nil
}

// decodeSubject decodes a MIME-encoded Subject header.
func decodeSubject(subject string) string {
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject)
	if err != nil {
		return subject
	}
	return decoded
}

// decodeTransfer reverses the part's transfer encoding.
func decodeTransfer(payload []byte, encoding string) []byte {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		decoded, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(payload)), ""))
		if err != nil {
			return payload
		}
		return decoded
	case "quoted-printable":
		decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(string(payload))))
		if err != nil {
			return payload
		}
		return decoded
	default:
		return payload
	}
}

// decodeText interprets payload as UTF-8, falling back to ISO-8859-1 as
// the courts' legacy encoding.
func decodeText(payload []byte) string {
	if utf8.Valid(payload) {
		return string(payload)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(payload)
	if err != nil {
		return string(payload)
	}
	return string(decoded)
}

// combineBrokenLines rejoins S3 line breaks: a trailing "=" continues the
// same logical line, anything else resumes with a space.
func combineBrokenLines(text string) string {
	var sb strings.Builder
	lastLineJoined := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasSuffix(line, "="):
			sb.WriteString(strings.TrimSuffix(line, "="))
			lastLineJoined = true
		case lastLineJoined:
			sb.WriteString(line)
			lastLineJoined = false
		default:
			sb.WriteString(" ")
			sb.WriteString(line)
		}
	}
	return sb.String()
}
