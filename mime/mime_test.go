package mime_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttys0dev/juriscraper"
	"github.com/ttys0dev/juriscraper/mime"
)

// raw builds an RFC822 message from lines.
func raw(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func TestDecode_Multipart(t *testing.T) {
	t.Parallel()

	t.Run("html preferred over plain text", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: Activity in Case 1:21-cv-01456-MN CBV, Inc. v. ChanBond, LLC Letter`,
			`Content-Type: multipart/alternative; boundary="b1"`,
			``,
			`--b1`,
			`Content-Type: text/plain; charset="utf-8"`,
			``,
			`plain rendition`,
			`--b1`,
			`Content-Type: text/html; charset="utf-8"`,
			``,
			`<html><body>html rendition</body></html>`,
			`--b1--`,
		))
		require.NoError(t, err)

		assert.Equal(t, juriscraper.ContentTypeHTML, msg.ContentType)
		assert.Contains(t, msg.Body, "html rendition")
		assert.False(t, msg.ImageAttached)
	})

	t.Run("plain text fallback", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: multipart/mixed; boundary="b1"`,
			``,
			`--b1`,
			`Content-Type: text/plain; charset="utf-8"`,
			``,
			`plain rendition`,
			`--b1--`,
		))
		require.NoError(t, err)

		assert.Equal(t, juriscraper.ContentTypePlain, msg.ContentType)
		assert.Contains(t, msg.Body, "plain rendition")
	})

	t.Run("nested multipart", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: multipart/mixed; boundary="outer"`,
			``,
			`--outer`,
			`Content-Type: multipart/alternative; boundary="inner"`,
			``,
			`--inner`,
			`Content-Type: text/html; charset="utf-8"`,
			``,
			`<html><body>nested</body></html>`,
			`--inner--`,
			`--outer--`,
		))
		require.NoError(t, err)

		assert.Equal(t, juriscraper.ContentTypeHTML, msg.ContentType)
		assert.Contains(t, msg.Body, "nested")
	})

	t.Run("image part flags the message", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: multipart/mixed; boundary="b1"`,
			``,
			`--b1`,
			`Content-Type: image/png`,
			`Content-Transfer-Encoding: base64`,
			``,
			`aWdub3JlZA==`,
			`--b1--`,
		))
		require.NoError(t, err)

		assert.True(t, msg.ImageAttached)
		assert.Empty(t, msg.Body)
	})

	t.Run("plain attachment is skipped", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: multipart/mixed; boundary="b1"`,
			``,
			`--b1`,
			`Content-Type: text/plain; charset="utf-8"`,
			`Content-Disposition: attachment; filename="notes.txt"`,
			``,
			`attached notes`,
			`--b1`,
			`Content-Type: text/plain; charset="utf-8"`,
			``,
			`body text`,
			`--b1--`,
		))
		require.NoError(t, err)

		assert.Contains(t, msg.Body, "body text")
		assert.NotContains(t, msg.Body, "attached notes")
	})
}

func TestDecode_SinglePart(t *testing.T) {
	t.Parallel()

	t.Run("html content type", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: text/html; charset="utf-8"`,
			``,
			`<html><body>single part</body></html>`,
		))
		require.NoError(t, err)

		assert.Equal(t, juriscraper.ContentTypeHTML, msg.ContentType)
		assert.Contains(t, msg.Body, "single part")
	})

	t.Run("missing content type means plain text", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			``,
			`bare body`,
		))
		require.NoError(t, err)

		assert.Equal(t, juriscraper.ContentTypePlain, msg.ContentType)
		assert.Contains(t, msg.Body, "bare body")
	})

	t.Run("empty body is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := mime.Decode(raw(
			`Subject: test`,
			``,
		))
		assert.Equal(t, juriscraper.EINVALID, juriscraper.ErrorCode(err))
	})

	t.Run("unreadable message is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := mime.Decode("not a message")
		assert.Equal(t, juriscraper.EINVALID, juriscraper.ErrorCode(err))
	})
}

func TestDecode_TransferEncodings(t *testing.T) {
	t.Parallel()

	t.Run("quoted printable", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: text/html; charset="utf-8"`,
			`Content-Transfer-Encoding: quoted-printable`,
			``,
			`<html><body>Joint=20Motion</body></html>`,
		))
		require.NoError(t, err)

		assert.Contains(t, msg.Body, "Joint Motion")
	})

	t.Run("base64", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: text/plain; charset="utf-8"`,
			`Content-Transfer-Encoding: base64`,
			``,
			`RG9ja2V0IFRleHQ6`,
		))
		require.NoError(t, err)

		assert.Equal(t, "Docket Text:", msg.Body)
	})

	t.Run("latin1 fallback", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.Decode(raw(
			`Subject: test`,
			`Content-Type: text/plain; charset="iso-8859-1"`,
			``,
			"Pe\xf1a v. Doe",
		))
		require.NoError(t, err)
		assert.Equal(t, "Peña v. Doe", strings.TrimSpace(msg.Body))
	})
}

func TestDecode_Subject(t *testing.T) {
	t.Parallel()

	msg, err := mime.Decode(raw(
		`Subject: =?utf-8?q?Activity_in_Case_22-50073_Ho_Wan_Kwok?=`,
		`Content-Type: text/plain`,
		``,
		`body`,
	))
	require.NoError(t, err)

	assert.Equal(t, "Activity in Case 22-50073 Ho Wan Kwok", msg.Subject)
}

func TestDecodeS3(t *testing.T) {
	t.Parallel()

	t.Run("rejoins soft-broken html lines", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.DecodeS3(raw(
			`Subject: test`,
			`Content-Type: text/html; charset="utf-8"`,
			``,
			`<html><body><b>Notice has been electronically ma=`,
			`iled to:</b></body></html>`,
		))
		require.NoError(t, err)

		assert.Contains(t, msg.Body, "Notice has been electronically mailed to:")
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		msg, err := mime.DecodeS3(raw(
			`Subject: test`,
			`Content-Type: text/plain`,
			``,
			`line one=`,
			`line two`,
		))
		require.NoError(t, err)

		assert.Contains(t, msg.Body, "line one=")
	})
}
