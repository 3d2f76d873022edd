package pacer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttys0dev/juriscraper/pacer"
)

const nefDocURL = "https://ecf.cand.uscourts.gov/doc1/035122944127?caseid=375021&de_seq_num=13&magic_num=22908383"

func TestDecoder_DocID(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the fourth digit", func(t *testing.T) {
		t.Parallel()

		d := pacer.NewDecoder()
		id, ok := d.DocID(nefDocURL)

		require.True(t, ok)
		assert.Equal(t, "035022944127", id)
	})

	t.Run("accepts appellate docs1 paths", func(t *testing.T) {
		t.Parallel()

		d := pacer.NewDecoder()
		id, ok := d.DocID("https://ecf.ca2.uscourts.gov/docs1/00208344045?uid=c6b4f8e1a2")

		require.True(t, ok)
		assert.Equal(t, "00208344045", id)
	})

	t.Run("missing doc1 segment", func(t *testing.T) {
		t.Parallel()

		d := pacer.NewDecoder()
		_, ok := d.DocID("https://ecf.cand.uscourts.gov/cgi-bin/login.pl")

		assert.False(t, ok)
	})
}

func TestDecoder_QueryIdentifiers(t *testing.T) {
	t.Parallel()

	d := pacer.NewDecoder()

	t.Run("case id", func(t *testing.T) {
		t.Parallel()

		id, ok := d.CaseID(nefDocURL)
		require.True(t, ok)
		assert.Equal(t, "375021", id)
	})

	t.Run("sequence number", func(t *testing.T) {
		t.Parallel()

		seq, ok := d.SeqNo(nefDocURL)
		require.True(t, ok)
		assert.Equal(t, "13", seq)
	})

	t.Run("magic number", func(t *testing.T) {
		t.Parallel()

		magic, ok := d.MagicNum(nefDocURL, false)
		require.True(t, ok)
		assert.Equal(t, "22908383", magic)
	})

	t.Run("appellate magic number from uid", func(t *testing.T) {
		t.Parallel()

		magic, ok := d.MagicNum("https://ecf.ca2.uscourts.gov/docs1/00208344045?uid=c6b4f8e1a2", true)
		require.True(t, ok)
		assert.Equal(t, "c6b4f8e1a2", magic)
	})
}

func TestDecoder_CaseIDFromCaseURL(t *testing.T) {
	t.Parallel()

	d := pacer.NewDecoder()

	t.Run("nonce URL", func(t *testing.T) {
		t.Parallel()

		id, ok := d.CaseIDFromCaseURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?375021", false)
		require.True(t, ok)
		assert.Equal(t, "375021", id)
	})

	t.Run("appellate caseId parameter", func(t *testing.T) {
		t.Parallel()

		id, ok := d.CaseIDFromCaseURL("https://ecf.ca2.uscourts.gov/n/beam/servlet/TransportRoom?servlet=CaseSummary.jsp&caseId=304032", true)
		require.True(t, ok)
		assert.Equal(t, "304032", id)
	})

	t.Run("no id present", func(t *testing.T) {
		t.Parallel()

		_, ok := d.CaseIDFromCaseURL("https://ecf.cand.uscourts.gov/", false)
		assert.False(t, ok)
	})
}
