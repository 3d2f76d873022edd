package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttys0dev/juriscraper/parse"
	"github.com/ttys0dev/juriscraper/strutil"
)

func TestRegistry_Derive(t *testing.T) {
	t.Parallel()

	registry := parse.NewShortDescriptionRegistry()

	tests := []struct {
		name         string
		courtID      string
		subject      string
		docketNumber string
		caseName     string
		want         string
	}{
		{
			name:         "cacb after docket number",
			courtID:      "cacb",
			subject:      "6:22-bk-13643-SY Request for courtesy Notice of Electronic Filing (NEF)",
			docketNumber: "6:22-bk-13643",
			caseName:     "Don Keisling",
			want:         "Request for courtesy Notice of Electronic Filing (NEF)",
		},
		{
			name:         "ctb after docket number",
			courtID:      "ctb",
			subject:      "22-50073 Motion for Relief from Stay",
			docketNumber: "22-50073",
			caseName:     "Ho Wan Kwok",
			want:         "Motion for Relief from Stay",
		},
		{
			name:         "njb drops trailing case name segment",
			courtID:      "njb",
			subject:      "Ch-11 19-27439-MBK Determination of Adjournment Request - Hollister Construc",
			docketNumber: "19-27439",
			caseName:     "Hollister Construction Services, LLC",
			want:         "Determination of Adjournment Request",
		},
		{
			name:         "nysb chapter marker",
			courtID:      "nysb",
			subject:      "22-22507-cgm Ch13 Affidavit Re: Gerasimos Stefanitsis",
			docketNumber: "22-22507",
			caseName:     "Gerasimos Stefanitsis",
			want:         "Affidavit",
		},
		{
			name:         "pawb after case name",
			courtID:      "pawb",
			subject:      "Ch-7 22-20823-GLT U LOCK INC Reply",
			docketNumber: "22-20823",
			caseName:     "U LOCK INC",
			want:         "Reply",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := registry.Derive(tt.courtID, tt.subject, tt.docketNumber, tt.caseName)
			require.True(t, ok)
			assert.Equal(t, tt.want, strutil.Clean(got))
		})
	}
}

func TestRegistry_Derive_UnknownCourt(t *testing.T) {
	t.Parallel()

	registry := parse.NewShortDescriptionRegistry()

	_, ok := registry.Derive("gamb", "22-50512-JPS A document was filed", "22-50512", "Teri Galardi")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := parse.NewRegistry()
	registry.Register("gamb", func(subject, _, _ string) string { return subject })

	got, ok := registry.Derive("gamb", "anything", "", "")
	require.True(t, ok)
	assert.Equal(t, "anything", got)
	assert.Equal(t, []string{"gamb"}, registry.List())
}
