package strutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttys0dev/juriscraper/strutil"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Letter to Judge", strutil.Clean("  Letter \t to\n\n Judge  "))
	})

	t.Run("replaces non-breaking spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "CBV, Inc.", strutil.Clean("CBV, Inc."))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, strutil.Clean("   \n\t "))
	})
}

func TestHarmonize(t *testing.T) {
	t.Parallel()

	t.Run("normalizes versus tokens", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "CBV, Inc. v. ChanBond, LLC", strutil.Harmonize("CBV, Inc. vs. ChanBond, LLC"))
		assert.Equal(t, "Smith v. Jones", strutil.Harmonize("Smith V Jones"))
	})

	t.Run("expands USA", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "United States v. Lull", strutil.Harmonize("USA v. Lull"))
	})

	t.Run("drops trailing punctuation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "In re: U LOCK INC", strutil.Harmonize("In re: U LOCK INC, "))
	})
}

func TestParseDocketNumbers(t *testing.T) {
	t.Parallel()

	t.Run("district form", func(t *testing.T) {
		t.Parallel()

		got := strutil.ParseDocketNumbers([]string{"1:21-cv-01456-MN"})
		assert.Equal(t, "1:21-cv-01456", got)
	})

	t.Run("bankruptcy form with office", func(t *testing.T) {
		t.Parallel()

		got := strutil.ParseDocketNumbers([]string{"6:22-bk-13643-SY"})
		assert.Equal(t, "6:22-bk-13643", got)
	})

	t.Run("bare bankruptcy fallback", func(t *testing.T) {
		t.Parallel()

		got := strutil.ParseDocketNumbers([]string{"Case 22-22507 filed"})
		assert.Equal(t, "22-22507", got)
	})

	t.Run("first matching candidate wins", func(t *testing.T) {
		t.Parallel()

		got := strutil.ParseDocketNumbers([]string{"no number here", "19-27439-MBK"})
		assert.Equal(t, "19-27439", got)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, strutil.ParseDocketNumbers([]string{"nothing", ""}))
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("slash format", func(t *testing.T) {
		t.Parallel()

		got, err := strutil.ParseDate("10/4/2022")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2022, time.October, 4, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		_, err := strutil.ParseDate("not a date")
		require.Error(t, err)
	})
}
