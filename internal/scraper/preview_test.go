package scraper

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncateRunes("short", 10))
	require.Equal(t, "exact", truncateRunes("exact", 5))
	require.Equal(t, "abc", truncateRunes("abcdef", 3))
}

func TestTruncateRunes_NeverSplitsARune(t *testing.T) {
	t.Parallel()

	// "é" is two bytes; a byte-offset cut at 4 would land mid-rune.
	s := "abcéé"
	for limit := 0; limit <= len(s); limit++ {
		out := truncateRunes(s, limit)
		require.LessOrEqual(t, len(out), limit)
		require.True(t, utf8.ValidString(out), "limit %d produced invalid UTF-8", limit)
	}

	long := strings.Repeat("a", previewLen-1) + "日本語"
	out := truncateRunes(long, previewLen)
	require.True(t, utf8.ValidString(out))
	require.Equal(t, previewLen-1, len(out), "the three-byte rune straddling the limit is dropped whole")
}
