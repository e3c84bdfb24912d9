package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/extract"
)

func TestEmailExtractor_FindsAddresses(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Sales: sales@acme.io. Support: support@acme.io or visit our office.")
	partials := extract.NewEmailExtractor().Extract(visit, 0)

	require.Equal(t, []string{"sales@acme.io", "support@acme.io"}, valuesFor(partials, domain.FieldEmails))
}

func TestEmailExtractor_DeduplicatesCaseInsensitively(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Write to Info@Acme.com. Footer: info@acme.com")
	partials := extract.NewEmailExtractor().Extract(visit, 0)

	emails := valuesFor(partials, domain.FieldEmails)
	require.Len(t, emails, 1)
	require.Equal(t, "Info@Acme.com", emails[0], "first-seen casing is kept")
}

func TestEmailExtractor_NothingFound(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "No contact details on this page.")
	require.Empty(t, extract.NewEmailExtractor().Extract(visit, 0))
}

func TestPhoneExtractor_ParenthesizedFormat(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Call us at (555) 123-4567 today.")
	phones := valuesFor(extract.NewPhoneExtractor().Extract(visit, 0), domain.FieldPhones)

	require.Equal(t, []string{"(555) 123-4567"}, phones)
}

func TestPhoneExtractor_InternationalFormat(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "International: +1 555 123 4567")
	phones := valuesFor(extract.NewPhoneExtractor().Extract(visit, 0), domain.FieldPhones)

	require.Equal(t, []string{"+1 555 123 4567"}, phones)
}

func TestPhoneExtractor_SlashFormat(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Fax 555/123/4567 any time.")
	phones := valuesFor(extract.NewPhoneExtractor().Extract(visit, 0), domain.FieldPhones)

	require.Equal(t, []string{"555/123/4567"}, phones)
}

func TestPhoneExtractor_RejectsCalendarDates(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Founded 12/25/2020 in Toronto.")
	require.Empty(t, extract.NewPhoneExtractor().Extract(visit, 0))
}

func TestPhoneExtractor_DateRejectionIsShapeAndYearGated(t *testing.T) {
	t.Parallel()

	// Same slash family, but no plausible calendar reading: a month
	// over 12 or a year outside the modern range stays a phone.
	for _, tc := range []struct {
		text string
		want []string
	}{
		{"Ref 55/123/4567 on file.", []string{"55/123/4567"}},
		{"Lot 12/25/4567 still open.", []string{"12/25/4567"}},
	} {
		visit := textVisit(t, tc.text)
		phones := valuesFor(extract.NewPhoneExtractor().Extract(visit, 0), domain.FieldPhones)
		require.Equal(t, tc.want, phones, "input %q", tc.text)
	}
}

func TestPhoneExtractor_DropsDigitSubsequenceOfLongerMatch(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Call +1 555 123 4567 or locally (555) 123-4567.")
	phones := valuesFor(extract.NewPhoneExtractor().Extract(visit, 0), domain.FieldPhones)

	require.Equal(t, []string{"+1 555 123 4567"}, phones,
		"a number whose digits are contained in a longer match is redundant")
}

func TestPhoneExtractor_DigitWindow(t *testing.T) {
	t.Parallel()

	// Too few digits on one side of the window, too many on the other.
	short := textVisit(t, "Ext +1 23 45 only.")
	require.Empty(t, extract.NewPhoneExtractor().Extract(short, 0))

	long := textVisit(t, "Serial +123 1234 1234 1234 1234 1234.")
	require.Empty(t, extract.NewPhoneExtractor().Extract(long, 0))
}
