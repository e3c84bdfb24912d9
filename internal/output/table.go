package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// listPreview caps how many list entries the summary shows per field.
const listPreview = 5

// RenderSummary prints a human-readable report of the profiling run.
func RenderSummary(w io.Writer, result *domain.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Company Profile")

	t.AppendRows([]table.Row{
		{"Company", result.Identity.CompanyName},
		{"Website", result.Identity.Website},
		{"Tagline", orDash(result.Identity.Tagline)},
		{"Description", orDash(truncate(result.Description, 200))},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Emails", joinPreview(result.Contacts.Emails)},
		{"Phones", joinPreview(result.Contacts.Phones)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Services", joinPreview(result.BusinessInfo.Services)},
		{"Customers", joinPreview(result.BusinessInfo.TargetCustomers)},
		{"Tiers", joinPreview(result.BusinessInfo.Pricing.Tiers)},
		{"Prices", joinPreview(result.BusinessInfo.Pricing.Prices)},
		{"Free option", yesNo(result.BusinessInfo.Pricing.FreeOption)},
		{"Trial", yesNo(result.BusinessInfo.Pricing.TrialAvailable)},
	})
	t.AppendSeparator()
	appendSocial(t, result.SocialLinks)
	t.Render()

	fmt.Fprintf(w, "\nPages visited (%d crawled, %d errors):\n",
		result.Metadata.PagesCrawled, len(result.Metadata.Errors))
	for i, page := range result.KeyPages.Visited {
		fmt.Fprintf(w, "  %d. %s\n", i+1, page)
	}
	for _, errMsg := range result.Metadata.Errors {
		fmt.Fprintf(w, "  ! %s\n", errMsg)
	}
}

// appendSocial adds one row per platform with a link.
func appendSocial(t table.Writer, social domain.SocialLinks) {
	rows := []struct {
		label string
		link  string
	}{
		{"LinkedIn", social.LinkedIn},
		{"Twitter", social.Twitter},
		{"Facebook", social.Facebook},
		{"Instagram", social.Instagram},
		{"YouTube", social.YouTube},
	}

	for _, row := range rows {
		if row.link != "" {
			t.AppendRow(table.Row{row.label, row.link})
		}
	}
}

// joinPreview joins up to listPreview entries, noting how many more
// exist.
func joinPreview(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	shown := values
	if len(shown) > listPreview {
		shown = shown[:listPreview]
	}

	joined := strings.Join(shown, ", ")
	if rest := len(values) - len(shown); rest > 0 {
		joined += fmt.Sprintf(" (+%d more)", rest)
	}

	return joined
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
