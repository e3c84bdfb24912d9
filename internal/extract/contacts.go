package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// emailRe matches local-part@domain.tld. Addresses embedded in hashes
// or other non-contact contexts are not filtered out; false positives
// are an accepted limitation.
var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// EmailExtractor extracts email addresses from visible text.
type EmailExtractor struct{}

// NewEmailExtractor creates the email rule.
func NewEmailExtractor() *EmailExtractor {
	return &EmailExtractor{}
}

// Name implements Extractor.
func (e *EmailExtractor) Name() string { return "emails" }

// Extract returns the addresses found on the page, deduplicated by
// lower-cased value with the original display casing retained.
func (e *EmailExtractor) Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	matches := emailRe.FindAllString(visit.VisibleText, -1)
	if len(matches) == 0 {
		return nil
	}

	var (
		emails []string
		seen   = make(map[string]bool)
	)

	for _, m := range matches {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, m)
	}

	return []domain.PartialExtraction{partial(visit, rank, domain.FieldEmails, emails)}
}

// Phone digit-count window.
const (
	phoneMinDigits = 7
	phoneMaxDigits = 15
)

// Plausible year range for calendar-date rejection.
const (
	dateMinYear = 1900
	dateMaxYear = 2099
)

// phonePatterns are the three recognized phone formats: international
// with country code, parenthesized area code, and slash-separated. The
// slash family admits short groups so date-shaped strings like
// 12/25/2020 become candidates; looksLikeDate rejects those.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}(?:[ -]\d{1,4}){2,5}`),
	regexp.MustCompile(`\(\d{3}\)[ ]?\d{3}[- ]\d{4}`),
	regexp.MustCompile(`\d{1,3}/\d{1,3}/\d{4}`),
}

// dateShapeRe recognizes dd/dd/dddd-style calendar dates.
var dateShapeRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)

// nonDigitRe strips everything but digits when normalizing candidates.
var nonDigitRe = regexp.MustCompile(`\D`)

// PhoneExtractor extracts phone numbers from visible text.
type PhoneExtractor struct{}

// NewPhoneExtractor creates the phone rule.
func NewPhoneExtractor() *PhoneExtractor {
	return &PhoneExtractor{}
}

// Name implements Extractor.
func (e *PhoneExtractor) Name() string { return "phones" }

// phoneCandidate is one regex match with its location in the text.
type phoneCandidate struct {
	text   string
	start  int
	digits string
}

// Extract returns phone numbers in the 7-15 digit window, rejecting
// calendar dates and digit sequences already captured inside a longer
// match.
func (e *PhoneExtractor) Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	text := visit.VisibleText

	var candidates []phoneCandidate

	for _, re := range phonePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			match := strings.TrimSpace(text[loc[0]:loc[1]])
			digits := nonDigitRe.ReplaceAllString(match, "")

			if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
				continue
			}
			if looksLikeDate(match) {
				continue
			}

			candidates = append(candidates, phoneCandidate{
				text:   match,
				start:  loc[0],
				digits: digits,
			})
		}
	}

	phones := dedupeCandidates(candidates)
	if len(phones) == 0 {
		return nil
	}

	return []domain.PartialExtraction{partial(visit, rank, domain.FieldPhones, phones)}
}

// dedupeCandidates drops candidates whose digit sequence is contained
// in a longer accepted match, then restores text order.
func dedupeCandidates(candidates []phoneCandidate) []string {
	// Longest first, so fragments of a full number lose to the number.
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].digits) > len(candidates[j].digits)
	})

	var accepted []phoneCandidate
	for _, cand := range candidates {
		redundant := false
		for _, a := range accepted {
			if strings.Contains(a.digits, cand.digits) {
				redundant = true
				break
			}
		}
		if !redundant {
			accepted = append(accepted, cand)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})

	phones := make([]string, 0, len(accepted))
	for _, a := range accepted {
		phones = append(phones, a.text)
	}

	return phones
}

// looksLikeDate reports whether the candidate has calendar-date shape:
// month <= 12, day <= 31, and a plausible 4-digit year.
func looksLikeDate(candidate string) bool {
	groups := dateShapeRe.FindStringSubmatch(candidate)
	if groups == nil {
		return false
	}

	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	year, _ := strconv.Atoi(groups[3])

	return month >= 1 && month <= 12 &&
		day >= 1 && day <= 31 &&
		year >= dateMinYear && year <= dateMaxYear
}
