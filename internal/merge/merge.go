// Package merge combines per-page partial extractions into one company
// profile with deterministic precedence: first-non-empty-wins for
// scalar fields in page visit order, ordered union for list fields,
// and OR for booleans. The merge is monotonic — a field is never
// cleared once set — and idempotent.
package merge

import (
	"sort"
	"strings"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// Profile reduces the partial extractions into a CompanyProfile.
// Website is always the seed URL and visited is copied verbatim (crawl
// order, homepage first).
func Profile(seedURL string, visited []string, partials []domain.PartialExtraction) domain.CompanyProfile {
	profile := domain.CompanyProfile{
		Identity: domain.Identity{Website: seedURL},
		Contacts: domain.Contacts{Emails: []string{}, Phones: []string{}},
		BusinessInfo: domain.BusinessInfo{
			Services:        []string{},
			TargetCustomers: []string{},
			Pricing: domain.Pricing{
				Tiers:  []string{},
				Prices: []string{},
			},
		},
		KeyPages: domain.KeyPages{Visited: append([]string{}, visited...)},
	}

	// Precedence is page visit order; partials from the same page keep
	// their relative order.
	ordered := append([]domain.PartialExtraction{}, partials...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rank < ordered[j].Rank
	})

	seen := newSeenSets()

	for i := range ordered {
		apply(&profile, &ordered[i], seen)
	}

	return profile
}

// seenSets tracks normalized dedup keys per list field.
type seenSets map[domain.Field]map[string]bool

func newSeenSets() seenSets {
	return make(seenSets)
}

// has records the normalized value and reports whether it was already
// present.
func (s seenSets) has(field domain.Field, value string) bool {
	set, ok := s[field]
	if !ok {
		set = make(map[string]bool)
		s[field] = set
	}

	key := normalize(value)
	if set[key] {
		return true
	}
	set[key] = true

	return false
}

// apply folds one partial into the profile under its field's merge
// rule.
func apply(profile *domain.CompanyProfile, p *domain.PartialExtraction, seen seenSets) {
	switch p.Field {
	case domain.FieldCompanyName:
		setScalar(&profile.Identity.CompanyName, p.Values)
	case domain.FieldTagline:
		setScalar(&profile.Identity.Tagline, p.Values)
	case domain.FieldDescription:
		setScalar(&profile.Description, p.Values)

	case domain.FieldEmails:
		union(&profile.Contacts.Emails, p, seen)
	case domain.FieldPhones:
		union(&profile.Contacts.Phones, p, seen)
	case domain.FieldServices:
		union(&profile.BusinessInfo.Services, p, seen)
	case domain.FieldTargetCustomers:
		union(&profile.BusinessInfo.TargetCustomers, p, seen)
	case domain.FieldTiers:
		union(&profile.BusinessInfo.Pricing.Tiers, p, seen)
	case domain.FieldPrices:
		union(&profile.BusinessInfo.Pricing.Prices, p, seen)

	case domain.FieldFreeOption:
		orBool(&profile.BusinessInfo.Pricing.FreeOption, p.Values)
	case domain.FieldTrialAvailable:
		orBool(&profile.BusinessInfo.Pricing.TrialAvailable, p.Values)

	case domain.FieldLinkedIn:
		setScalar(&profile.SocialLinks.LinkedIn, p.Values)
	case domain.FieldTwitter:
		setScalar(&profile.SocialLinks.Twitter, p.Values)
	case domain.FieldFacebook:
		setScalar(&profile.SocialLinks.Facebook, p.Values)
	case domain.FieldInstagram:
		setScalar(&profile.SocialLinks.Instagram, p.Values)
	case domain.FieldYouTube:
		setScalar(&profile.SocialLinks.YouTube, p.Values)
	}
}

// setScalar applies first-non-empty-wins: once set, a scalar is never
// overwritten by a later page.
func setScalar(dst *string, values []string) {
	if *dst != "" {
		return
	}

	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
			return
		}
	}
}

// union appends values not yet present under their normalized key,
// preserving first-seen order and display casing.
func union(dst *[]string, p *domain.PartialExtraction, seen seenSets) {
	for _, v := range p.Values {
		v = strings.TrimSpace(v)
		if v == "" || seen.has(p.Field, v) {
			continue
		}
		*dst = append(*dst, v)
	}
}

// orBool sets the flag when any page signals it; it never unsets.
func orBool(dst *bool, values []string) {
	if *dst {
		return
	}

	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), domain.BoolTrue) {
			*dst = true
			return
		}
	}
}

// normalize builds the dedup key: trimmed, case-folded.
func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
