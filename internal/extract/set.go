package extract

// DefaultSet assembles the full extraction rule set from the
// configured vocabularies.
func DefaultSet(
	tierNames []string,
	serviceKeywords []string,
	customerKeywords []string,
	socialDomains map[string][]string,
) []Extractor {
	return []Extractor{
		NewIdentityExtractor(),
		NewEmailExtractor(),
		NewPhoneExtractor(),
		NewPricingExtractor(tierNames),
		NewSocialExtractor(socialDomains),
		NewBusinessExtractor(serviceKeywords, customerKeywords),
	}
}
