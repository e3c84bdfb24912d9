package domain

// Field identifies a profile field a partial extraction applies to.
type Field string

// Fields produced by the extraction rules.
const (
	FieldCompanyName     Field = "company_name"
	FieldTagline         Field = "tagline"
	FieldDescription     Field = "description"
	FieldEmails          Field = "emails"
	FieldPhones          Field = "phones"
	FieldServices        Field = "services"
	FieldTiers           Field = "tiers"
	FieldPrices          Field = "prices"
	FieldTargetCustomers Field = "target_customers"
	FieldFreeOption      Field = "free_option"
	FieldTrialAvailable  Field = "trial_available"
	FieldLinkedIn        Field = "social.linkedin"
	FieldTwitter         Field = "social.twitter"
	FieldFacebook        Field = "social.facebook"
	FieldInstagram       Field = "social.instagram"
	FieldYouTube         Field = "social.youtube"
)

// BoolTrue is the value a partial carries for a signalled boolean field.
const BoolTrue = "true"

// PartialExtraction holds the values one extractor found for one field
// on one page. Rank is the page's position in visit order (homepage is
// 0) and drives first-non-empty-wins precedence during merge.
type PartialExtraction struct {
	SourceURL string   `json:"source_url"`
	Field     Field    `json:"field_name"`
	Values    []string `json:"values"`
	Rank      int      `json:"confidence_rank"`
}
