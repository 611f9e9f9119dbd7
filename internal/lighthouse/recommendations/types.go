package recommendations

// Category is one of the four fixed recommendation buckets.
type Category string

const (
	CategoryPerformance   Category = "performance"
	CategoryAccessibility Category = "accessibility"
	CategoryBestPractices Category = "bestPractices"
	CategorySEO           Category = "seo"
)

// Label is the heading shown for a category.
func (c Category) Label() string {
	switch c {
	case CategoryPerformance:
		return "Performance"
	case CategoryAccessibility:
		return "Accessibility"
	case CategoryBestPractices:
		return "Best Practices"
	case CategorySEO:
		return "SEO"
	default:
		return string(c)
	}
}

// Impact ranks how much a failing audit is expected to matter.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// AuditEntry is the subset of an upstream audit the extractor reads.
// A nil Score marks an informational audit.
type AuditEntry struct {
	Score        *float64 `json:"score"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	DisplayValue string   `json:"displayValue,omitempty"`
}

// AuditReport maps audit identifiers to their entries.
type AuditReport map[string]AuditEntry

// Recommendation is a user-facing explanation of one failing or partial audit.
type Recommendation struct {
	Title        string  `json:"title" yaml:"title"`
	Description  string  `json:"description" yaml:"description"`
	LearnMoreURL *string `json:"learnMoreUrl" yaml:"learnMoreUrl"`
	Impact       Impact  `json:"impact" yaml:"impact"`
	Score        int     `json:"score" yaml:"score"`
	DisplayValue string  `json:"displayValue" yaml:"displayValue"`
}

// Result holds recommendations per category in allowlist order.
type Result struct {
	Performance   []Recommendation `json:"performance" yaml:"performance"`
	Accessibility []Recommendation `json:"accessibility" yaml:"accessibility"`
	BestPractices []Recommendation `json:"bestPractices" yaml:"bestPractices"`
	SEO           []Recommendation `json:"seo" yaml:"seo"`
}

// For returns the recommendations of one category.
func (r Result) For(c Category) []Recommendation {
	switch c {
	case CategoryPerformance:
		return r.Performance
	case CategoryAccessibility:
		return r.Accessibility
	case CategoryBestPractices:
		return r.BestPractices
	case CategorySEO:
		return r.SEO
	default:
		return nil
	}
}

func (r *Result) set(c Category, recs []Recommendation) {
	switch c {
	case CategoryPerformance:
		r.Performance = recs
	case CategoryAccessibility:
		r.Accessibility = recs
	case CategoryBestPractices:
		r.BestPractices = recs
	case CategorySEO:
		r.SEO = recs
	}
}
