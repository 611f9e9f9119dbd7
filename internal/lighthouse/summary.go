package lighthouse

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"perfwidget-backend/internal/lighthouse/recommendations"
)

// ScoreSummary is the display-ready outcome of one analysis. It is built once
// per request and replaced, never updated, when a new analysis starts.
type ScoreSummary struct {
	ID              string                 `json:"id" yaml:"id"`
	Performance     int                    `json:"performance" yaml:"performance"`
	Accessibility   int                    `json:"accessibility" yaml:"accessibility"`
	BestPractices   int                    `json:"bestPractices" yaml:"bestPractices"`
	SEO             int                    `json:"seo" yaml:"seo"`
	URL             string                 `json:"url" yaml:"url"`
	Timestamp       time.Time              `json:"timestamp" yaml:"timestamp"`
	Strategy        string                 `json:"strategy" yaml:"strategy"`
	Recommendations recommendations.Result `json:"recommendations" yaml:"recommendations"`
}

// Score returns the percentage for a category.
func (s *ScoreSummary) Score(c recommendations.Category) int {
	switch c {
	case recommendations.CategoryPerformance:
		return s.Performance
	case recommendations.CategoryAccessibility:
		return s.Accessibility
	case recommendations.CategoryBestPractices:
		return s.BestPractices
	case recommendations.CategorySEO:
		return s.SEO
	default:
		return 0
	}
}

// BuildSummary decodes an upstream payload and derives scores and recommendations.
// url and strategy describe the request that produced the payload. A zero now
// falls back to the payload's own analysis or fetch time, then the clock.
func BuildSummary(raw []byte, url, strategy string, now time.Time) (*ScoreSummary, error) {
	report, err := ParseReport(raw)
	if err != nil {
		return nil, err
	}
	res := report.LighthouseResult
	if strings.TrimSpace(url) == "" {
		url = firstNonEmpty(res.FinalURL, res.RequestedURL)
	}
	if strings.TrimSpace(strategy) == "" && res.ConfigSettings != nil {
		strategy = res.ConfigSettings.FormFactor
	}
	if now.IsZero() {
		now = report.analyzedAt()
	}
	if now.IsZero() {
		now = time.Now()
	}

	return &ScoreSummary{
		ID:              newSummaryID(now),
		Performance:     res.Categories.Performance.percent(),
		Accessibility:   res.Categories.Accessibility.percent(),
		BestPractices:   res.Categories.BestPractices.percent(),
		SEO:             res.Categories.SEO.percent(),
		URL:             url,
		Timestamp:       now.UTC(),
		Strategy:        strategy,
		Recommendations: recommendations.Extract(report.AuditReport()),
	}, nil
}

func newSummaryID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
