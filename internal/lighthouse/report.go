package lighthouse

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"perfwidget-backend/internal/lighthouse/recommendations"
)

// ErrNoResult is returned when a successful upstream payload carries no lighthouse result.
var ErrNoResult = errors.New("no results returned from the scoring API")

// Report is the subset of the upstream scoring payload this service reads.
type Report struct {
	AnalysisUTCTimestamp string  `json:"analysisUTCTimestamp"`
	LighthouseResult     *Result `json:"lighthouseResult"`
}

// Result mirrors the upstream lighthouseResult object.
type Result struct {
	RequestedURL   string           `json:"requestedUrl"`
	FinalURL       string           `json:"finalUrl"`
	FetchTime      string           `json:"fetchTime"`
	ConfigSettings *ConfigSettings  `json:"configSettings"`
	Categories     Categories       `json:"categories"`
	Audits         map[string]Audit `json:"audits"`
}

// ConfigSettings carries the run settings echoed by the upstream API.
type ConfigSettings struct {
	FormFactor string `json:"formFactor"`
}

// Categories holds the four category scores; absent categories stay nil.
type Categories struct {
	Performance   *CategoryScore `json:"performance"`
	Accessibility *CategoryScore `json:"accessibility"`
	BestPractices *CategoryScore `json:"best-practices"`
	SEO           *CategoryScore `json:"seo"`
}

// CategoryScore is a single category with a 0..1 score, or null when it could not be computed.
type CategoryScore struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Score *float64 `json:"score"`
}

// Audit is one upstream audit result.
type Audit struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Score        *float64 `json:"score"`
	DisplayValue string   `json:"displayValue"`
}

// ParseReport decodes an upstream payload.
func ParseReport(raw []byte) (*Report, error) {
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode lighthouse payload: %w", err)
	}
	if report.LighthouseResult == nil {
		return nil, ErrNoResult
	}
	return &report, nil
}

// AuditReport converts the decoded audits into the extractor input.
func (r *Report) AuditReport() recommendations.AuditReport {
	if r == nil || r.LighthouseResult == nil {
		return recommendations.AuditReport{}
	}
	out := make(recommendations.AuditReport, len(r.LighthouseResult.Audits))
	for id, a := range r.LighthouseResult.Audits {
		out[id] = recommendations.AuditEntry{
			Score:        a.Score,
			Title:        a.Title,
			Description:  a.Description,
			DisplayValue: a.DisplayValue,
		}
	}
	return out
}

func (c *CategoryScore) percent() int {
	if c == nil || c.Score == nil {
		return 0
	}
	return recommendations.ScorePercent(*c.Score)
}

// analyzedAt returns the upstream analysis time, or the fetch time when that is absent.
func (r *Report) analyzedAt() time.Time {
	for _, raw := range []string{r.AnalysisUTCTimestamp, r.LighthouseResult.FetchTime} {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
