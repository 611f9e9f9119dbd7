package lighthouse

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func TestBuildSummaryScalesCategoryScores(t *testing.T) {
	raw := []byte(`{"lighthouseResult":{"categories":{"performance":{"score":0.42}},"audits":{}}}`)

	summary, err := BuildSummary(raw, "https://x.test", "desktop", fixedNow)

	require.NoError(t, err)
	assert.Equal(t, 42, summary.Performance)
	assert.Equal(t, 0, summary.Accessibility)
	assert.Equal(t, 0, summary.BestPractices)
	assert.Equal(t, 0, summary.SEO)
	assert.Equal(t, "https://x.test", summary.URL)
	assert.Equal(t, "desktop", summary.Strategy)
	assert.Equal(t, fixedNow, summary.Timestamp)
	assert.NotEmpty(t, summary.ID)
	assert.Empty(t, summary.Recommendations.Performance)
}

func TestBuildSummaryAllCategoriesAndRecommendations(t *testing.T) {
	raw := []byte(`{
		"lighthouseResult": {
			"finalUrl": "https://final.test/",
			"configSettings": {"formFactor": "mobile"},
			"categories": {
				"performance": {"score": 0.906},
				"accessibility": {"score": 1},
				"best-practices": {"score": null},
				"seo": {"score": 0.7}
			},
			"audits": {
				"meta-description": {"id": "meta-description", "title": "Document does not have a meta description", "description": "Meta descriptions may be included.", "score": 0},
				"speed-index": {"id": "speed-index", "title": "Speed Index", "description": "Speed Index shows how quickly.", "score": 0.61, "displayValue": "3.1 s"},
				"server-response-time": {"id": "server-response-time", "title": "Initial server response time was short", "description": "Keep it short.", "score": 1}
			}
		}
	}`)

	summary, err := BuildSummary(raw, "", "", fixedNow)

	require.NoError(t, err)
	assert.Equal(t, 91, summary.Performance)
	assert.Equal(t, 100, summary.Accessibility)
	assert.Equal(t, 0, summary.BestPractices)
	assert.Equal(t, 70, summary.SEO)
	assert.Equal(t, "https://final.test/", summary.URL)
	assert.Equal(t, "mobile", summary.Strategy)

	require.Len(t, summary.Recommendations.Performance, 1)
	assert.Equal(t, "Speed Index", summary.Recommendations.Performance[0].Title)
	assert.Equal(t, "3.1 s", summary.Recommendations.Performance[0].DisplayValue)
	require.Len(t, summary.Recommendations.SEO, 1)
	assert.Equal(t, 0, summary.Recommendations.SEO[0].Score)
	require.NotNil(t, summary.Recommendations.SEO[0].LearnMoreURL)
}

func TestBuildSummaryNoResult(t *testing.T) {
	_, err := BuildSummary([]byte(`{"kind":"pagespeedonline#result"}`), "https://x.test", "desktop", fixedNow)
	assert.True(t, errors.Is(err, ErrNoResult))
}

func TestBuildSummaryInvalidJSON(t *testing.T) {
	_, err := BuildSummary([]byte(`not json`), "https://x.test", "desktop", fixedNow)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoResult))
}

func TestAuditReportCarriesNullScores(t *testing.T) {
	report, err := ParseReport([]byte(`{"lighthouseResult":{"audits":{"diagnostics":{"title":"Diagnostics","description":"x","score":null}}}}`))
	require.NoError(t, err)

	audits := report.AuditReport()
	require.Contains(t, audits, "diagnostics")
	assert.Nil(t, audits["diagnostics"].Score)
}

func TestBuildSummaryTimestampFallsBackToPayload(t *testing.T) {
	raw := []byte(`{
		"analysisUTCTimestamp": "2026-03-01T09:15:00.123Z",
		"lighthouseResult": {"fetchTime": "2026-03-01T09:14:58.000Z", "categories": {}, "audits": {}}
	}`)

	summary, err := BuildSummary(raw, "https://x.test", "desktop", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 9, 15, 0, 123000000, time.UTC), summary.Timestamp)

	noAnalysis := []byte(`{"lighthouseResult": {"fetchTime": "2026-03-01T09:14:58Z", "categories": {}, "audits": {}}}`)
	summary, err = BuildSummary(noAnalysis, "https://x.test", "desktop", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 9, 14, 58, 0, time.UTC), summary.Timestamp)
}

func TestBuildSummaryTimestampWithoutAnyTime(t *testing.T) {
	summary, err := BuildSummary([]byte(`{"lighthouseResult":{}}`), "https://x.test", "desktop", time.Time{})

	require.NoError(t, err)
	assert.False(t, summary.Timestamp.IsZero())
	assert.NotEmpty(t, summary.ID)
}
