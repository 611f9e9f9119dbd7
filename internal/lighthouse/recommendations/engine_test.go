package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func entry(s *float64) AuditEntry {
	return AuditEntry{Score: s, Title: "Some audit", Description: "Upstream description.", DisplayValue: "1.2 s"}
}

func TestExtractSkipsMissingPassingAndInformational(t *testing.T) {
	report := AuditReport{
		"unused-javascript":     entry(score(1)),
		"unminified-css":        entry(nil),
		"color-contrast":        entry(score(1)),
		"not-on-any-allowlist":  entry(score(0)),
		"uses-text-compression": {Score: score(0.2), Title: "", Description: "x"},
		"dom-size":              {Score: score(0.2), Title: "DOM size", Description: ""},
	}

	got := Extract(report)

	assert.Empty(t, got.Performance)
	assert.Empty(t, got.Accessibility)
	assert.Empty(t, got.BestPractices)
	assert.Empty(t, got.SEO)
	assert.NotNil(t, got.Performance)
	assert.NotNil(t, got.SEO)
}

func TestExtractEmptyReport(t *testing.T) {
	got := Extract(nil)
	for _, c := range Categories() {
		assert.NotNil(t, got.For(c), c)
		assert.Empty(t, got.For(c), c)
	}
}

func TestExtractFollowsAllowlistOrder(t *testing.T) {
	report := AuditReport{
		"dom-size":                  entry(score(0.9)),
		"first-contentful-paint":    entry(score(0)),
		"render-blocking-resources": entry(score(0.3)),
	}

	got := Extract(report)

	require.Len(t, got.Performance, 3)
	assert.Equal(t, []int{0, 30, 90}, []int{got.Performance[0].Score, got.Performance[1].Score, got.Performance[2].Score})
	assert.Equal(t, ImpactHigh, got.Performance[0].Impact)
	assert.Equal(t, ImpactMedium, got.Performance[1].Impact)
	assert.Equal(t, ImpactLow, got.Performance[2].Impact)
}

func TestExtractBuildsRecommendation(t *testing.T) {
	report := AuditReport{
		"modern-image-formats": {
			Score:        score(0.45),
			Title:        "Serve images in modern formats",
			Description:  "Upstream text.",
			DisplayValue: "Potential savings of 120 KiB",
		},
	}

	got := Extract(report)

	require.Len(t, got.Performance, 1)
	rec := got.Performance[0]
	assert.Equal(t, "Serve images in modern formats", rec.Title)
	assert.Equal(t, "Images would be much smaller as WebP or AVIF without losing visible quality", rec.Description)
	require.NotNil(t, rec.LearnMoreURL)
	assert.Equal(t, "https://developer.chrome.com/docs/lighthouse/performance/uses-webp-images/", *rec.LearnMoreURL)
	assert.Equal(t, ImpactMedium, rec.Impact)
	assert.Equal(t, 45, rec.Score)
	assert.Equal(t, "Potential savings of 120 KiB", rec.DisplayValue)
}

func TestExtractFallsBackToUpstreamDescription(t *testing.T) {
	const id = "uses-rel-preconnect"
	_, known := FriendlyDescription(id)
	require.False(t, known)

	got := fromAllowlist(AuditReport{
		id: {
			Score:       score(0.5),
			Title:       "Preconnect to required origins",
			Description: "Consider adding preconnect hints. [Learn how to preconnect](https://developer.chrome.com/docs/lighthouse/performance/uses-rel-preconnect/).",
		},
	}, []string{id})

	require.Len(t, got, 1)
	rec := got[0]
	assert.Equal(t, "Consider adding preconnect hints", rec.Description)
	require.NotNil(t, rec.LearnMoreURL)
	assert.Equal(t, "https://developer.chrome.com/docs/lighthouse/performance/uses-rel-preconnect/", *rec.LearnMoreURL)
	assert.Equal(t, ImpactLow, rec.Impact)
}

func TestExtractFriendlyTextWithoutURL(t *testing.T) {
	got := Extract(AuditReport{"dom-size": entry(score(0.1))})

	require.Len(t, got.Performance, 1)
	text, _ := FriendlyDescription("dom-size")
	assert.Equal(t, text, got.Performance[0].Description)
	assert.Nil(t, got.Performance[0].LearnMoreURL)
}

func TestImpactBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Impact
	}{
		{0, ImpactHigh},
		{0.01, ImpactMedium},
		{0.49, ImpactMedium},
		{0.5, ImpactLow},
		{0.99, ImpactLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ImpactFor(tc.score), "score %v", tc.score)
	}
}

func TestScorePercentRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 42, ScorePercent(0.42))
	assert.Equal(t, 13, ScorePercent(0.125))
	assert.Equal(t, 0, ScorePercent(0.004))
	assert.Equal(t, 99, ScorePercent(0.99))
}

func TestSharedIdentifierEvaluatedPerCategory(t *testing.T) {
	got := Extract(AuditReport{
		"document-title": entry(score(0)),
		"image-alt":      entry(score(0.6)),
	})

	require.Len(t, got.Accessibility, 2)
	require.Len(t, got.SEO, 2)
	assert.Equal(t, got.Accessibility[1].Description, got.SEO[0].Description)
	assert.Equal(t, got.Accessibility[0].Description, got.SEO[1].Description)
}

// The friendly table is one flat key space: the last entry declared for an id
// wins for every category that lists it. Pinned until product intent says otherwise.
func TestFriendlyTableLastEntryWins(t *testing.T) {
	for _, id := range []string{"document-title", "image-alt"} {
		var last string
		declared := 0
		for _, e := range friendlyEntries {
			if e.id == id {
				last = e.text
				declared++
			}
		}
		require.Equal(t, 2, declared, id)

		text, ok := FriendlyDescription(id)
		require.True(t, ok)
		assert.Equal(t, last, text, id)
	}

	got := Extract(AuditReport{"document-title": entry(score(0))})
	require.Len(t, got.Accessibility, 1)
	require.Len(t, got.SEO, 1)
	assert.Equal(t, got.SEO[0].Description, got.Accessibility[0].Description)
	assert.Contains(t, got.Accessibility[0].Description, "Search engines")
}

func TestAllowlistReturnsCopy(t *testing.T) {
	list := Allowlist(CategorySEO)
	require.NotEmpty(t, list)
	list[0] = "mutated"
	assert.Equal(t, "document-title", Allowlist(CategorySEO)[0])
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("best-practices")
	assert.True(t, ok)
	assert.Equal(t, CategoryBestPractices, c)

	_, ok = ParseCategory("pwa")
	assert.False(t, ok)
}
