package recommendations

import "math"

// Extract maps an audit report to per-category recommendations. Only audits on a
// category's allowlist are considered, in allowlist order. Passing, informational,
// missing or incomplete audits are skipped; nothing here returns an error.
func Extract(report AuditReport) Result {
	var out Result
	for _, category := range categoryOrder {
		out.set(category, fromAllowlist(report, allowlists[category]))
	}
	return out
}

func fromAllowlist(report AuditReport, ids []string) []Recommendation {
	recs := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		entry, ok := report[id]
		if !ok || !qualifies(entry) {
			continue
		}
		text, found := FriendlyDescription(id)
		if !found {
			text = entry.Description
		}
		description, learnMore := SplitLearnMore(text)
		score := *entry.Score
		recs = append(recs, Recommendation{
			Title:        entry.Title,
			Description:  description,
			LearnMoreURL: learnMore,
			Impact:       ImpactFor(score),
			Score:        ScorePercent(score),
			DisplayValue: entry.DisplayValue,
		})
	}
	return recs
}

func qualifies(entry AuditEntry) bool {
	if entry.Score == nil || *entry.Score >= 1 {
		return false
	}
	return entry.Title != "" && entry.Description != ""
}

// ImpactFor classifies a non-passing audit score.
func ImpactFor(score float64) Impact {
	switch {
	case score <= 0:
		return ImpactHigh
	case score < 0.5:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// ScorePercent scales a 0..1 score to an integer percentage, rounding half away from zero.
func ScorePercent(score float64) int {
	return int(math.Round(score * 100))
}
