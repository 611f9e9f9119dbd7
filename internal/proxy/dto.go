package proxy

import "strings"

const DefaultStrategy = "desktop"

// DefaultCategories are requested when the caller names none.
var DefaultCategories = []string{"PERFORMANCE", "ACCESSIBILITY", "BEST_PRACTICES", "SEO"}

// Request is the inbound analysis request.
type Request struct {
	URL        string   `json:"url"`
	Strategy   string   `json:"strategy,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

func (r Request) withDefaults() Request {
	out := Request{
		URL:      strings.TrimSpace(r.URL),
		Strategy: strings.TrimSpace(r.Strategy),
	}
	if out.Strategy == "" {
		out.Strategy = DefaultStrategy
	}
	for _, c := range r.Categories {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			out.Categories = append(out.Categories, trimmed)
		}
	}
	if len(out.Categories) == 0 {
		out.Categories = append([]string(nil), DefaultCategories...)
	}
	return out
}
