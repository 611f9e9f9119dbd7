package widget

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"perfwidget-backend/internal/lighthouse"
	"perfwidget-backend/internal/lighthouse/recommendations"
	"perfwidget-backend/internal/proxy"
)

const DefaultTitle = "Website Performance Analyzer"

// ErrBusy is returned when Submit is called while an analysis is outstanding.
var ErrBusy = errors.New("an analysis is already in progress")

// Analyzer fetches a raw scoring payload.
type Analyzer interface {
	Analyze(ctx context.Context, req proxy.Request) (json.RawMessage, error)
}

// Widget is one mounted analyzer instance. Its state is owned by the instance
// and it is not safe for concurrent use; the busy flag is advisory, as a
// disabled submit button would be.
type Widget struct {
	Title    string
	Strategy string

	api      Analyzer
	now      func() time.Time
	busy     bool
	summary  *lighthouse.ScoreSummary
	expanded recommendations.Category
}

// Option customizes a Widget.
type Option func(*Widget)

// WithTitle overrides the heading.
func WithTitle(title string) Option {
	return func(w *Widget) {
		if t := strings.TrimSpace(title); t != "" {
			w.Title = t
		}
	}
}

// WithStrategy selects mobile or desktop analysis.
func WithStrategy(strategy string) Option {
	return func(w *Widget) {
		if s := strings.TrimSpace(strategy); s != "" {
			w.Strategy = s
		}
	}
}

// WithClock replaces time.Now for summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// New mounts a widget backed by api.
func New(api Analyzer, opts ...Option) *Widget {
	w := &Widget{
		Title:    DefaultTitle,
		Strategy: proxy.DefaultStrategy,
		api:      api,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit normalizes rawURL, runs one analysis and stores the resulting summary.
// The previous summary and expanded category are discarded first; on failure
// no partial result is kept.
func (w *Widget) Submit(ctx context.Context, rawURL string) (*lighthouse.ScoreSummary, error) {
	if w.busy {
		return nil, ErrBusy
	}
	target, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	w.busy = true
	defer func() { w.busy = false }()
	w.summary = nil
	w.expanded = ""

	raw, err := w.api.Analyze(ctx, proxy.Request{
		URL:        target,
		Strategy:   w.Strategy,
		Categories: append([]string(nil), proxy.DefaultCategories...),
	})
	if err != nil {
		return nil, err
	}
	summary, err := lighthouse.BuildSummary(raw, target, w.Strategy, w.now())
	if err != nil {
		return nil, err
	}
	w.summary = summary
	return summary, nil
}

// Toggle expands a category, or collapses it when it is already expanded.
// Expanding one category collapses any other.
func (w *Widget) Toggle(c recommendations.Category) {
	if w.expanded == c {
		w.expanded = ""
		return
	}
	w.expanded = c
}

// Expanded reports the expanded category, if any.
func (w *Widget) Expanded() (recommendations.Category, bool) {
	return w.expanded, w.expanded != ""
}

// Busy reports whether an analysis is outstanding.
func (w *Widget) Busy() bool {
	return w.busy
}

// Summary returns the latest completed summary, or nil.
func (w *Widget) Summary() *lighthouse.ScoreSummary {
	return w.summary
}
