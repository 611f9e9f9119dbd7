package widget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfwidget-backend/internal/bootstrap"
	"perfwidget-backend/internal/lighthouse"
	"perfwidget-backend/internal/lighthouse/recommendations"
	"perfwidget-backend/internal/proxy"
	"perfwidget-backend/internal/shared/config"
)

var fixedNow = time.Date(2026, time.May, 4, 8, 30, 0, 0, time.UTC)

type analyzerFunc func(ctx context.Context, req proxy.Request) (json.RawMessage, error)

func (f analyzerFunc) Analyze(ctx context.Context, req proxy.Request) (json.RawMessage, error) {
	return f(ctx, req)
}

const samplePayload = `{"lighthouseResult":{"categories":{"performance":{"score":0.42}},"audits":{}}}`

func TestSubmitEndToEndThroughForwarder(t *testing.T) {
	var upstreamURL, upstreamKey string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamURL = r.URL.Query().Get("url")
		upstreamKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer upstream.Close()

	t.Setenv(config.APIKeyEnv, "test-key")
	app, err := bootstrap.Build(config.Config{
		CORSAllowOrigin:   []string{"*"},
		PageSpeedEndpoint: upstream.URL,
	})
	require.NoError(t, err)
	forwarder := httptest.NewServer(app.Router)
	defer forwarder.Close()

	w := New(NewClient(forwarder.URL+"/api/lighthouse"), WithClock(func() time.Time { return fixedNow }))
	summary, err := w.Submit(context.Background(), "example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", upstreamURL)
	assert.Equal(t, "test-key", upstreamKey)
	assert.Equal(t, 42, summary.Performance)
	assert.Equal(t, "https://example.com", summary.URL)
	assert.Equal(t, "desktop", summary.Strategy)
	assert.Equal(t, fixedNow, summary.Timestamp)
	assert.Same(t, summary, w.Summary())
	assert.False(t, w.Busy())
}

func TestSubmitSurfacesForwarderError(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	app, err := bootstrap.Build(config.Config{PageSpeedEndpoint: "https://pagespeed.invalid/run"})
	require.NoError(t, err)
	forwarder := httptest.NewServer(app.Router)
	defer forwarder.Close()

	w := New(NewClient(forwarder.URL + "/api/lighthouse"))
	_, err = w.Submit(context.Background(), "https://x.test")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "API key not configured", apiErr.Error())
	assert.Nil(t, w.Summary())
}

func TestSubmitNoResult(t *testing.T) {
	w := New(analyzerFunc(func(ctx context.Context, req proxy.Request) (json.RawMessage, error) {
		return json.RawMessage(`{"kind":"pagespeedonline#result"}`), nil
	}))

	_, err := w.Submit(context.Background(), "example.com")

	assert.True(t, errors.Is(err, lighthouse.ErrNoResult))
	assert.Nil(t, w.Summary())
}

func TestSubmitRejectsInvalidInputWithoutCalling(t *testing.T) {
	called := false
	w := New(analyzerFunc(func(ctx context.Context, req proxy.Request) (json.RawMessage, error) {
		called = true
		return nil, nil
	}))

	_, err := w.Submit(context.Background(), "   ")

	assert.True(t, errors.Is(err, ErrEmptyURL))
	assert.False(t, called)
}

func TestSubmitWhileBusy(t *testing.T) {
	var w *Widget
	var nestedErr error
	w = New(analyzerFunc(func(ctx context.Context, req proxy.Request) (json.RawMessage, error) {
		assert.True(t, w.Busy())
		_, nestedErr = w.Submit(ctx, "other.example")
		return json.RawMessage(samplePayload), nil
	}), WithStrategy("mobile"))

	summary, err := w.Submit(context.Background(), "example.com")

	require.NoError(t, err)
	assert.True(t, errors.Is(nestedErr, ErrBusy))
	assert.Equal(t, "mobile", summary.Strategy)
	assert.False(t, w.Busy())
}

func TestSubmitDiscardsPreviousState(t *testing.T) {
	fail := false
	w := New(analyzerFunc(func(ctx context.Context, req proxy.Request) (json.RawMessage, error) {
		if fail {
			return nil, &APIError{Status: 429, Message: "Rate limit exceeded. Please try again later."}
		}
		return json.RawMessage(samplePayload), nil
	}))

	_, err := w.Submit(context.Background(), "example.com")
	require.NoError(t, err)
	w.Toggle(recommendations.CategorySEO)

	fail = true
	_, err = w.Submit(context.Background(), "example.com")
	require.Error(t, err)
	assert.Nil(t, w.Summary())
	_, expanded := w.Expanded()
	assert.False(t, expanded)
}

func TestToggleIsPerInstance(t *testing.T) {
	a := New(nil, WithTitle("Check your site"))
	b := New(nil)

	a.Toggle(recommendations.CategoryPerformance)
	got, ok := a.Expanded()
	assert.True(t, ok)
	assert.Equal(t, recommendations.CategoryPerformance, got)
	_, ok = b.Expanded()
	assert.False(t, ok)

	a.Toggle(recommendations.CategorySEO)
	got, _ = a.Expanded()
	assert.Equal(t, recommendations.CategorySEO, got)

	a.Toggle(recommendations.CategorySEO)
	_, ok = a.Expanded()
	assert.False(t, ok)

	assert.Equal(t, "Check your site", a.Title)
	assert.Equal(t, DefaultTitle, b.Title)
}
