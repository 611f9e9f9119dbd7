package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"perfwidget-backend/internal/shared/metrics"
	"perfwidget-backend/internal/shared/telemetry"
)

// Upstream is the scoring API as seen by the forwarder.
type Upstream interface {
	Run(ctx context.Context, q Query) (json.RawMessage, error)
}

// Service relays analysis requests to the scoring API. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	Upstream Upstream
	// APIKey is consulted on every call so credential changes need no restart.
	APIKey func() string
}

// Forward validates req, fills defaults and performs exactly one upstream call.
func (s *Service) Forward(ctx context.Context, req Request) (json.RawMessage, error) {
	key := s.apiKey()
	if key == "" {
		return nil, ErrMissingCredential
	}

	req = req.withDefaults()
	if req.URL == "" {
		return nil, ErrBadRequest
	}

	start := time.Now()
	body, err := s.Upstream.Run(ctx, Query{
		URL:        req.URL,
		Key:        key,
		Strategy:   req.Strategy,
		Categories: req.Categories,
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveUpstreamDurationMs(elapsed)

	fields := map[string]any{
		"url":         req.URL,
		"strategy":    req.Strategy,
		"categories":  req.Categories,
		"duration_ms": elapsed,
	}
	if err != nil {
		fields["error"] = err.Error()
		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			fields["upstream_status"] = upstreamErr.Status
		}
		telemetry.Warn("lighthouse.forward.failed", fields)
		return nil, err
	}
	fields["bytes"] = len(body)
	telemetry.Info("lighthouse.forward", fields)
	return body, nil
}

func (s *Service) apiKey() string {
	if s.APIKey == nil {
		return ""
	}
	return s.APIKey()
}
