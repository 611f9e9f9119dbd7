package health

import "time"

// Status is the payload served on /api/health.
type Status struct {
	OK               bool   `json:"ok"`
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
	Uptime           string `json:"uptime"`
}

// Service reports liveness plus whether the scoring credential is present.
// A missing credential does not fail the check; requests report it instead.
type Service struct {
	apiKey  func() string
	started time.Time
}

// NewService constructs a health service that reads the credential through apiKey.
func NewService(apiKey func() string) *Service {
	return &Service{apiKey: apiKey, started: time.Now()}
}

// Status returns the current health payload.
func (s *Service) Status() Status {
	st := Status{OK: true, Uptime: time.Since(s.started).Round(time.Second).String()}
	if s.apiKey != nil {
		st.APIKeyConfigured = s.apiKey() != ""
	}
	return st
}
