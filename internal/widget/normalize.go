package widget

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyURL   = errors.New("please enter a URL")
	ErrInvalidURL = errors.New("please enter a valid URL")
)

// NormalizeURL trims input and prefixes https:// when no http(s) scheme is given.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyURL
	}
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Hostname() == "" || strings.ContainsAny(parsed.Host, " \t") {
		return "", ErrInvalidURL
	}
	return trimmed, nil
}
