package widget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "example.com", want: "https://example.com"},
		{in: "  example.com/path?q=1 ", want: "https://example.com/path?q=1"},
		{in: "http://example.com", want: "http://example.com"},
		{in: "HTTPS://Example.com", want: "HTTPS://Example.com"},
		{in: "", wantErr: ErrEmptyURL},
		{in: "   ", wantErr: ErrEmptyURL},
		{in: "https://", wantErr: ErrInvalidURL},
		{in: "exa mple.com", wantErr: ErrInvalidURL},
	}
	for _, tc := range cases {
		got, err := NormalizeURL(tc.in)
		if tc.wantErr != nil {
			assert.True(t, errors.Is(err, tc.wantErr), "input %q: got %v", tc.in, err)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
