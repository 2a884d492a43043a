package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reqgen/reqgen/extract"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name  string
		arg   string
		want  extract.Header
		valid bool
	}{
		{
			name:  "simple",
			arg:   "X-Request-ID: abc123",
			want:  extract.Header{Name: "X-Request-ID", Value: "abc123"},
			valid: true,
		},
		{
			name:  "no space after colon",
			arg:   "Accept:application/json",
			want:  extract.Header{Name: "Accept", Value: "application/json"},
			valid: true,
		},
		{
			name:  "value contains colon",
			arg:   "Referer: https://example.com/path",
			want:  extract.Header{Name: "Referer", Value: "https://example.com/path"},
			valid: true,
		},
		{
			name:  "empty value",
			arg:   "X-Empty:",
			want:  extract.Header{Name: "X-Empty", Value: ""},
			valid: true,
		},
		{
			name:  "no colon",
			arg:   "not-a-header",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHeader(tt.arg)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRequestFromEndpoint(t *testing.T) {
	ep := extract.Endpoint{
		Method:  "POST",
		URL:     "https://api.example.com/v1/users",
		Headers: []extract.Header{{Name: "Content-Type", Value: "application/json"}},
		Body:    "{}",
		Summary: "Create a user",
	}

	req := RequestFromEndpoint(ep)
	assert.Equal(t, ep.Method, req.Method)
	assert.Equal(t, ep.URL, req.URL)
	assert.Equal(t, ep.Headers, req.Headers)
	assert.Equal(t, ep.Body, req.Body)
}
