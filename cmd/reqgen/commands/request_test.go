package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRequestFlags_Defaults(t *testing.T) {
	fs, flags := SetupRequestFlags()
	require.NoError(t, fs.Parse([]string{"GET", "https://api.example.com"}))

	assert.Equal(t, "rest-client", flags.Format)
	assert.Empty(t, flags.Body)
	assert.Empty(t, flags.Output)
	assert.Empty(t, flags.Headers.headers)
}

func TestSetupRequestFlags_RepeatableHeaders(t *testing.T) {
	fs, flags := SetupRequestFlags()
	err := fs.Parse([]string{
		"-H", "Accept: application/json",
		"-H", "X-Request-ID: abc",
		"POST", "https://api.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Accept: application/json", "X-Request-ID: abc"}, flags.Headers.headers)
}

func TestSetupRequestFlags_InvalidHeader(t *testing.T) {
	fs, _ := SetupRequestFlags()
	fs.SetOutput(&discardWriter{})
	err := fs.Parse([]string{"-H", "no-colon-here", "GET", "https://x"})
	require.Error(t, err)
}

func TestHandleRequest_WritesOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "request.http")
	err := HandleRequest([]string{
		"-H", "Content-Type: application/json",
		"-b", `{"name": "x"}`,
		"-o", out,
		"post", "https://api.example.com/v1/users",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	want := "POST https://api.example.com/v1/users\n" +
		"Content-Type: application/json\n" +
		"\n" +
		`{"name": "x"}` + "\n"
	assert.Equal(t, want, string(data))
}

func TestHandleRequest_CurlFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "request.sh")
	err := HandleRequest([]string{"-f", "curl", "-o", out, "GET", "https://api.example.com/v1/health"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "curl -X GET \\\n  'https://api.example.com/v1/health'\n", string(data))
}

func TestHandleRequest_InvalidFormat(t *testing.T) {
	err := HandleRequest([]string{"-f", "wget", "GET", "https://api.example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleRequest_MissingArgs(t *testing.T) {
	err := HandleRequest([]string{"GET"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method and a URL")
}

// discardWriter swallows usage output during error-path tests.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
