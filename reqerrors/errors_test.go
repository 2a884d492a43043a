package reqerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "api.yaml"}
		if err.Error() != "parse error in api.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("errors.Is matches ErrParse", func(t *testing.T) {
		err := NewParseError("api.yaml", "bad root", nil)
		if !errors.Is(err, ErrParse) {
			t.Error("errors.Is should match ErrParse")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("errors.Is should not match ErrConfig")
		}
	})

	t.Run("errors.Is matches through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading spec: %w", NewParseError("api.yaml", "", nil))
		if !errors.Is(wrapped, ErrParse) {
			t.Error("errors.Is should match ErrParse through wrapping")
		}

		var parseErr *ParseError
		if !errors.As(wrapped, &parseErr) {
			t.Fatal("errors.As should extract *ParseError")
		}
		if parseErr.Path != "api.yaml" {
			t.Errorf("unexpected path: %s", parseErr.Path)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "format",
			Value:   "xml",
			Message: "must be one of: rest-client, httpie, curl",
		}

		want := `configuration error for format (value "xml"): must be one of: rest-client, httpie, curl`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("errors.Is matches ErrConfig", func(t *testing.T) {
		err := NewConfigError("output", "spec.yaml", "would overwrite input file")
		if !errors.Is(err, ErrConfig) {
			t.Error("errors.Is should match ErrConfig")
		}
		if errors.Is(err, ErrParse) {
			t.Error("errors.Is should not match ErrParse")
		}
	})
}
