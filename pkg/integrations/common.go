package integrations

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a registry response body cannot be decoded.
	ErrDecode = errors.New("invalid response body")
)

// Metadata is the attribution data a registry publishes for one package.
// Nil fields were absent (or null) in the registry response.
type Metadata struct {
	Description *string
	HomePage    *string
	License     *string
}

// NewHTTPClient creates an HTTP client with the standard registry timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// StringField returns a pointer to v if it is a JSON string, or nil otherwise.
func StringField(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// LicenseText renders a registry license value as text.
//
// Strings are returned unchanged. Objects carrying a string "type" (the
// legacy npm form {"type": "MIT", "url": ...}) yield that type. Any other
// non-null value is rendered as compact JSON. A nil value yields nil.
func LicenseText(v any) *string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return &val
	case map[string]any:
		if s, ok := val["type"].(string); ok {
			return &s
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}
