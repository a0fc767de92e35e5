package errors

import (
	"net/url"
	"unicode"
)

// ValidateURL checks that rawURL is an absolute http or https URL with a
// host. It is used for the API base URL, which is joined with request
// paths as-is.
//
// Validation rules:
//   - URL cannot be empty
//   - No control characters
//   - Scheme must be http or https
//   - Host must be present
//   - No query string or fragment
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "URL contains invalid control characters")
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "URL cannot be parsed")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidInput, "URL cannot contain a query or fragment")
	}

	return nil
}
