package errors

import (
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"public api", "https://api.github.com", false},
		{"enterprise", "https://github.example.com/api/v3", false},
		{"local http", "http://127.0.0.1:8080", false},
		{"trailing slash", "https://api.github.com/", false},

		{"empty", "", true},
		{"no scheme", "api.github.com", true},
		{"ftp", "ftp://example.com", true},
		{"no host", "https://", true},
		{"query", "https://api.github.com?x=1", true},
		{"fragment", "https://api.github.com#top", true},
		{"control char", "https://api.github.com/\x01", true},
		{"newline", "https://api.github.com\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateURL(%q) code = %q, want %q", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
