package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
)

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "coded error drops code prefix",
			err:  fmt.Errorf("invalid flags: %w", snitcherrors.New(snitcherrors.ErrCodeInvalidConfig, "max_repos must be at least 1, got 0")),
			want: "max_repos must be at least 1, got 0",
		},
		{
			name: "typed error printed as is",
			err:  &snitcherrors.RepositoryFetchError{Username: "ghost", StatusCode: 404, Body: "{}"},
			want: `error fetching repositories for "ghost": status 404: {}`,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "INVALID_CONFIG")
		})
	}
}
