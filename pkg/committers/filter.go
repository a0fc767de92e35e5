package committers

import "strings"

// placeholderSuffixes mark addresses that cannot receive mail: GitHub's
// privacy noreply addresses and hostname-derived "user@machine.local".
var placeholderSuffixes = []string{
	"noreply.github.com",
	".local",
}

// IsPlaceholder reports whether email ends with one of the placeholder
// suffixes. The match is literal and case-sensitive.
func IsPlaceholder(email string) bool {
	for _, suffix := range placeholderSuffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}
