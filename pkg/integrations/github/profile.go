package github

import (
	"net/url"
	"strings"

	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
)

// profileHost is the only host accepted in profile URLs.
const profileHost = "github.com"

// ParseUsername turns a bare username or a profile URL into a username.
//
// Input with a path but no scheme ("gruns") is returned unchanged, even
// when it is not a well-formed URL ("a%zz").
// Anything else is parsed as a URL whose host must be exactly github.com;
// the username is its first path segment ("https://github.com/gruns/x"
// yields "gruns"). It never touches the network.
func ParseUsername(input string) (string, error) {
	u, err := url.Parse(input)
	if err != nil {
		if input != "" && !hasScheme(input) {
			return input, nil
		}
		return "", &snitcherrors.InvalidProfileURLError{Input: input, Reason: "cannot parse URL"}
	}

	if u.Scheme == "" && u.Path != "" {
		return input, nil
	}

	if u.Hostname() != profileHost {
		return "", &snitcherrors.InvalidProfileURLError{Input: input, Reason: "host must be " + profileHost}
	}
	username := firstSegment(u.Path)
	if username == "" {
		return "", &snitcherrors.InvalidProfileURLError{Input: input, Reason: "missing username"}
	}
	return username, nil
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// hasScheme reports whether s starts with a URL scheme ("https:").
// It follows the scheme grammar net/url uses: a letter followed by
// letters, digits, '+', '-' or '.', terminated by ':'.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}
