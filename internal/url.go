package internal

import (
	"fmt"
	"net/url"
	"strings"
)

// IsExternalURL checks if a URL is an absolute HTTP(S) URL.
func IsExternalURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") ||
		strings.HasPrefix(rawURL, "https://")
}

// ValidateURL checks that rawURL can be fetched: absolute, HTTP(S),
// with a host, and within the length limit.
func ValidateURL(rawURL string) error {
	if len(rawURL) > maxURLLength {
		return fmt.Errorf("%w: length %d exceeds %d", ErrInvalidURL, len(rawURL), maxURLLength)
	}
	if !IsExternalURL(strings.ToLower(rawURL)) {
		return fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidURL, rawURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	return nil
}

// FeedURL substitutes the path-escaped spreadsheet key into template,
// which must contain exactly one %s verb.
func FeedURL(template, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrInvalidKey
	}
	feedURL := fmt.Sprintf(template, url.PathEscape(key))
	if err := ValidateURL(feedURL); err != nil {
		return "", err
	}
	return feedURL, nil
}
