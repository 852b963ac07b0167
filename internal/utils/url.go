package utils

import "net/url"

// ParseURL parses a URL and returns a URL structure, nil if uri is empty or invalid
func ParseURL(uri string) *url.URL {
	if uri == "" {
		return nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return nil
	}
	return u
}
