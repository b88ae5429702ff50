// Package common holds small URI and label helpers shared by the pipeline.
package common

import (
	"net/url"
	"strings"
)

// SanitizeURI performs basic cleanup on URIs extracted from RDF graphs:
// surrounding whitespace and stray angle brackets from sloppy serializers.
func SanitizeURI(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "<")
	cleaned = strings.TrimSuffix(cleaned, ">")
	return strings.TrimSpace(cleaned)
}

// IsHTTP reports whether the URI is a fetchable http(s) URL.
func IsHTTP(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// LastPathSegment returns the part of the URI after the final slash.
// Returns the input unchanged when it contains no slash.
func LastPathSegment(uri string) string {
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		return uri[idx+1:]
	}
	return uri
}

// LabelFromURI derives a display label from a URI: the fragment when one
// exists, otherwise the last path segment, with dashes and underscores
// turned into spaces. Returns "" when nothing usable remains.
func LabelFromURI(uri string) string {
	var part string
	if idx := strings.LastIndex(uri, "#"); idx >= 0 {
		part = uri[idx+1:]
	} else {
		part = LastPathSegment(uri)
	}
	if part == "" {
		return ""
	}
	part = strings.ReplaceAll(part, "-", " ")
	part = strings.ReplaceAll(part, "_", " ")
	return part
}
