package common

import "testing"

func TestSanitizeURI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "https://example.org/np", "https://example.org/np"},
		{"angle brackets", "<https://example.org/np>", "https://example.org/np"},
		{"whitespace", "  https://example.org/np \n", "https://example.org/np"},
		{"both", " <https://example.org/np> ", "https://example.org/np"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURI(tt.in); got != tt.want {
				t.Errorf("SanitizeURI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsHTTP(t *testing.T) {
	tests := []struct {
		uri  string
		want bool
	}{
		{"https://example.org/x", true},
		{"http://example.org", true},
		{"ftp://example.org", false},
		{"urn:uuid:1234", false},
		{"https://", false},
		{"not a uri", false},
	}
	for _, tt := range tests {
		if got := IsHTTP(tt.uri); got != tt.want {
			t.Errorf("IsHTTP(%q) = %v, want %v", tt.uri, got, tt.want)
		}
	}
}

func TestLastPathSegment(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"https://example.org/np/RA123", "RA123"},
		{"https://example.org/np/", ""},
		{"RA123", "RA123"},
	}
	for _, tt := range tests {
		if got := LastPathSegment(tt.uri); got != tt.want {
			t.Errorf("LastPathSegment(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestLabelFromURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"fragment wins", "https://example.org/vocab#Persistent-Identifier", "Persistent Identifier"},
		{"path segment", "https://example.org/terms/handle_system", "handle system"},
		{"trailing slash", "https://example.org/terms/", ""},
		{"no separators", "plainword", "plainword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelFromURI(tt.uri); got != tt.want {
				t.Errorf("LabelFromURI(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}
