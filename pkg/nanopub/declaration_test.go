package nanopub

import (
	"io"
	"strings"
	"testing"

	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/rdf"
)

func declQuad(subj, pred, obj string) rdf.Quad {
	return rdf.Quad{
		Subject:   subj,
		Predicate: pred,
		Object:    obj,
		Graph:     "http://purl.org/np/RAdecl#assertion",
	}
}

func TestParseDeclaration_QuestionID(t *testing.T) {
	tests := []struct {
		name        string
		questionURI string
		want        string
	}{
		{
			name:        "wizard question URI",
			questionURI: "https://w3id.org/fair/fip/terms/FIP-Question-F1-D",
			want:        "F1-D",
		},
		{
			name:        "metadata question",
			questionURI: "https://w3id.org/fair/fip/terms/FIP-Question-A1.1-MD",
			want:        "A1.1-MD",
		},
		{
			name:        "bare principle segment",
			questionURI: "https://w3id.org/fair/principles/terms/R1.2-D",
			want:        "R1.2-D",
		},
		{
			name:        "unrecognizable",
			questionURI: "https://example.org/questions/q42",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := ParseDeclaration([]rdf.Quad{
				declQuad("http://purl.org/np/RAdecl#assertion",
					"https://w3id.org/fair/fip/terms/refers-to-question",
					tt.questionURI),
			}, false, io.Discard)

			if decl.QuestionID != tt.want {
				t.Errorf("QuestionID = %q, want %q", decl.QuestionID, tt.want)
			}
			if decl.Question != tt.questionURI {
				t.Errorf("Question = %q, want the full URI", decl.Question)
			}
		})
	}
}

func TestParseDeclaration_ResourceTypes(t *testing.T) {
	tests := []struct {
		name      string
		predicate string
		want      models.ResourceType
	}{
		{"current use", "https://w3id.org/fair/fip/terms/declares-current-use-of", models.ResourceCurrent},
		{"planned use", "https://w3id.org/fair/fip/terms/declares-planned-use-of", models.ResourcePlanned},
		{"planned replacement", "https://w3id.org/fair/fip/terms/declares-planned-replacement-of", models.ResourceReplacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := ParseDeclaration([]rdf.Quad{
				declQuad("http://purl.org/np/RAdecl#assertion", tt.predicate, "https://doi.org"),
			}, false, io.Discard)

			if decl.ResourceURI != "https://doi.org" {
				t.Errorf("ResourceURI = %q", decl.ResourceURI)
			}
			if decl.ResourceType != tt.want {
				t.Errorf("ResourceType = %q, want %q", decl.ResourceType, tt.want)
			}
		})
	}
}

func TestParseDeclaration_DefaultsToCurrent(t *testing.T) {
	decl := ParseDeclaration(nil, false, io.Discard)
	if decl.ResourceType != models.ResourceCurrent {
		t.Errorf("ResourceType = %q, want current by default", decl.ResourceType)
	}
}

func TestParseDeclaration_LabelLookup(t *testing.T) {
	decl := ParseDeclaration([]rdf.Quad{
		declQuad("https://doi.org", "http://www.w3.org/2000/01/rdf-schema#label", "DOI"),
		declQuad("http://purl.org/np/RAdecl#assertion",
			"https://w3id.org/fair/fip/terms/declares-current-use-of",
			"https://doi.org"),
	}, false, io.Discard)

	if decl.ResourceLabel != "DOI" {
		t.Errorf("ResourceLabel = %q, want the declared label", decl.ResourceLabel)
	}
	if decl.LabelFromURI {
		t.Error("LabelFromURI should be false for a declared label")
	}
}

func TestParseDeclaration_LabelFallback(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"fragment", "https://example.org/vocab#Persistent-Identifier", "Persistent Identifier"},
		{"path segment", "https://example.org/resources/handle_system", "handle system"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := ParseDeclaration([]rdf.Quad{
				declQuad("http://purl.org/np/RAdecl#assertion",
					"https://w3id.org/fair/fip/terms/declares-current-use-of",
					tt.uri),
			}, false, io.Discard)

			if decl.ResourceLabel != tt.want {
				t.Errorf("ResourceLabel = %q, want %q", decl.ResourceLabel, tt.want)
			}
			if !decl.LabelFromURI {
				t.Error("LabelFromURI should be true for a derived label")
			}
		})
	}
}

func TestParseDeclaration_LaterUsageWins(t *testing.T) {
	decl := ParseDeclaration([]rdf.Quad{
		declQuad("http://purl.org/np/RAdecl#assertion",
			"https://w3id.org/fair/fip/terms/declares-current-use-of",
			"https://old.example"),
		declQuad("http://purl.org/np/RAdecl#assertion",
			"https://w3id.org/fair/fip/terms/declares-planned-use-of",
			"https://new.example"),
	}, false, io.Discard)

	if decl.ResourceURI != "https://new.example" || decl.ResourceType != models.ResourcePlanned {
		t.Errorf("got (%q, %q), later quads overwrite earlier ones",
			decl.ResourceURI, decl.ResourceType)
	}
}

func TestParseDeclaration_DebugOutput(t *testing.T) {
	var buf strings.Builder
	ParseDeclaration([]rdf.Quad{
		declQuad("http://purl.org/np/RAdecl#assertion",
			"https://w3id.org/fair/fip/terms/refers-to-question",
			"https://w3id.org/fair/fip/terms/FIP-Question-F1-D"),
		declQuad("http://purl.org/np/RAdecl#assertion",
			"https://w3id.org/fair/fip/terms/declares-current-use-of",
			"https://doi.org/some-handle"),
	}, true, &buf)

	if !strings.Contains(buf.String(), "F1-D") {
		t.Errorf("debug output %q should mention the question id", buf.String())
	}
}
