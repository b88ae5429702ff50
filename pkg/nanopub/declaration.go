package nanopub

import (
	"fmt"
	"io"
	"strings"

	"github.com/annefou/FIP-Analyzer/internal/common"
	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/rdf"
)

// questionMarker precedes the question id in FIP question URIs.
const questionMarker = "FIP-Question-"

// usagePredicates maps the declares-* predicate substrings to resource
// types. Substring matching tolerates vocabulary drift across producers,
// like the header rules do. Order matters only when a declaration breaks
// the one-assertion convention; later quads then overwrite earlier ones.
var usagePredicates = []struct {
	substring string
	kind      models.ResourceType
}{
	{"declares-current-use-of", models.ResourceCurrent},
	{"declares-planned-use-of", models.ResourcePlanned},
	{"declares-planned-replacement-of", models.ResourceReplacement},
}

// ParseDeclaration interprets one declaration nanopublication: which FAIR
// question it answers and which resource it declares. A result without a
// QuestionID is unclassifiable and should be discarded by the caller.
func ParseDeclaration(quads []rdf.Quad, debug bool, w io.Writer) models.Declaration {
	decl := models.Declaration{ResourceType: models.ResourceCurrent}

	// first pass: subject → label lookup, used to name the resource
	labels := make(map[string]string)
	for _, q := range quads {
		if strings.Contains(strings.ToLower(q.Predicate), "label") {
			labels[q.Subject] = q.Object
		}
	}

	for _, q := range quads {
		pred := strings.ToLower(q.Predicate)

		if strings.Contains(pred, "refers-to-question") {
			decl.Question = q.Object
			decl.QuestionID = questionID(q.Object)
		}

		for _, usage := range usagePredicates {
			if strings.Contains(pred, usage.substring) {
				decl.ResourceURI = q.Object
				decl.ResourceType = usage.kind
			}
		}
	}

	if decl.ResourceURI != "" {
		if label, ok := labels[decl.ResourceURI]; ok {
			decl.ResourceLabel = label
		} else if fallback := common.LabelFromURI(decl.ResourceURI); fallback != "" {
			decl.ResourceLabel = fallback
			decl.LabelFromURI = true
		}
	}

	if debug && decl.QuestionID != "" {
		label := decl.ResourceLabel
		if label == "" {
			label = "Unknown"
		}
		fmt.Fprintf(w, "   Parsed: %s -> %s\n", decl.QuestionID, label)
	}

	return decl
}

// questionID extracts the short question id from a question URI: the part
// after the FIP-Question- marker, or the last path segment when it looks
// like a bare principle reference (starts with F, A, I or R).
func questionID(questionURI string) string {
	if idx := strings.LastIndex(questionURI, questionMarker); idx >= 0 {
		return questionURI[idx+len(questionMarker):]
	}
	seg := common.LastPathSegment(questionURI)
	if seg != "" && strings.ContainsAny(seg[:1], "FAIR") {
		return seg
	}
	return ""
}
