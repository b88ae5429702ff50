package nanopub

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/annefou/FIP-Analyzer/pkg/rdf"
)

func indexQuad(pred, obj string) rdf.Quad {
	return rdf.Quad{
		Subject:   "http://purl.org/np/RAindex",
		Predicate: pred,
		Object:    obj,
		Graph:     "http://purl.org/np/RAindex#assertion",
	}
}

func TestExtractDeclarations_KnownPredicates(t *testing.T) {
	quads := []rdf.Quad{
		indexQuad("http://purl.org/nanopub/x/includesElement", "http://purl.org/np/RA1"),
		indexQuad("http://purl.org/nanopub/x/hasElement", "http://purl.org/np/RA2"),
		indexQuad("http://purl.org/nanopub/x/includes", "http://purl.org/np/RA3"),
		indexQuad("https://w3id.org/fair/fip/terms/has-declaration", "http://purl.org/np/RA4"),
		indexQuad("http://purl.org/nanopub/x/unrelated", "http://purl.org/np/RA5"),
	}

	got := ExtractDeclarations(quads, false, io.Discard)
	sort.Strings(got)

	want := []string{
		"http://purl.org/np/RA1",
		"http://purl.org/np/RA2",
		"http://purl.org/np/RA3",
		"http://purl.org/np/RA4",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d declarations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("declaration %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractDeclarations_Deduplicates(t *testing.T) {
	quads := []rdf.Quad{
		indexQuad("http://purl.org/nanopub/x/includesElement", "http://purl.org/np/RA1"),
		indexQuad("http://purl.org/nanopub/x/includesElement", "http://purl.org/np/RA1"),
		indexQuad("http://purl.org/nanopub/x/hasElement", "http://purl.org/np/RA1"),
	}
	got := ExtractDeclarations(quads, false, io.Discard)
	if len(got) != 1 {
		t.Errorf("got %d declarations, want 1 after deduplication: %v", len(got), got)
	}
}

func TestExtractDeclarations_SubstringNotEnough(t *testing.T) {
	// index predicates match exactly, unlike the header rules
	quads := []rdf.Quad{
		indexQuad("http://purl.org/nanopub/x/includesElementV2", "http://purl.org/np/RA1"),
	}
	if got := ExtractDeclarations(quads, false, io.Discard); len(got) != 0 {
		t.Errorf("got %v, want no declarations for a near-miss predicate", got)
	}
}

func TestExtractDeclarations_EmptyIndex(t *testing.T) {
	if got := ExtractDeclarations(nil, false, io.Discard); got != nil {
		t.Errorf("got %v, want nil for empty index", got)
	}
}

func TestExtractDeclarations_DebugDumpSkipsHead(t *testing.T) {
	quads := []rdf.Quad{
		{
			Subject:   "http://purl.org/np/RAindex",
			Predicate: "http://www.nanopub.org/nschema#hasAssertion",
			Object:    "http://purl.org/np/RAindex#assertion",
			Graph:     "http://purl.org/np/RAindex#Head",
		},
		indexQuad("http://purl.org/nanopub/x/includesElement", "http://purl.org/np/RA1"),
	}

	var buf strings.Builder
	ExtractDeclarations(quads, true, &buf)
	out := buf.String()

	if strings.Contains(out, "hasAssertion") {
		t.Error("debug dump should not include the Head graph")
	}
	if !strings.Contains(out, "includesElement") {
		t.Error("debug dump should include the assertion graph")
	}
	if !strings.Contains(out, "Found declaration") {
		t.Error("debug output should mark found declarations")
	}
}
