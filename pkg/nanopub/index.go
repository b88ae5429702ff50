package nanopub

import (
	"fmt"
	"io"
	"strings"

	"github.com/annefou/FIP-Analyzer/pkg/rdf"
)

// indexPredicates are the membership predicates recognized in declaration
// indexes, matched exactly. includesElement is what FIP Wizard publishes;
// the other three are historical forms still found on the network.
var indexPredicates = map[string]bool{
	"http://purl.org/nanopub/x/includesElement":   true,
	"http://purl.org/nanopub/x/hasElement":        true,
	"http://purl.org/nanopub/x/includes":          true,
	"https://w3id.org/fair/fip/terms/has-declaration": true,
}

// ExtractDeclarations collects the declaration URIs referenced by an index
// nanopublication. The result is deduplicated; order is unspecified. With
// debug enabled, every quad outside the Head graph is dumped to w as a
// diagnostic aid for indexes that use yet another membership predicate.
func ExtractDeclarations(quads []rdf.Quad, debug bool, w io.Writer) []string {
	if debug {
		dumpIndex(quads, w)
	}

	seen := make(map[string]bool)
	var declarations []string
	for _, q := range quads {
		if !indexPredicates[q.Predicate] {
			continue
		}
		if seen[q.Object] {
			continue
		}
		seen[q.Object] = true
		declarations = append(declarations, q.Object)
		if debug {
			fmt.Fprintf(w, "   ✓ Found declaration: %s\n", truncate(q.Object, 70))
		}
	}
	return declarations
}

func dumpIndex(quads []rdf.Quad, w io.Writer) {
	fmt.Fprintln(w, "\n   DEBUG: All quads in index nanopublication:")
	for _, graph := range rdf.GraphNames(quads) {
		// the Head graph only wires the nanopub together; skip it
		// unless it doubles as the assertion graph
		if strings.Contains(graph, "Head") && !strings.Contains(strings.ToLower(graph), "assertion") {
			continue
		}
		fmt.Fprintf(w, "\n   Graph: %s\n", graph)
		for _, q := range rdf.InGraph(quads, graph) {
			fmt.Fprintf(w, "      %s\n", q.Subject)
			fmt.Fprintf(w, "        --[%s]-->\n", q.Predicate)
			fmt.Fprintf(w, "        %s\n\n", q.Object)
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
