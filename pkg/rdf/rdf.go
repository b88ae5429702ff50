// Package rdf provides a minimal quad model and a tolerant parser for the
// TriG family of RDF serializations (TriG, Turtle, N-Quads, N-Triples).
// It keeps just enough structure for predicate/object matching: every term
// is carried as its string form, the way downstream matching consumes it.
package rdf

import (
	"fmt"
	"os"
)

// Quad is one (subject, predicate, object, graph) statement.
// Never mutated after parsing.
type Quad struct {
	Subject   string
	Predicate string
	Object    string
	// Graph is the named graph IRI, empty for the default graph.
	Graph string
	// IsLiteral is true when Object is a literal value rather than an IRI.
	IsLiteral bool
}

// ParseFile reads path and parses it as a quad document.
func ParseFile(path string) ([]Quad, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	quads, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return quads, nil
}

// GraphNames returns the distinct graph IRIs in quad order of first use.
func GraphNames(quads []Quad) []string {
	seen := make(map[string]bool)
	var names []string
	for _, q := range quads {
		if !seen[q.Graph] {
			seen[q.Graph] = true
			names = append(names, q.Graph)
		}
	}
	return names
}

// InGraph returns the quads belonging to the named graph.
func InGraph(quads []Quad, graph string) []Quad {
	var out []Quad
	for _, q := range quads {
		if q.Graph == graph {
			out = append(out, q)
		}
	}
	return out
}
