// Package profile extracts FIP header metadata from a parsed quad set.
package profile

import (
	"strings"

	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/rdf"
)

// headerRule maps a predicate substring to the header field it fills.
// Matching the string form of the predicate by substring is deliberate:
// nanopublication producers drift between vocabularies, and an explicit
// rule list keeps that tolerance auditable and extensible.
type headerRule struct {
	substring string
	// exactCase skips the lowercase normalization. Only the wizard
	// provenance rule needs it: the producing tool emits the camel-cased
	// prov:wasDerivedFrom and nothing else should match.
	exactCase bool
	// accept can further constrain the quad; nil accepts every match.
	accept func(q rdf.Quad) bool
	assign func(info *models.ProfileInfo, q rdf.Quad)
}

var headerRules = []headerRule{
	{
		substring: "label",
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.Label = q.Object },
	},
	{
		substring: "description",
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.Description = q.Object },
	},
	{
		substring: "version",
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.Version = q.Object },
	},
	{
		substring: "declared-by",
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.DeclaredBy = q.Object },
	},
	{
		substring: "declaration-index",
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.DeclarationIndex = q.Object },
	},
	{
		substring: "creator",
		accept:    func(q rdf.Quad) bool { return strings.Contains(q.Object, "orcid.org") },
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.Creators = append(info.Creators, q.Object) },
	},
	{
		substring: "created",
		accept:    func(q rdf.Quad) bool { return q.IsLiteral },
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.Created = q.Object },
	},
	{
		substring: "wasDerivedFrom",
		exactCase: true,
		accept:    func(q rdf.Quad) bool { return strings.Contains(q.Object, "fip/wizard") },
		assign:    func(info *models.ProfileInfo, q rdf.Quad) { info.WizardSource = q.Object },
	},
}

// Extract builds the profile header from a quad set in a single pass.
// Every rule is applied independently to every quad, so for singular
// fields the last matching quad in file order wins. Quads keep the file's
// statement order, which makes the winner deterministic per file — though
// producers should not rely on it when they emit conflicting statements.
// Missing fields stay empty; Extract never fails on well-formed quads.
func Extract(quads []rdf.Quad) *models.ProfileInfo {
	info := &models.ProfileInfo{}

	for _, q := range quads {
		lower := strings.ToLower(q.Predicate)
		for _, rule := range headerRules {
			pred := lower
			if rule.exactCase {
				pred = q.Predicate
			}
			if !strings.Contains(pred, rule.substring) {
				continue
			}
			if rule.accept != nil && !rule.accept(q) {
				continue
			}
			rule.assign(info, q)
		}
	}

	return info
}
