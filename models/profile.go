package models

// ProfileInfo holds the header metadata of a FAIR Implementation Profile.
// Every field is optional: a field the source never mentions stays empty.
// Populated in a single parse pass and not mutated afterwards.
type ProfileInfo struct {
	Label            string   `json:"label,omitempty"`
	Description      string   `json:"description,omitempty"`
	Version          string   `json:"version,omitempty"`
	DeclaredBy       string   `json:"declared_by,omitempty"`
	DeclarationIndex string   `json:"declaration_index,omitempty"`
	Creators         []string `json:"creators,omitempty"`
	Created          string   `json:"created,omitempty"`
	WizardSource     string   `json:"wizard_source,omitempty"`

	// Language is the detected language of Description. Filled by
	// enrichment (--enrich), never by header parsing.
	Language string `json:"language,omitempty"`
}
