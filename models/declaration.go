package models

// ResourceType distinguishes how an organization relates to a declared
// FAIR-enabling resource.
type ResourceType string

const (
	// ResourceCurrent marks a resource in current use. Default.
	ResourceCurrent ResourceType = "current"
	// ResourcePlanned marks a resource planned for future use.
	ResourcePlanned ResourceType = "planned"
	// ResourceReplacement marks a planned replacement of a current resource.
	ResourceReplacement ResourceType = "replacement"
)

// Declaration is one FIP declaration: which FAIR question it answers and
// which resource it declares for it.
type Declaration struct {
	// Question is the full question URI, e.g.
	// https://w3id.org/fair/fip/terms/FIP-Question-F1-D
	Question string `json:"question,omitempty"`

	// QuestionID is the short question identifier, e.g. "F1-D" or "A1.1-MD".
	// Empty means the declaration could not be classified and is dropped
	// by the caller.
	QuestionID string `json:"question_id,omitempty"`

	ResourceLabel string       `json:"resource_label,omitempty"`
	ResourceURI   string       `json:"resource_uri,omitempty"`
	ResourceType  ResourceType `json:"resource_type"`

	// LabelFromURI is true when ResourceLabel was derived from the URI
	// rather than declared. Enrichment only rewrites such labels.
	LabelFromURI bool `json:"-"`
}

// ResourceEntry is the display view of a declared resource.
type ResourceEntry struct {
	Label string       `json:"label"`
	URI   string       `json:"uri,omitempty"`
	Type  ResourceType `json:"type"`
}

// Entry converts a declaration to its display view. Falls back to the
// resource URI when no label could be determined at all.
func (d *Declaration) Entry() ResourceEntry {
	label := d.ResourceLabel
	if label == "" {
		label = d.ResourceURI
	}
	if label == "" {
		label = "Unknown"
	}
	return ResourceEntry{
		Label: label,
		URI:   d.ResourceURI,
		Type:  d.ResourceType,
	}
}
