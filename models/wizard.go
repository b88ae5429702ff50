package models

// WizardExport mirrors the JSON document exported by FIP Wizard.
type WizardExport struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Creators    []string      `json:"creators"`
	Community   string        `json:"community"`
	Created     string        `json:"created"`
	UUID        string        `json:"uuid"`
	Replies     []WizardReply `json:"replies"`
}

// WizardReply is one answered questionnaire item.
type WizardReply struct {
	// Path identifies the question, e.g. "...FIP-Question-F1-D...".
	Path   string       `json:"path"`
	Answer WizardAnswer `json:"answer"`
}

// WizardAnswer wraps the selected resources for one question.
type WizardAnswer struct {
	Items []WizardItem `json:"items"`
}

// WizardItem is one selected resource. Exports are inconsistent about
// which keys they use, so all observed variants are accepted.
type WizardItem struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	ID    string `json:"id"`
	URI   string `json:"uri"`
	URL   string `json:"url"`
}

// DisplayLabel picks the first non-empty of label, name, id.
func (i WizardItem) DisplayLabel() string {
	switch {
	case i.Label != "":
		return i.Label
	case i.Name != "":
		return i.Name
	case i.ID != "":
		return i.ID
	}
	return "Unknown"
}

// ResourceURI picks the first non-empty of uri, url.
func (i WizardItem) ResourceURI() string {
	if i.URI != "" {
		return i.URI
	}
	return i.URL
}
