// Package wizard reads FIP Wizard JSON exports as profile declarations.
// It is the second source adapter next to the nanopub parser: both produce
// models.Declaration so one organizer serves both pipelines.
package wizard

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/fair"
)

// ReadFile reads a FIP Wizard JSON export into a profile header and its
// declarations. Malformed JSON is fatal to the caller.
func ReadFile(path string) (*models.ProfileInfo, []models.Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return Read(data)
}

// Read parses the export document.
func Read(data []byte) (*models.ProfileInfo, []models.Declaration, error) {
	var export models.WizardExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON export: %w", err)
	}

	info := &models.ProfileInfo{
		Label:        export.Name,
		Description:  export.Description,
		Version:      export.Version,
		Creators:     export.Creators,
		DeclaredBy:   export.Community,
		Created:      export.Created,
		WizardSource: export.UUID,
	}
	// exports occasionally omit basic fields; the original tool's defaults
	if info.Label == "" {
		info.Label = "Unknown FIP"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}

	var declarations []models.Declaration
	for _, reply := range export.Replies {
		questionID, ok := matchQuestion(reply.Path)
		if !ok {
			continue
		}
		for _, item := range reply.Answer.Items {
			declarations = append(declarations, models.Declaration{
				QuestionID:    questionID,
				ResourceLabel: item.DisplayLabel(),
				ResourceURI:   item.ResourceURI(),
				ResourceType:  models.ResourceCurrent,
			})
		}
	}

	return info, declarations, nil
}

// matchQuestion finds the known question whose id appears in the reply
// path, case-insensitively, and returns the short id the organizer splits
// on (e.g. "F1-D", "A2-MD"). The id is rebuilt from the question table
// rather than the path so that questions without a side suffix (A2) still
// land on the right side.
func matchQuestion(path string) (string, bool) {
	lower := strings.ToLower(path)

	var best string
	for id := range fair.Questions {
		if !strings.Contains(lower, strings.ToLower(id)) {
			continue
		}
		// prefer the longest match: FIP-Question-A1.1-MD over FIP-Question-A1
		if len(id) > len(best) {
			best = id
		}
	}
	if best == "" {
		return "", false
	}

	q := fair.Questions[best]
	suffix := "D"
	if q.Side == "Metadata" {
		suffix = "MD"
	}
	return q.Principle + "-" + suffix, true
}
