// Package report renders FIP profiles as console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/annefou/FIP-Analyzer/internal/common"
	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/fair"
)

const (
	bannerWidth  = 80
	sectionWidth = 60
)

func banner(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

func divider(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Render writes the full profile report: header fields when present, then
// every non-empty principle bucket in fixed order.
func Render(w io.Writer, info *models.ProfileInfo, table fair.Table) {
	banner(w)
	fmt.Fprintf(w, "FAIR IMPLEMENTATION PROFILE: %s\n", orDefault(info.Label, "Unknown"))
	banner(w)
	fmt.Fprintln(w)

	if info.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", info.Description)
	}
	if info.Language != "" {
		fmt.Fprintf(w, "Language: %s\n", info.Language)
	}
	if info.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", info.Version)
	}
	if len(info.Creators) > 0 {
		fmt.Fprintf(w, "Creators: %s\n", strings.Join(info.Creators, ", "))
	}
	if info.DeclaredBy != "" {
		fmt.Fprintf(w, "Declared by: %s\n", info.DeclaredBy)
	}

	fmt.Fprintln(w)
	divider(w)
	fmt.Fprintln(w, "FAIR-ENABLING RESOURCES BY PRINCIPLE")
	divider(w)

	for _, key := range fair.PrincipleOrder {
		bucket := table[key]
		if bucket == nil || bucket.Empty() {
			continue
		}

		fmt.Fprintf(w, "\n\n📋 %s\n", fair.PrincipleDescriptions[key])
		fmt.Fprintln(w, "   "+strings.Repeat("-", sectionWidth))

		renderResources(w, "📊 For DATA:", bucket.Data)
		renderResources(w, "📝 For METADATA:", bucket.Metadata)
	}

	fmt.Fprintln(w)
	banner(w)
}

func renderResources(w io.Writer, heading string, entries []models.ResourceEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "   %s\n", heading)
	for _, entry := range entries {
		status := ""
		if entry.Type == models.ResourcePlanned {
			status = " (planned)"
		}
		fmt.Fprintf(w, "      • %s%s\n", entry.Label, status)
		if entry.URI != "" {
			fmt.Fprintf(w, "        URI: %s\n", entry.URI)
		}
	}
}

// RenderHeaderOnly writes the local header-only view plus the hint for
// fetching full declarations.
func RenderHeaderOnly(w io.Writer, info *models.ProfileInfo, path string) {
	fmt.Fprintln(w)
	banner(w)
	fmt.Fprintf(w, "FAIR IMPLEMENTATION PROFILE: %s\n", orDefault(info.Label, "Unknown"))
	banner(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "📋 Description: %s\n", orDefault(info.Description, "N/A"))
	fmt.Fprintf(w, "📌 Version: %s\n", orDefault(info.Version, "N/A"))
	fmt.Fprintf(w, "👥 Creators: %s\n", orDefault(strings.Join(info.Creators, ", "), "N/A"))
	fmt.Fprintf(w, "🏢 Declared by: %s\n", orDefault(info.DeclaredBy, "N/A"))
	fmt.Fprintf(w, "📅 Created: %s\n", orDefault(info.Created, "N/A"))
	fmt.Fprintf(w, "🔗 Declaration Index: %s\n", orDefault(info.DeclarationIndex, "N/A"))
	fmt.Fprintf(w, "🧙 FIP Wizard Source: %s\n", orDefault(info.WizardSource, "N/A"))
	fmt.Fprintln(w)
	banner(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ℹ️  To fetch full declarations from the network, use:")
	fmt.Fprintf(w, "   fip-analyzer read %s --fetch\n", path)
	fmt.Fprintln(w)
}

// RenderIndexUnavailable writes the fallback advice shown when the
// declaration index could not be fetched from any endpoint.
func RenderIndexUnavailable(w io.Writer, info *models.ProfileInfo) {
	fmt.Fprintln(w, "⚠️  Could not fetch declaration index from network")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   This may be due to network restrictions. Alternatives:")
	fmt.Fprintln(w, "   1. Export the FIP as JSON from FIP Wizard and use:")
	fmt.Fprintln(w, "      fip-analyzer read <exported_file.json>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   2. Access the FIP directly in your browser:")
	if info.WizardSource != "" {
		project := common.LastPathSegment(info.WizardSource)
		fmt.Fprintf(w, "      https://fip.fair-wizard.com/projects/%s\n", project)
	}
	fmt.Fprintln(w)
}

// RenderEmptyIndexHint suggests --debug when an index resolved to nothing.
func RenderEmptyIndexHint(w io.Writer, path string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "⚠️  No declarations found in index. Run with --debug to see the index content:")
	fmt.Fprintf(w, "   fip-analyzer read %s --fetch --debug\n", path)
}
