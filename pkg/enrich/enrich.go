// Package enrich augments a profile with metadata that is not in the
// declarations themselves. It rewrites resource labels that had to be
// derived from a URI with the title of the resource's landing page, and
// detects the language of the profile description. Everything here is
// best effort: failures are logged and skipped.
package enrich

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/annefou/FIP-Analyzer/internal/common"
	"github.com/annefou/FIP-Analyzer/models"
)

const (
	maxBodyBytes   = 1 << 20
	maxLabelLength = 80
	minDetectChars = 20
)

type Enricher struct {
	client   *http.Client
	logger   *slog.Logger
	detector lingua.LanguageDetector
}

func NewEnricher(logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	languages := []lingua.Language{
		lingua.English, lingua.French, lingua.German,
		lingua.Spanish, lingua.Dutch, lingua.Portuguese,
	}
	return &Enricher{
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// DetectLanguage fills info.Language from the profile description. Very
// short descriptions are skipped, the detector is unreliable on them.
func (e *Enricher) DetectLanguage(info *models.ProfileInfo) {
	text := strings.TrimSpace(info.Description)
	if len(text) < minDetectChars {
		return
	}
	lang, ok := e.detector.DetectLanguageOf(text)
	if !ok {
		return
	}
	info.Language = lang.String()
}

// Declarations rewrites URI-derived labels with the landing page title of
// the resource. Declarations with a declared label are left alone.
func (e *Enricher) Declarations(decls []models.Declaration) {
	for i := range decls {
		d := &decls[i]
		if !d.LabelFromURI || !common.IsHTTP(d.ResourceURI) {
			continue
		}
		label, excerpt, err := e.pageLabel(d.ResourceURI)
		if err != nil {
			e.logger.Debug("skipping label enrichment", "uri", d.ResourceURI, "error", err)
			continue
		}
		if label != "" {
			e.logger.Debug("enriched label", "uri", d.ResourceURI, "label", label, "excerpt", excerpt)
			d.ResourceLabel = label
			d.LabelFromURI = false
		}
	}
}

// pageLabel fetches the resource landing page and extracts a display
// title, preferring the document title over the readability article. The
// article excerpt comes along for debug output.
func (e *Enricher) pageLabel(rawURL string) (string, string, error) {
	resp, err := e.client.Get(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to read response body: %w", err)
	}

	var excerpt, articleTitle, siteName string
	if parsedURL, err := url.Parse(rawURL); err == nil {
		parser := readability.NewParser()
		if article, err := parser.Parse(strings.NewReader(string(body)), parsedURL); err == nil {
			excerpt = article.Excerpt
			articleTitle = cleanTitle(article.Title)
			siteName = cleanTitle(article.SiteName)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	if title := cleanTitle(doc.Find("title").First().Text()); title != "" {
		return title, excerpt, nil
	}
	if articleTitle != "" {
		return articleTitle, excerpt, nil
	}
	return siteName, excerpt, nil
}

// cleanTitle trims whitespace, drops a trailing "| Site Name" segment and
// caps the length so labels stay readable in the report.
func cleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	if idx := strings.LastIndex(title, " | "); idx > 0 {
		title = title[:idx]
	}
	if len(title) > maxLabelLength {
		title = strings.TrimSpace(title[:maxLabelLength])
	}
	return title
}
