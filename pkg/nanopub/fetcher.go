// Package nanopub fetches nanopublications from the network and interprets
// FIP declaration and index graphs.
package nanopub

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/annefou/FIP-Analyzer/internal/common"
	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/rdf"
)

// DefaultFormat is the serialization requested from nanopub servers.
const DefaultFormat = "trig"

const acceptHeader = "application/trig"

// Fetcher retrieves nanopublications. It tries the publication's own URI
// first, then each configured mirror, and returns the first graph that
// parses. All-candidates-failed is an unavailable condition, not an error.
type Fetcher struct {
	client  *http.Client
	mirrors []string
	logger  *slog.Logger
}

// NewFetcher builds a fetcher from the runtime config.
func NewFetcher(cfg *models.Config, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Timeout()},
		mirrors: cfg.Mirrors,
		logger:  logger,
	}
}

// Candidates returns the ordered endpoint URLs tried for a nanopub URI.
func (f *Fetcher) Candidates(uri, format string) []string {
	uri = common.SanitizeURI(uri)
	id := common.LastPathSegment(uri)

	candidates := make([]string, 0, len(f.mirrors)+1)
	candidates = append(candidates, fmt.Sprintf("%s.%s", uri, format))
	for _, mirror := range f.mirrors {
		candidates = append(candidates, fmt.Sprintf("%s/%s.%s", mirror, id, format))
	}
	return candidates
}

// Fetch retrieves the nanopublication at uri as a quad graph. Candidates
// are tried strictly in order; each failing candidate is skipped silently
// (logged at debug level only). Returns (nil, nil) when every candidate
// fails — the caller decides how loudly to report that.
func (f *Fetcher) Fetch(uri string) ([]rdf.Quad, error) {
	for _, endpoint := range f.Candidates(uri, DefaultFormat) {
		quads, ok := f.tryEndpoint(endpoint)
		if ok {
			return quads, nil
		}
	}
	return nil, nil
}

func (f *Fetcher) tryEndpoint(endpoint string) ([]rdf.Quad, bool) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		f.logger.Debug("skipping malformed endpoint", "endpoint", endpoint, "error", err)
		return nil, false
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("endpoint unreachable", "endpoint", endpoint, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug("endpoint returned non-200", "endpoint", endpoint, "status", resp.StatusCode)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Debug("failed to read response body", "endpoint", endpoint, "error", err)
		return nil, false
	}

	quads, err := rdf.Parse(string(body))
	if err != nil {
		f.logger.Debug("response body did not parse", "endpoint", endpoint, "error", err)
		return nil, false
	}
	return quads, true
}
