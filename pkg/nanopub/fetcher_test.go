package nanopub

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/annefou/FIP-Analyzer/models"
)

const testTrig = `@prefix ex: <http://example.org/> .
ex:s ex:p ex:o .
`

// newTestServer serves per-path status codes and counts hits.
func newTestServer(t *testing.T, responses map[string]int) (*httptest.Server, func(path string) int) {
	t.Helper()

	var mu sync.Mutex
	hits := make(map[string]int)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()

		status, ok := responses[r.URL.Path]
		if !ok {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(testTrig))
		}
	}))
	t.Cleanup(server.Close)

	return server, func(path string) int {
		mu.Lock()
		defer mu.Unlock()
		return hits[path]
	}
}

func newTestFetcher(mirrors ...string) *Fetcher {
	cfg := models.DefaultConfig()
	cfg.Mirrors = mirrors
	cfg.TimeoutSeconds = 5
	return NewFetcher(cfg, nil)
}

func TestFetch_FallsThroughToThirdCandidate(t *testing.T) {
	server, hits := newTestServer(t, map[string]int{
		"/np/RAxyz.trig": http.StatusNotFound,       // candidate 1: the URI itself
		"/m1/RAxyz.trig": http.StatusInternalServerError, // candidate 2
		"/m2/RAxyz.trig": http.StatusOK,             // candidate 3
		"/m3/RAxyz.trig": http.StatusOK,             // candidate 4, must not be reached
	})

	f := newTestFetcher(server.URL+"/m1", server.URL+"/m2", server.URL+"/m3")

	quads, err := f.Fetch(server.URL + "/np/RAxyz")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if len(quads) != 1 {
		t.Fatalf("Fetch() returned %d quads, want 1 from candidate 3", len(quads))
	}
	if quads[0].Subject != "http://example.org/s" {
		t.Errorf("quad subject = %q", quads[0].Subject)
	}

	for path, want := range map[string]int{
		"/np/RAxyz.trig": 1,
		"/m1/RAxyz.trig": 1,
		"/m2/RAxyz.trig": 1,
		"/m3/RAxyz.trig": 0,
	} {
		if got := hits(path); got != want {
			t.Errorf("%s hit %d times, want %d", path, got, want)
		}
	}
}

func TestFetch_AllCandidatesFail(t *testing.T) {
	server, _ := newTestServer(t, nil) // everything 404s

	f := newTestFetcher(server.URL + "/m1")

	quads, err := f.Fetch(server.URL + "/np/RAxyz")
	if err != nil {
		t.Fatalf("Fetch() should not error on unavailable publications: %v", err)
	}
	if quads != nil {
		t.Errorf("Fetch() = %v, want nil for unavailable publication", quads)
	}
}

func TestFetch_SendsAcceptHeader(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(testTrig))
	}))
	defer server.Close()

	f := newTestFetcher()
	if _, err := f.Fetch(server.URL + "/np/RAxyz"); err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if gotAccept != "application/trig" {
		t.Errorf("Accept header = %q, want application/trig", gotAccept)
	}
}

func TestCandidates_Order(t *testing.T) {
	f := newTestFetcher("https://np.petapico.org", "https://w3id.org/np")

	got := f.Candidates("http://purl.org/np/RAabc123", "trig")
	want := []string{
		"http://purl.org/np/RAabc123.trig",
		"https://np.petapico.org/RAabc123.trig",
		"https://w3id.org/np/RAabc123.trig",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFetch_UnparseableBodySkipped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/np/RAxyz.trig", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%% not rdf %%"))
	})
	mux.HandleFunc("/m1/RAxyz.trig", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testTrig))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := newTestFetcher(server.URL + "/m1")
	quads, err := f.Fetch(server.URL + "/np/RAxyz")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want the mirror's parseable graph", len(quads))
	}
}
