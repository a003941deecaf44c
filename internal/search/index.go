package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// ArtistIndex wraps an in-memory Bleve index over the discovery feed.
//
// Thread safety: all public methods are safe for concurrent use. Replace
// builds a fresh index off to the side and swaps it in under the write
// lock, so searches never observe a half-built index.
type ArtistIndex struct {
	mu    sync.RWMutex
	index bleve.Index
}

// NewArtistIndex creates an empty in-memory index.
func NewArtistIndex() (*ArtistIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &ArtistIndex{index: index}, nil
}

// Replace rebuilds the index from the given documents and swaps it in.
func (s *ArtistIndex) Replace(docs []*ArtistDocument) error {
	next, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := next.NewBatch()
	for _, doc := range docs {
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	if err := next.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	s.mu.Lock()
	old := s.index
	s.index = next
	s.mu.Unlock()

	return old.Close()
}

// Hit is a single search result.
type Hit struct {
	ID        string  `json:"id"`
	Score     float64 `json:"score"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty,omitempty"`
	Location  string  `json:"location,omitempty"`
	BoothName string  `json:"booth_name,omitempty"`
}

// Search runs a text query over names, specialties, locations, bios and
// booth names. Name matches rank highest; a fuzzy clause gives one edit of
// typo tolerance.
func (s *ArtistIndex) Search(ctx context.Context, q string, limit int) ([]Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	req := bleve.NewSearchRequestOptions(buildArtistQuery(q), limit, 0, false)
	req.Fields = []string{"name", "specialty", "location", "booth_name"}
	req.SortBy([]string{"-_score"})

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := Hit{ID: h.ID, Score: h.Score}
		if v, ok := h.Fields["name"].(string); ok {
			hit.Name = v
		}
		if v, ok := h.Fields["specialty"].(string); ok {
			hit.Specialty = v
		}
		if v, ok := h.Fields["location"].(string); ok {
			hit.Location = v
		}
		if v, ok := h.Fields["booth_name"].(string); ok {
			hit.BoothName = v
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// DocumentCount returns the number of indexed artists.
func (s *ArtistIndex) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Close releases the index.
func (s *ArtistIndex) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

func buildArtistQuery(q string) query.Query {
	q = strings.TrimSpace(q)
	if q == "" {
		return bleve.NewMatchAllQuery()
	}

	clauses := []query.Query{}

	nameMatch := bleve.NewMatchQuery(q)
	nameMatch.SetField("name")
	nameMatch.SetBoost(3.0)
	clauses = append(clauses, nameMatch)

	for _, field := range []string{"specialty", "location", "bio", "booth_name"} {
		m := bleve.NewMatchQuery(q)
		m.SetField(field)
		clauses = append(clauses, m)
	}

	fuzzy := bleve.NewFuzzyQuery(q)
	fuzzy.SetFuzziness(1)
	fuzzy.SetField("name")
	fuzzy.SetBoost(0.8)
	clauses = append(clauses, fuzzy)

	if len(q) >= 2 {
		prefix := bleve.NewPrefixQuery(strings.ToLower(q))
		prefix.SetField("name")
		prefix.SetBoost(0.5)
		clauses = append(clauses, prefix)
	}

	return bleve.NewDisjunctionQuery(clauses...)
}
