package catalog

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

const searchCacheSize = 256

type SearchResultKind string

const (
	SearchKindMascot SearchResultKind = "mascot"
	SearchKindItem   SearchResultKind = "item"
	SearchKindBadge  SearchResultKind = "badge"
)

type SearchResult struct {
	Kind  SearchResultKind `json:"kind"`
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Score int              `json:"score"`
}

// SearchService fuzzy-matches dashboard search queries against every catalog
// entry. Results are cached per normalized query since the catalog is fixed
// for the lifetime of the process.
type SearchService struct {
	names   []string
	results []SearchResult
	cache   *lru.Cache
}

func NewSearchService() *SearchService {
	cache, _ := lru.New(searchCacheSize)

	s := &SearchService{cache: cache}
	for _, m := range Mascots {
		s.names = append(s.names, m.Name)
		s.results = append(s.results, SearchResult{Kind: SearchKindMascot, ID: m.ID, Name: m.Name})
	}
	for _, it := range Items {
		s.names = append(s.names, it.Name)
		s.results = append(s.results, SearchResult{Kind: SearchKindItem, ID: it.ID, Name: it.Name})
	}
	for _, b := range Badges {
		s.names = append(s.names, b.Name)
		s.results = append(s.results, SearchResult{Kind: SearchKindBadge, ID: b.ID, Name: b.Name})
	}
	return s
}

func (s *SearchService) Search(query string) []SearchResult {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	if cached, ok := s.cache.Get(query); ok {
		return cached.([]SearchResult)
	}

	matches := fuzzy.Find(query, s.names)
	out := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		r := s.results[m.Index]
		r.Score = m.Score
		out = append(out, r)
	}

	s.cache.Add(query, out)
	return out
}
