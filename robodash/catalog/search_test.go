package catalog

import "testing"

func TestSearchService_Search(t *testing.T) {
	s := NewSearchService()

	results := s.Search("scout")
	if len(results) == 0 {
		t.Fatal(`Search("scout") returned nothing`)
	}
	found := false
	for _, r := range results {
		if r.Kind == SearchKindMascot && r.ID == "robo-scout" {
			found = true
		}
	}
	if !found {
		t.Errorf(`Search("scout") = %+v, missing robo-scout`, results)
	}
}

func TestSearchService_MixedKinds(t *testing.T) {
	s := NewSearchService()

	// "wizard" only matches the crypto_wizard badge.
	results := s.Search("Wizard")
	if len(results) != 1 || results[0].Kind != SearchKindBadge || results[0].ID != "crypto_wizard" {
		t.Errorf(`Search("Wizard") = %+v, want the crypto_wizard badge`, results)
	}
}

func TestSearchService_EmptyQuery(t *testing.T) {
	s := NewSearchService()

	if got := s.Search("   "); got != nil {
		t.Errorf("blank query returned %+v, want nil", got)
	}
}

func TestSearchService_CacheHit(t *testing.T) {
	s := NewSearchService()

	first := s.Search("plating")
	second := s.Search("PLATING") // normalizes to the same cache key
	if len(first) != len(second) {
		t.Fatalf("cache returned %d results, fresh search returned %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result #%d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
