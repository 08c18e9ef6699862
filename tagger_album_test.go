package tagmatch

import (
	"context"
	"errors"
	"testing"
)

func okComputerAlbum(id string) AlbumInfo {
	return AlbumInfo{
		AlbumID: id,
		Album:   "OK Computer",
		Artist:  "Radiohead",
		Tracks: []TrackInfo{
			{ID: "t1", Title: "Airbag", Length: 284, HasLength: true},
			{ID: "t2", Title: "Paranoid Android", Length: 383, HasLength: true},
		},
	}
}

func okComputerItems() []Item {
	one, two := 1, 2
	return []Item{
		{Artist: "Radiohead", Album: "OK Computer", Title: "Airbag", Track: &one, Length: 284},
		{Artist: "Radiohead", Album: "OK Computer", Title: "Paranoid Android", Track: &two, Length: 383},
	}
}

func TestTagAlbumEmptyItems(t *testing.T) {
	_, err := TagAlbum(context.Background(), nil, &fakeCatalog{}, nil, false, nil, nil)
	if err != ErrInsufficientMetadata {
		t.Errorf("err = %v, want ErrInsufficientMetadata", err)
	}
}

func TestTagAlbumIDShortCircuitNonInteractive(t *testing.T) {
	items := okComputerItems()
	items[0].CatalogAlbumID = "X"
	items[1].CatalogAlbumID = "X"

	album := okComputerAlbum("X")
	catalog := &fakeCatalog{albumByID: map[string]*AlbumInfo{"X": &album}}

	result, err := TagAlbum(context.Background(), items, catalog, nil, false, nil, nil)
	if err != nil {
		t.Fatalf("TagAlbum error: %v", err)
	}
	if result.Recommendation != RecommendationStrong {
		t.Fatalf("Recommendation = %v, want strong", result.Recommendation)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("len(Candidates) = %d, want 1 (short-circuited before search)", len(result.Candidates))
	}
}

func TestTagAlbumIDCompetesWhenInteractive(t *testing.T) {
	items := okComputerItems()
	items[0].CatalogAlbumID = "X"
	items[1].CatalogAlbumID = "X"

	idAlbum := okComputerAlbum("X")
	searchAlbum := okComputerAlbum("Y")
	catalog := &fakeCatalog{
		albumByID: map[string]*AlbumInfo{"X": &idAlbum},
		albums:    []AlbumInfo{searchAlbum},
	}

	result, err := TagAlbum(context.Background(), items, catalog, nil, true, nil, nil)
	if err != nil {
		t.Fatalf("TagAlbum error: %v", err)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2 (ID candidate competes with search)", len(result.Candidates))
	}
}

func TestTagAlbumDedupesByAlbumID(t *testing.T) {
	items := okComputerItems()
	album := okComputerAlbum("same-id")
	catalog := &fakeCatalog{albums: []AlbumInfo{album, album}}

	result, err := TagAlbum(context.Background(), items, catalog, nil, false, nil, nil)
	if err != nil {
		t.Fatalf("TagAlbum error: %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("len(Candidates) = %d, want 1 after dedup", len(result.Candidates))
	}
}

func TestTagAlbumVAFallbackTriggersOnNonConsensus(t *testing.T) {
	one, two := 1, 2
	items := []Item{
		{Artist: "Thom Yorke", Album: "Mixtape", Title: "A", Track: &one, Length: 200},
		{Artist: "Jonny Greenwood", Album: "Mixtape", Title: "B", Track: &two, Length: 200},
	}
	primary := AlbumInfo{AlbumID: "primary", Album: "Mixtape", Artist: "Thom Yorke", Tracks: []TrackInfo{
		{ID: "p1", Title: "A", Length: 200, HasLength: true},
		{ID: "p2", Title: "B", Length: 200, HasLength: true},
	}}
	va := AlbumInfo{AlbumID: "va", Album: "Mixtape", VA: true, Tracks: []TrackInfo{
		{ID: "v1", Title: "A", Artist: "Thom Yorke", Length: 200, HasLength: true},
		{ID: "v2", Title: "B", Artist: "Jonny Greenwood", Length: 200, HasLength: true},
	}}
	catalog := &fakeCatalog{albums: []AlbumInfo{primary}, vaAlbums: []AlbumInfo{va}}

	result, err := TagAlbum(context.Background(), items, catalog, nil, false, nil, nil)
	if err != nil {
		t.Fatalf("TagAlbum error: %v", err)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2 (primary and VA both present)", len(result.Candidates))
	}
}

func TestTagAlbumNoSearchTermsYieldsEmptyNone(t *testing.T) {
	items := []Item{{Title: "untagged"}}
	result, err := TagAlbum(context.Background(), items, &fakeCatalog{}, nil, false, nil, nil)
	if err != nil {
		t.Fatalf("TagAlbum error: %v", err)
	}
	if len(result.Candidates) != 0 || result.Recommendation != RecommendationNone {
		t.Errorf("got %+v, want empty/none", result)
	}
}

func TestTagAlbumWithThresholdsAppliesCustomCutoffsToIDShortCircuit(t *testing.T) {
	items := okComputerItems()
	items[0].CatalogAlbumID = "X"
	items[1].CatalogAlbumID = "X"

	album := okComputerAlbum("X")
	catalog := &fakeCatalog{albumByID: map[string]*AlbumInfo{"X": &album}}

	// A Strong threshold of 0 can never be cleared, so the exact-match ID
	// candidate must fall through to search instead of short-circuiting.
	strict := Thresholds{Strong: 0, Medium: DefaultThresholds().Medium, Gap: DefaultThresholds().Gap}

	result, err := TagAlbumWithThresholds(context.Background(), items, catalog, nil, false, strict, nil, nil)
	if err != nil {
		t.Fatalf("TagAlbumWithThresholds error: %v", err)
	}
	if result.Recommendation == RecommendationStrong {
		t.Fatalf("Recommendation = strong, want non-strong under a Strong threshold of 0")
	}
}

func TestTagAlbumPropagatesCatalogError(t *testing.T) {
	items := okComputerItems()
	catalog := &fakeCatalog{failAlbums: true}
	_, err := TagAlbum(context.Background(), items, catalog, nil, false, nil, nil)
	if err == nil {
		t.Fatal("expected an error from a failing catalog call")
	}
	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		t.Errorf("err = %v, want *CatalogError", err)
	}
}
