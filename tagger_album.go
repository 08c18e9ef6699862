package tagmatch

import (
	"context"
	"strings"

	"github.com/ambrevar/tagmatch/internal/score"
)

// AlbumTagResult is the outcome of TagAlbum: the plurality metadata observed
// across items, the ranked candidates, and the overall recommendation.
type AlbumTagResult struct {
	CurrentArtist  string
	CurrentAlbum   string
	Candidates     []Candidate
	Recommendation Recommendation
}

// TagAlbum runs the album tagger state machine using DefaultThresholds() to
// classify results: catalog-ID match, text search, various-artists fallback
// search, external plugin candidates, then ranking. plugins may be nil,
// equivalent to NoPlugins. searchArtist/searchAlbum are optional explicit
// overrides for the search terms that would otherwise be derived from
// items' own tags; pass nil to use the derived terms.
//
// TagAlbum returns ErrInsufficientMetadata only when items is empty (no
// plurality metadata, no catalog ID, and no caller-supplied search terms
// possible). Any other case that cannot form a search term returns an empty,
// NONE-recommended result instead.
func TagAlbum(ctx context.Context, items []Item, catalog Catalog, plugins PluginSource, interactiveAutotag bool, searchArtist, searchAlbum *string) (AlbumTagResult, error) {
	return TagAlbumWithThresholds(ctx, items, catalog, plugins, interactiveAutotag, DefaultThresholds(), searchArtist, searchAlbum)
}

// TagAlbumWithThresholds is TagAlbum with caller-supplied recommendation
// cutoffs in place of DefaultThresholds() — including for the interim
// STRONG short-circuit on a catalog-ID match.
func TagAlbumWithThresholds(ctx context.Context, items []Item, catalog Catalog, plugins PluginSource, interactiveAutotag bool, thresholds Thresholds, searchArtist, searchAlbum *string) (AlbumTagResult, error) {
	if plugins == nil {
		plugins = NoPlugins
	}
	if len(items) == 0 {
		return AlbumTagResult{}, ErrInsufficientMetadata
	}

	curArtist, curAlbum, artistConsensus := score.CurrentMetadata(items)
	results := newCandidateSet()

	// Step 2: catalog-ID match.
	if id, ok := consensusAlbumID(items); ok {
		album, err := catalog.AlbumByID(ctx, id)
		if err != nil {
			return AlbumTagResult{}, &CatalogError{Op: "album by id", Err: err}
		}
		if album != nil {
			if err := validate(ctx, items, *album, plugins, results); err != nil {
				return AlbumTagResult{}, err
			}
			if !interactiveAutotag {
				sorted := results.sorted()
				if rec := RecommendCandidatesWithThresholds(sorted, thresholds); rec == RecommendationStrong {
					return AlbumTagResult{curArtist, curAlbum, sorted, rec}, nil
				}
			}
		}
	}

	// Step 3: choose search terms.
	termArtist, termAlbum := curArtist, curAlbum
	if searchArtist != nil && searchAlbum != nil {
		termArtist, termAlbum = *searchArtist, *searchAlbum
	}

	// Step 4: primary search.
	if termArtist != "" && termAlbum != "" {
		artistCopy := termArtist
		albums, err := catalog.MatchAlbum(ctx, &artistCopy, termAlbum, len(items), MaxCandidates)
		if err != nil {
			return AlbumTagResult{}, &CatalogError{Op: "match album", Err: err}
		}
		for _, album := range albums {
			if err := validate(ctx, items, album, plugins, results); err != nil {
				return AlbumTagResult{}, err
			}
		}
	}

	// Step 5: various-artists fallback search.
	if termAlbum != "" && (!artistConsensus || IsVAArtist(termArtist) || anyCompilation(items)) {
		albums, err := catalog.MatchAlbum(ctx, nil, termAlbum, len(items), MaxCandidates)
		if err != nil {
			return AlbumTagResult{}, &CatalogError{Op: "match album (va)", Err: err}
		}
		for _, album := range albums {
			if err := validate(ctx, items, album, plugins, results); err != nil {
				return AlbumTagResult{}, err
			}
		}
	}

	// Step 6: external plugin candidates.
	extAlbums, err := plugins.AlbumCandidates(ctx, items)
	if err != nil {
		return AlbumTagResult{}, &CatalogError{Op: "plugin album candidates", Err: err}
	}
	for _, album := range extAlbums {
		if err := validate(ctx, items, album, plugins, results); err != nil {
			return AlbumTagResult{}, err
		}
	}

	sorted := results.sorted()
	return AlbumTagResult{curArtist, curAlbum, sorted, RecommendCandidatesWithThresholds(sorted, thresholds)}, nil
}

// consensusAlbumID collects every non-empty, whitespace-trimmed
// CatalogAlbumID across items and reports the shared value when they are
// all equal.
func consensusAlbumID(items []Item) (string, bool) {
	var id string
	seen := false
	for _, it := range items {
		v := strings.TrimSpace(it.CatalogAlbumID)
		if v == "" {
			continue
		}
		if !seen {
			id, seen = v, true
			continue
		}
		if v != id {
			return "", false
		}
	}
	return id, seen
}

func anyCompilation(items []Item) bool {
	for _, it := range items {
		if it.Compilation {
			return true
		}
	}
	return false
}
