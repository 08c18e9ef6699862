package tagmatch

import (
	"context"
	"sort"

	"github.com/ambrevar/tagmatch/internal/score"
)

// TrackTagResult is the outcome of TagTrack: ranked single-track candidates
// and the overall recommendation.
type TrackTagResult struct {
	Candidates     []TrackCandidate
	Recommendation Recommendation
}

// TagTrack runs the single-item tagger using DefaultThresholds() to classify
// the result. searchArtist/searchTitle are optional explicit overrides for
// the search terms that would otherwise come from item's own tags; pass nil
// to use item.Artist/item.Title.
func TagTrack(ctx context.Context, item Item, catalog Catalog, plugins PluginSource, searchArtist, searchTitle *string) (TrackTagResult, error) {
	return TagTrackWithThresholds(ctx, item, catalog, plugins, DefaultThresholds(), searchArtist, searchTitle)
}

// TagTrackWithThresholds is TagTrack with caller-supplied recommendation
// cutoffs in place of DefaultThresholds().
func TagTrackWithThresholds(ctx context.Context, item Item, catalog Catalog, plugins PluginSource, thresholds Thresholds, searchArtist, searchTitle *string) (TrackTagResult, error) {
	if plugins == nil {
		plugins = NoPlugins
	}

	var candidates []TrackCandidate

	addCandidate := func(track TrackInfo) error {
		addNum, addDen, err := plugins.TrackDistanceContribution(ctx, item, track)
		if err != nil {
			return &CatalogError{Op: "plugin track distance contribution", Err: err}
		}
		d := score.Track(item, track, nil, true, score.Contribution{Num: addNum, Den: addDen})
		candidates = append(candidates, TrackCandidate{Distance: d, Track: track})
		return nil
	}

	// Step 1: catalog track ID.
	if item.CatalogTrackID != "" {
		track, err := catalog.TrackByID(ctx, item.CatalogTrackID)
		if err != nil {
			return TrackTagResult{}, &CatalogError{Op: "track by id", Err: err}
		}
		if track != nil {
			if err := addCandidate(*track); err != nil {
				return TrackTagResult{}, err
			}
			sortTrackCandidates(candidates)
			if rec := recommendTracks(candidates, thresholds); rec == RecommendationStrong {
				return TrackTagResult{candidates, rec}, nil
			}
		}
	}

	// Step 2: search terms.
	termArtist, termTitle := item.Artist, item.Title
	if searchArtist != nil && searchTitle != nil {
		termArtist, termTitle = *searchArtist, *searchTitle
	}

	// Step 3: catalog search.
	matches, err := catalog.MatchTrack(ctx, termArtist, termTitle)
	if err != nil {
		return TrackTagResult{}, &CatalogError{Op: "match track", Err: err}
	}
	for _, track := range matches {
		if err := addCandidate(track); err != nil {
			return TrackTagResult{}, err
		}
	}

	// Step 4: external plugin candidates.
	extTracks, err := plugins.ItemCandidates(ctx, item)
	if err != nil {
		return TrackTagResult{}, &CatalogError{Op: "plugin item candidates", Err: err}
	}
	for _, track := range extTracks {
		if err := addCandidate(track); err != nil {
			return TrackTagResult{}, err
		}
	}

	sortTrackCandidates(candidates)
	return TrackTagResult{candidates, recommendTracks(candidates, thresholds)}, nil
}

func sortTrackCandidates(candidates []TrackCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
}

// recommendTracks classifies candidates, which must already be sorted
// ascending by Distance (see sortTrackCandidates).
func recommendTracks(sorted []TrackCandidate, thresholds Thresholds) Recommendation {
	distances := make([]float64, len(sorted))
	for i, c := range sorted {
		distances[i] = c.Distance
	}
	return RecommendWithThresholds(distances, thresholds)
}
