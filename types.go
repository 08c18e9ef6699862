// Package tagmatch is the autotagging core of a music library manager: given
// a directory believed to hold one album, it identifies the best-matching
// canonical release in an external catalog, classifies its own confidence,
// and (on acceptance) rewrites Items to the canonical values.
//
// The package is single-threaded and synchronous: it holds no
// shared mutable state and starts no goroutines of its own. The only
// blocking operations are the Catalog and PluginSource calls a caller
// injects; this package does not care whether those are implemented
// synchronously or wrap an asynchronous client.
package tagmatch

import "github.com/ambrevar/tagmatch/internal/model"

// Item, TrackInfo and AlbumInfo are defined in internal/model and aliased
// here so that internal/score can depend on the data shapes without
// importing this package (which depends on it).
type (
	Item      = model.Item
	TrackInfo = model.TrackInfo
	AlbumInfo = model.AlbumInfo
)

// Recommendation classifies confidence in a sorted candidate list (spec
// §4.7).
type Recommendation int

const (
	RecommendationNone Recommendation = iota
	RecommendationMedium
	RecommendationStrong
)

func (r Recommendation) String() string {
	switch r {
	case RecommendationStrong:
		return "strong"
	case RecommendationMedium:
		return "medium"
	default:
		return "none"
	}
}

// Candidate is a canonical release proposed for an album, together with the
// ordering of the observed items that minimizes distance against it.
//
// Invariant: len(Items) == len(Album.Tracks).
type Candidate struct {
	Distance float64
	Items    []Item
	Album    AlbumInfo
}

// TrackCandidate is the §4.9 single-track analogue of Candidate.
type TrackCandidate struct {
	Distance float64
	Track    TrackInfo
}
