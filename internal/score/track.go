// Package score implements the weighted multi-signal track and album
// distance.
//
// Grounded on Ambrevar-demlo/online.go's queryAcoustID scoring block: a set
// of independent stringRel signals, each scaled by a fixed weight and summed
// over a fixed total, e.g.
//
//	score := (26*relTitle + 25*relArtist + 13*relAlbumArtist + ... ) / 100
//
// generalized here from a single flat sum into an explicit numerator/
// denominator accumulation so that a signal that does not apply (no slot
// index, VA release, no catalog ID) drops out of both sides rather than
// silently scoring as a perfect match.
package score

import (
	"github.com/ambrevar/tagmatch/internal/dist"
	"github.com/ambrevar/tagmatch/internal/model"
)

// Weights and thresholds: the stable interface constants.
const (
	ArtistWeight      = 3.0
	AlbumWeight       = 3.0
	TrackTitleWeight  = 3.0
	TrackWeight       = 1.0
	TrackArtistWeight = 2.0
	TrackIndexWeight  = 1.0
	TrackLengthWeight = 2.0
	TrackIDWeight     = 5.0

	TrackLengthGrace = 10.0
	TrackLengthMax   = 30.0

	MaxCandidates = 5
)

// Contribution is an additive (numerator, denominator) pair contributed by
// an external plugin signal via TrackDistanceContribution/
// AlbumDistanceContribution.
type Contribution struct {
	Num float64
	Den float64
}

// Track computes the weighted per-track cost. slotIndex is the 1-based
// canonical slot being tested, or nil when no ordering is being scored (the
// single-track tagging path). includeArtist gates the per-track artist
// signal; it is always false while tagmatch.OrderItems builds the
// assignment cost matrix (the album-level artist signal already covers that
// case for non-VA releases).
func Track(item model.Item, track model.TrackInfo, slotIndex *int, includeArtist bool, extra Contribution) float64 {
	num := 0.0
	den := 0.0

	// Length.
	den += TrackLengthWeight
	if !track.HasLength {
		num += TrackLengthWeight
	} else {
		diff := item.Length - track.Length
		if diff < 0 {
			diff = -diff
		}
		diff -= TrackLengthGrace
		if diff < 0 {
			diff = 0
		}
		if diff > TrackLengthMax {
			diff = TrackLengthMax
		}
		num += diff / TrackLengthMax * TrackLengthWeight
	}

	// Title.
	num += dist.String(item.Title, track.Title) * TrackTitleWeight
	den += TrackTitleWeight

	// Artist.
	if includeArtist && track.Artist != "" {
		num += dist.String(item.Artist, track.Artist) * TrackArtistWeight
		den += TrackArtistWeight
	}

	// Index.
	if slotIndex != nil && item.Track != nil {
		if *slotIndex != *item.Track {
			num += TrackIndexWeight
		}
		den += TrackIndexWeight
	}

	// Catalog track ID.
	if item.CatalogTrackID != "" {
		if item.CatalogTrackID != track.ID {
			num += TrackIDWeight
		}
		den += TrackIDWeight
	}

	// External contribution.
	num += extra.Num
	den += extra.Den

	if den == 0 {
		return 0
	}
	return num / den
}
