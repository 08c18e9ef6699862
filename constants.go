package tagmatch

import (
	"strings"

	"github.com/ambrevar/tagmatch/internal/score"
)

// Constants forming part of the stable interface. Tests outside this
// module may depend on these exact values.
const (
	MaxCandidates = score.MaxCandidates

	ArtistWeight      = score.ArtistWeight
	AlbumWeight       = score.AlbumWeight
	TrackTitleWeight  = score.TrackTitleWeight
	TrackWeight       = score.TrackWeight
	TrackArtistWeight = score.TrackArtistWeight
	TrackIndexWeight  = score.TrackIndexWeight
	TrackLengthWeight = score.TrackLengthWeight
	TrackIDWeight     = score.TrackIDWeight

	TrackLengthGrace = score.TrackLengthGrace
	TrackLengthMax   = score.TrackLengthMax

	StrongRecThresh = 0.04
	MediumRecThresh = 0.25
	RecGapThresh    = 0.25
)

// VAArtists holds the case-insensitive set of artist names that mark a
// search as "various artists" for the purposes of the VA fallback search.
// Lookups should lowercase first; see IsVAArtist.
var VAArtists = map[string]bool{
	"":                true,
	"various artists": true,
	"va":              true,
	"unknown":         true,
}

// IsVAArtist reports whether artist (case-insensitively) names a
// various-artists placeholder per VAArtists. Whitespace-only strings are
// deliberately *not* folded in here — only an exactly-empty string
// matches.
func IsVAArtist(artist string) bool {
	return VAArtists[strings.ToLower(artist)]
}
