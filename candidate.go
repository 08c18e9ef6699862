package tagmatch

import (
	"context"
	"sort"

	"github.com/ambrevar/tagmatch/internal/score"
)

// candidateSet is the transient, per-call result map the album tagger
// builds while evaluating candidates, keyed by album ID, plus the
// insertion order needed to make the final stable sort deterministic
// across runs: for ties, insertion order is retained.
type candidateSet struct {
	order []string
	byID  map[string]Candidate
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byID: map[string]Candidate{}}
}

func (s *candidateSet) has(albumID string) bool {
	_, ok := s.byID[albumID]
	return ok
}

func (s *candidateSet) add(c Candidate) {
	s.byID[c.Album.AlbumID] = c
	s.order = append(s.order, c.Album.AlbumID)
}

// sorted yields the candidates sorted ascending by distance; ties keep
// insertion order.
func (s *candidateSet) sorted() []Candidate {
	out := make([]Candidate, len(s.order))
	for i, id := range s.order {
		out[i] = s.byID[id]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// validate gates, orders, scores and records a single candidate release
// into results, keyed by album ID. It is a no-op (the candidate is
// silently dropped) when the album is already present in results, the
// item count doesn't match the track count, or assignment is infeasible.
//
// The only way this returns an error is a failing plugin call, surfaced as
// a CatalogError.
func validate(ctx context.Context, items []Item, album AlbumInfo, plugins PluginSource, results *candidateSet) error {
	if results.has(album.AlbumID) {
		return nil
	}
	if len(items) != len(album.Tracks) {
		return nil
	}

	ordered := OrderItems(items, album.Tracks)
	if ordered == nil {
		return nil
	}

	addNum, addDen, err := plugins.AlbumDistanceContribution(ctx, ordered, album)
	if err != nil {
		return &CatalogError{Op: "album distance contribution", Err: err}
	}

	d := score.Album(ordered, album, score.Contribution{Num: addNum, Den: addDen})
	results.add(Candidate{Distance: d, Items: ordered, Album: album})
	return nil
}
