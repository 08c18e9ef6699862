package tagmatch

import (
	"github.com/ambrevar/tagmatch/internal/assign"
	"github.com/ambrevar/tagmatch/internal/score"
)

// OrderItems solves the optimal track-to-slot assignment: it returns
// ordered such that ordered[j] is the item that should fill slot j of
// tracks, minimizing the summed track distance. It returns nil when
// len(items) != len(tracks) (assignment is infeasible).
//
// includeArtist is always false here: artist is also scored by the
// album-level artist signal, and scoring it again here would double-count
// it during assignment.
func OrderItems(items []Item, tracks []TrackInfo) []Item {
	n := len(items)
	if n != len(tracks) {
		return nil
	}
	if n == 0 {
		return []Item{}
	}

	cost := make([][]float64, n)
	for i := range items {
		row := make([]float64, n)
		for j := range tracks {
			slot := j + 1
			row[j] = score.Track(items[i], tracks[j], &slot, false, score.Contribution{})
		}
		cost[i] = row
	}

	perm := assign.Solve(cost)

	ordered := make([]Item, n)
	for i, j := range perm {
		ordered[j] = items[i]
	}
	return ordered
}
