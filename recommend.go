package tagmatch

// Thresholds holds the cutoffs Recommend classifies distances against. The
// zero value is not meaningful; use DefaultThresholds() or values derived
// from an operator's configuration.
type Thresholds struct {
	Strong float64
	Medium float64
	Gap    float64
}

// DefaultThresholds returns the library's built-in cutoffs: StrongRecThresh,
// MediumRecThresh and RecGapThresh. It is a function rather than a package
// variable so no caller can mutate shared state out from under another.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Strong: StrongRecThresh,
		Medium: MediumRecThresh,
		Gap:    RecGapThresh,
	}
}

// Recommend classifies a list of candidate distances sorted ascending into
// {strong, medium, none} using DefaultThresholds(). It is a pure function of
// the distances: candidates carrying equal sorted distance values always
// yield the same recommendation regardless of any other field.
func Recommend(sortedDistances []float64) Recommendation {
	return RecommendWithThresholds(sortedDistances, DefaultThresholds())
}

// RecommendWithThresholds is Recommend with caller-supplied cutoffs in place
// of DefaultThresholds(), via a fixed decision table (first match wins).
func RecommendWithThresholds(sortedDistances []float64, t Thresholds) Recommendation {
	if len(sortedDistances) == 0 {
		return RecommendationNone
	}

	d0 := sortedDistances[0]
	if d0 < t.Strong {
		return RecommendationStrong
	}
	if len(sortedDistances) == 1 {
		return RecommendationMedium
	}
	if d0 <= t.Medium {
		return RecommendationMedium
	}
	if sortedDistances[1]-d0 >= t.Gap {
		return RecommendationMedium
	}
	return RecommendationNone
}

// RecommendCandidates is the Candidate-list convenience wrapper around
// Recommend; candidates must already be sorted ascending by Distance.
func RecommendCandidates(sorted []Candidate) Recommendation {
	return RecommendCandidatesWithThresholds(sorted, DefaultThresholds())
}

// RecommendCandidatesWithThresholds is RecommendCandidates with
// caller-supplied cutoffs in place of DefaultThresholds().
func RecommendCandidatesWithThresholds(sorted []Candidate, t Thresholds) Recommendation {
	distances := make([]float64, len(sorted))
	for i, c := range sorted {
		distances[i] = c.Distance
	}
	return RecommendWithThresholds(distances, t)
}
