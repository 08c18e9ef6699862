// Package assign solves the square minimum-cost bipartite assignment problem
// used to match observed tracks to canonical catalog slots.
//
// No repo in the retrieval pack performs this kind of assignment (album
// taggers there tag one file at a time and never reorder a track list), so
// this is a hand-written Kuhn-Munkres/Hungarian solver using the classical
// shortest-augmenting-path-with-potentials formulation.
package assign

import "math"

// Solve finds a permutation perm of {0,...,n-1} minimizing
// sum(cost[i][perm[i]]) for i in 0..n-1, where cost is an n-by-n matrix
// (cost[i][j] = cost of assigning row i to column j). It returns perm such
// that row i is assigned to column perm[i]. n == 0 returns an empty,
// non-nil slice.
//
// The algorithm is deterministic: ties are broken by processing rows in
// order and, within the augmenting-path search, columns in order, so the
// same cost matrix always yields the same assignment.
func Solve(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return []int{}
	}

	const inf = math.MaxFloat64 / 2

	// 1-indexed internal arrays, standard for this formulation.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row currently assigned to column j (1-indexed rows), 0 = none
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	perm := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			perm[p[j]-1] = j - 1
		}
	}
	return perm
}
