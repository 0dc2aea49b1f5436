package services

import (
	"errors"

	"route-optimization-service/internal/domain"
)

// ErrInvalidClusterCount indicates a non-positive requested cluster count.
var ErrInvalidClusterCount = errors.New("cluster stops: cluster count must be positive")

// Partition stops into at most k groups for multi-vehicle splitting.
//
// Seeds are chosen by farthest-point selection: the first seed is the
// lowest-index stop and each further seed is the stop maximizing its
// minimum distance to the seeds already chosen, ties broken by lowest
// index. Every stop is then assigned to its nearest seed in a single
// pass; there is no centroid re-centering. Empty groups are dropped, so
// fewer than k clusters come back when k exceeds the set's natural
// separability. Grouping only partitions the stop set; it does not
// balance demand or route the groups.
func ClusterStops(stops []domain.Location, k int) ([]domain.Cluster, error) {
	if k <= 0 {
		return nil, ErrInvalidClusterCount
	}

	if len(stops) <= k {
		clusters := make([]domain.Cluster, 0, len(stops))
		for _, s := range stops {
			clusters = append(clusters, domain.Cluster{Seed: s, Stops: []domain.Location{s}})
		}
		return clusters, nil
	}

	// minDist[i] tracks stop i's distance to its closest chosen seed.
	seeds := []int{0}
	minDist := make([]float64, len(stops))
	for i := range stops {
		minDist[i] = Haversine(stops[i].Coords, stops[0].Coords)
	}

	for len(seeds) < k {
		far := -1
		farDist := -1.0
		for i := range stops {
			if minDist[i] > farDist {
				farDist = minDist[i]
				far = i
			}
		}

		seeds = append(seeds, far)
		for i := range stops {
			if d := Haversine(stops[i].Coords, stops[far].Coords); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	// Single nearest-seed assignment pass.
	groups := make([][]domain.Location, len(seeds))
	for _, s := range stops {
		best := 0
		bestDist := Haversine(s.Coords, stops[seeds[0]].Coords)
		for si := 1; si < len(seeds); si++ {
			if d := Haversine(s.Coords, stops[seeds[si]].Coords); d < bestDist {
				bestDist = d
				best = si
			}
		}
		groups[best] = append(groups[best], s)
	}

	clusters := make([]domain.Cluster, 0, len(seeds))
	for si, g := range groups {
		if len(g) == 0 {
			// Possible when two seeds share coordinates.
			continue
		}
		clusters = append(clusters, domain.Cluster{Seed: stops[seeds[si]], Stops: g})
	}

	return clusters, nil
}
