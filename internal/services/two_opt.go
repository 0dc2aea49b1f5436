package services

// Tunables for the 2-opt local search.
type TwoOptOptions struct {
	// Minimum tour-length reduction for a reversal to be accepted.
	// Guards against oscillating on floating-point noise.
	Epsilon float64

	// Safety bound on full improvement passes. Not expected to bind
	// for realistic stop counts.
	MaxPasses int
}

// DefaultTwoOptOptions returns the documented local-search defaults.
func DefaultTwoOptOptions() TwoOptOptions {
	return TwoOptOptions{Epsilon: 0.001, MaxPasses: 1000}
}

// Improve a visiting order by 2-opt edge reversal.
//
// The objective is the closed tour: the leg from the last stop back to
// the depot counts toward every move's delta. Each pass scans interior
// position pairs (i, j) in index order and applies the first reversal
// that shortens the tour by more than Epsilon, so the search is
// first-improvement rather than best-improvement; the depot position is
// never part of a reversal. Passes repeat until one finds no improving
// move or MaxPasses is reached.
//
// The input order is not mutated. Returns the improved order and the
// number of passes performed; a return value equal to MaxPasses means
// the search may have been cut off before reaching a fixed point. Tour
// length never increases.
func TwoOptImprove(order []int, m *DistanceMatrix, opts TwoOptOptions) ([]int, int) {
	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultTwoOptOptions().Epsilon
	}
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultTwoOptOptions().MaxPasses
	}

	route := append([]int(nil), order...)
	n := len(route)

	// With fewer than three stops no reversal produces a distinct tour.
	if n < 4 {
		return route, 0
	}

	passes := 0
	for passes < opts.MaxPasses {
		passes++
		improved := false

		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				prev := route[i-1]
				a := route[i]
				b := route[j]
				next := route[(j+1)%n] // wraps to the depot on the closing leg

				delta := m.At(prev, b) + m.At(a, next) -
					m.At(prev, a) - m.At(b, next)

				if delta < -opts.Epsilon {
					reverse(route, i, j)
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return route, passes
}

func reverse(route []int, i, j int) {
	for i < j {
		route[i], route[j] = route[j], route[i]
		i++
		j--
	}
}
