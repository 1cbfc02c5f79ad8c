package rank

import "math"

const (
	convergenceTolerance = 1e-8
	maxIterations        = 100000
	// sparseThreshold is the component size at which a sparse transition
	// matrix representation would pay for itself; below it a dense slice
	// is simplest and fast enough, so only the threshold constant survives
	// from the original's dense/sparse crossover.
	sparseThreshold = 250
)

// rankCentrality implements the rank centrality algorithm: A is an n x n
// preference matrix where A[i][j] accumulates the weight of comparisons
// favoring j over i. It returns a score vector summing to ~1, proportional
// to each item's global preference.
func rankCentrality(a [][]float64) []float64 {
	n := len(a)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{1.0}
	}

	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if a[i][j] != 0 {
				w[i][j] = a[i][j] / (a[i][j] + a[j][i])
			}
		}
	}

	wMax := 0.0
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				sum += w[i][j]
			}
		}
		if i == 0 || sum > wMax {
			wMax = sum
		}
	}
	if wMax == 0 {
		// No comparisons at all within this component: fall back to uniform.
		scores := make([]float64, n)
		for i := range scores {
			scores[i] = 1.0 / float64(n)
		}
		return scores
	}

	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
		rowSum := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				p[i][j] = w[i][j] / wMax
				rowSum += p[i][j]
			}
		}
		p[i][i] = 1 - rowSum
	}

	prev := make([]float64, n)
	for i := range prev {
		prev[i] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIterations; iter++ {
		next := make([]float64, n)
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += prev[i] * p[i][j]
			}
			next[j] = sum
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - prev[i])
		}
		prev = next
		if delta < convergenceTolerance {
			break
		}
	}

	return prev
}
