package textbitmap

// OtsuThreshold picks the threshold that maximizes the variance between the
// pixels at or below it and the pixels above it.
// https://en.wikipedia.org/wiki/Otsu%27s_method
// Used with Threshold, pixels at the returned value become 0. A grid with a
// single intensity returns 0.
func OtsuThreshold(grid *IntensityGrid) int {
	if grid.empty() {
		return DefaultThreshold
	}

	var histo [256]int
	for _, v := range grid.pix {
		histo[v]++
	}
	return otsu(histo)
}

// otsu works in float64: with tens of millions of pixels the between-class
// variance doesn't fit in an int64.
func otsu(histo [256]int) int {
	var total, totalSum float64
	for v, n := range histo {
		total += float64(n)
		totalSum += float64(v) * float64(n)
	}

	var (
		best         int
		bestVariance float64
		// Pixels <= v so far, and the sum of their intensities.
		low    float64
		lowSum float64
	)
	for v, n := range histo {
		low += float64(n)
		lowSum += float64(v) * float64(n)

		high := total - low
		if low == 0 || high == 0 {
			continue
		}

		lowMean := lowSum / low
		highMean := (totalSum - lowSum) / high
		diff := lowMean - highMean
		variance := low * high * diff * diff
		if variance > bestVariance {
			bestVariance = variance
			best = v
		}
	}
	return best
}
