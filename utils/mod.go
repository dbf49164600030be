package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMaxes returns the indices of every maximal element of values that keep
// accepts. It returns nil when keep rejects every index.
func ArgMaxes[T int | float64](values []T, keep func(int) bool) []int {
	var best []int
	for i, v := range values {
		if !keep(i) {
			continue
		}
		switch {
		case len(best) == 0 || v > values[best[0]]:
			best = append(best[:0], i)
		case v == values[best[0]]:
			best = append(best, i)
		}
	}
	return best
}
