package bezier

// Binomial returns n choose k.
// It uses multiplicative formula instead of factorials, so it does not overflow
// for degrees a user can click together.
func Binomial(n, k int) float64 {
	result := 1.0
	for i := 1; i <= k; i++ {
		result *= float64(n-i+1) / float64(i)
	}

	return result
}
