package ports

// Sampler is the source of randomness used by selections.
type Sampler interface {
	// Intn returns a uniform index in [0, n). n must be positive.
	Intn(n int) int
	// Sample returns k distinct uniform indices from [0, n), k <= n.
	Sample(n, k int) []int
}
