package sampling

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-folds/$GOPACKAGE IRandomSource

// IRandomSource is the source of randomness a sampler draws from. Implementations must be safe for
// concurrent use as all runs of a sampler draw from the same source.
type IRandomSource interface {
	// IntRange returns a uniformly distributed integer in [lower, upper], both bounds included.
	IntRange(lower, upper int) int
}
