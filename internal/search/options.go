package search

// Options holds the tunable selectivity margins spec.md §4.7.2/§4.7.3
// name literally (razoring, null-move reduction, futility, late-move
// pruning, quiescence delta, aspiration window). Grounded on the
// teacher's package-level FutilityMargins/RazoringMargins/LateMove-
// PruningMargins tunables in engine/search.go, collapsed from the
// teacher's depth-indexed tables down to the spec's single literal
// constants and exposed as a struct so a caller can override them
// instead of recompiling.
type Options struct {
	RazorMargin      int32
	NullMoveR        int
	FutilityPerDepth int32
	LMPQuietFactor   int
	DeltaMargin      int32
	AspirationWindow int32
}

// DefaultOptions returns the constants spec.md §4.7 names.
func DefaultOptions() Options {
	return Options{
		RazorMargin:      129,
		NullMoveR:        4,
		FutilityPerDepth: 68,
		LMPQuietFactor:   4,
		DeltaMargin:      400,
		AspirationWindow: 30,
	}
}
