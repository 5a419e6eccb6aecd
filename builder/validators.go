// Package builder provides validation helpers that enforce parameter
// contracts in Constructor factories.
package builder

// validateMin ensures got ≥ min, else ErrTooFewVertices with method context.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected explicitly.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
