package param

// Heuristic records how a Parameter's initial guess, if any, was
// derived (spec §4.3). Heuristics never constrain a parameter on their
// own; they are a hint the solver's estimation algorithms may use when
// no hard constraint pins a value down, and are always overridable by an
// explicit constraint.
type Heuristic int

const (
	// NoHeuristic means the parameter carries no initial guess.
	NoHeuristic Heuristic = iota
	// SoftSet marks a value as a default that any explicit constraint
	// silently overrides.
	SoftSet
	// Guess marks a value as a starting point for estimation algorithms,
	// carrying no weight once any real constraint applies.
	Guess
	// ToleranceGuess is a Guess bundled with a tolerance fraction, used by
	// upper_estimation_of_expressions_with_subsets (spec §4.5).
	ToleranceGuess
	// LikelyConstrained marks a parameter the solver should expect to
	// eventually become fully constrained, used to flag surprising
	// under-constraint at the end of a solve.
	LikelyConstrained
)

// String returns the heuristic's name, used in diagnostics.
func (h Heuristic) String() string {
	switch h {
	case NoHeuristic:
		return "none"
	case SoftSet:
		return "soft_set"
	case Guess:
		return "guess"
	case ToleranceGuess:
		return "tolerance_guess"
	case LikelyConstrained:
		return "likely_constrained"
	default:
		return "unknown"
	}
}
