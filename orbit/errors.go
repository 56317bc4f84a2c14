package orbit

import "errors"

// Sentinel errors for orbit queries. Group-validation failures surface
// the symop sentinels (symop.ErrNonPositiveTBF, symop.ErrNoOperations,
// symop.ErrNonPositiveOrderP) wrapped with package context.
var (
	// ErrIndexOutOfRange indicates an iList, iMate or combined iIL
	// accessor argument outside its documented range.
	ErrIndexOutOfRange = errors.New("orbit: equivalent-index accessor argument out of range")
	// ErrNonIntegralEpsilon indicates OrderP is not an exact multiple of
	// the orbit size N — inconsistent group data.
	ErrNonIntegralEpsilon = errors.New("orbit: point-group order is not divisible by orbit size")
	// ErrOddCentricList indicates a centric orbit with an odd number of
	// entries, which cannot be split into Friedel-degenerate pairs —
	// inconsistent group data (or the degenerate index (0,0,0)).
	ErrOddCentricList = errors.New("orbit: centric orbit size must be even for P1 listing")
)
