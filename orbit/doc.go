// Package orbit computes the symmetry orbit of a Miller index under a
// space group's operations, together with the phase bookkeeping needed
// to map structure-factor values between symmetry-equivalent indices.
//
// 🚀 What is a symmetry orbit?
//
//	Applying every symmetry operation of a space group to a Miller index
//	H produces a set of equivalent indices H·R, each carrying an exact
//	translational phase shift H·T (a fraction over the group's
//	translation base factor, TBF). The deduplicated, canonically ordered
//	set is the orbit of H. Orbits drive reflection merging, statistics
//	(multiplicity, epsilon factor) and phase handling throughout
//	crystallographic data processing.
//
// ✨ Key pieces:
//   - SymEquivIndex — one equivalent index (HR, HT, TBF, FriedelFlag)
//     with exact phase/complex transforms between the input index and
//     the equivalent index (PhaseEq/PhaseIn, ComplexEq/ComplexIn).
//   - SymEquivMillerIndices — the orbit itself: deduplicated, sorted
//     into hemispheres, with N, M, FMates, NP1Listing, Epsilon and the
//     combined-index accessors At/AtMate/AtIL.
//   - PhaseRestriction — centric phase restriction (angle in [0, π),
//     sentinel -1 when unrestricted) with tolerance-based validation.
//   - SysAbsentTest — single-pass classification of a reflection as
//     systematically absent, centric, or ordinary acentric, without
//     building the full orbit.
//
// Determinism:
//
//	Orbit construction is pure integer arithmetic over an immutable
//	operation list. Two calls with the same group and index — even with
//	the operations supplied in a different order — yield the same N,
//	the same restriction, and the same ordered listing. Every orbit is
//	immutable after construction and safe for concurrent reads.
//
// ⚙️ Usage:
//
//	g := symop.P4()
//	semi, err := orbit.NewSymEquivMillerIndices(g, miller.Index{1, 2, 3})
//	if err != nil {
//	  // ErrNonPositiveTBF, ErrNoOperations, ...
//	}
//	for iIL := 0; iIL < semi.M(true); iIL++ {
//	  e, _ := semi.AtIL(true, iIL)
//	  _ = e.H() // every equivalent index, Friedel mates included
//	}
//
// Complexity:
//
//	Construction: O(n²) index comparisons for n operations (dedup) plus
//	O(n log n) for the canonical sort — n is tiny (≤ 192 for any space
//	group). Every query on a built orbit is O(1).
package orbit
