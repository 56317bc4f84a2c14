package orbit

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/millsym/miller"
	"github.com/katalvlaran/millsym/symop"
)

// SymEquivMillerIndices is the symmetry orbit of one input Miller
// index: the deduplicated, canonically ordered list of equivalent
// indices together with the derived scalars (TBF, OrderP, restriction
// numerator). The index passed to NewSymEquivMillerIndices is referred
// to as the "input Miller index".
//
// An orbit is immutable after construction and safe for concurrent
// reads. The entries are always stored with an unset Friedel flag;
// Friedel pairing enters only through the query surface (M, FMates,
// NP1Listing, AtMate, AtIL).
type SymEquivMillerIndices struct {
	tbf           int
	orderP        int
	htRestriction int // -1 acentric, else reduced restriction numerator
	list          []SymEquivIndex
}

// NewSymEquivMillerIndices builds the orbit of h under the operations
// of g. Construction is all-or-nothing: a group failing validation
// (non-positive TBF, empty operation list, non-positive OrderP)
// produces an error and no partial orbit.
//
// The listing is canonical: entries are deduplicated on their H()
// value (translation numerators are not part of the key), partitioned
// into hemispheres (positive first), and sorted lexicographically
// within each hemisphere. Permuting g.Ops never changes the result.
func NewSymEquivMillerIndices(g symop.Group, h miller.Index) (*SymEquivMillerIndices, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("orbit: %w", err)
	}

	s := &SymEquivMillerIndices{
		tbf:           g.TBF,
		orderP:        g.OrderP,
		htRestriction: -1,
		list:          make([]SymEquivIndex, 0, len(g.Ops)),
	}
	neg := h.Neg()
	for _, op := range g.Ops {
		e := equivIndex(op, g.TBF, h, false)
		// Centricity: H·R == -H. The minimum numerator over all such
		// operations is the canonical restriction; any non-absent
		// reflection has a single numerator anyway, so the minimum is
		// a pure order-independence tie-break.
		if e.hr == neg {
			if s.htRestriction < 0 || e.ht < s.htRestriction {
				s.htRestriction = e.ht
			}
		}
		s.add(e)
	}
	s.sortInHemispheres()

	return s, nil
}

// add appends e unless an entry with the same H() is already listed.
func (s *SymEquivMillerIndices) add(e SymEquivIndex) {
	hv := e.H()
	for _, x := range s.list {
		if x.H() == hv {
			return
		}
	}
	s.list = append(s.list, e)
}

// sortInHemispheres orders the listing by hemisphere (positive first),
// then lexicographically within each hemisphere. H() values are unique
// after dedup, so this is a total order.
func (s *SymEquivMillerIndices) sortInHemispheres() {
	sort.Slice(s.list, func(i, j int) bool {
		a, b := s.list[i].H(), s.list[j].H()
		ha, hb := a.Hemisphere(), b.Hemisphere()
		if ha != hb {
			return ha > hb
		}

		return a.Less(b)
	})
}

// N returns the number of symmetrically equivalent Miller indices.
// Note that N is not in general the multiplicity; see M.
func (s *SymEquivMillerIndices) N() int { return len(s.list) }

// TBF returns the translation base factor shared by all entries.
func (s *SymEquivMillerIndices) TBF() int { return s.tbf }

// OrderP returns the point-group order without centering translations.
func (s *SymEquivMillerIndices) OrderP() int { return s.orderP }

// IsCentric reports whether some symmetry operation maps the input
// index onto its negation (H·R == -H).
func (s *SymEquivMillerIndices) IsCentric() bool { return s.htRestriction >= 0 }

// PhaseRestriction returns the phase restriction (if any) for the
// input Miller index.
func (s *SymEquivMillerIndices) PhaseRestriction() PhaseRestriction {
	return NewPhaseRestriction(s.htRestriction, s.tbf)
}

// IsValidPhase reports whether phi is compatible with the orbit's
// phase restriction; see PhaseRestriction.IsValidPhase.
func (s *SymEquivMillerIndices) IsValidPhase(phi float64, deg bool, tolerance float64) bool {
	return s.PhaseRestriction().IsValidPhase(phi, deg, tolerance)
}

// M returns the multiplicity of the input index. With Friedel symmetry
// (friedel true, no anomalous signal) an acentric orbit doubles: its
// Friedel mates are not in the listing. Centric orbits already contain
// both hemispheres, so M == N.
func (s *SymEquivMillerIndices) M(friedel bool) int {
	if friedel && !s.IsCentric() {
		return 2 * s.N()
	}

	return s.N()
}

// FMates returns the number of Friedel mates enumerated per listed
// entry: 2 when Friedel symmetry is requested on an acentric orbit,
// 1 otherwise. M(friedel) == FMates(friedel) * N() always holds.
func (s *SymEquivMillerIndices) FMates(friedel bool) int {
	if friedel && !s.IsCentric() {
		return 2
	}

	return 1
}

// NP1Listing returns the number of entries to enumerate when expanding
// the orbit in space group P1 without double-counting: under Friedel
// symmetry a centric orbit pairs each entry with its mate inside the
// listing, so only N/2 entries are distinct. Returns ErrOddCentricList
// when that split is impossible (inconsistent data, or index (0,0,0)).
func (s *SymEquivMillerIndices) NP1Listing(friedel bool) (int, error) {
	if friedel && s.IsCentric() {
		if s.N()%2 != 0 {
			return 0, ErrOddCentricList
		}

		return s.N() / 2, nil
	}

	return s.N(), nil
}

// Epsilon returns the multiplicity-correction factor for the input
// index: the number of times the index is mapped onto itself by
// symmetry, OrderP / N. The division must be exact; a remainder means
// the group data is inconsistent (ErrNonIntegralEpsilon).
func (s *SymEquivMillerIndices) Epsilon() (int, error) {
	if s.orderP%s.N() != 0 {
		return 0, fmt.Errorf("%w: OrderP=%d, N=%d", ErrNonIntegralEpsilon, s.orderP, s.N())
	}

	return s.orderP / s.N(), nil
}

// At returns entry iList of the canonical listing, for
// 0 <= iList < N().
func (s *SymEquivMillerIndices) At(iList int) (SymEquivIndex, error) {
	if iList < 0 || iList >= s.N() {
		return SymEquivIndex{}, fmt.Errorf("%w: iList=%d, N=%d", ErrIndexOutOfRange, iList, s.N())
	}

	return s.list[iList], nil
}

// AtMate returns entry iList with its Friedel flag toggled iff
// iMate == 1. Valid arguments: iMate in {0, 1}, iList in [0, N()).
func (s *SymEquivMillerIndices) AtMate(iMate, iList int) (SymEquivIndex, error) {
	if iMate < 0 || iMate > 1 {
		return SymEquivIndex{}, fmt.Errorf("%w: iMate=%d", ErrIndexOutOfRange, iMate)
	}
	e, err := s.At(iList)
	if err != nil {
		return SymEquivIndex{}, err
	}

	return e.Mate(iMate), nil
}

// AtIL returns the iIL-th equivalent index of the flat enumeration
// over mates and listing, for 0 <= iIL < M(friedel). The decomposition
// is the documented bijection
//
//	iIL = iMate*N() + iList
//
// with the listing as the fast axis, so AtIL(friedel, iIL) ==
// AtMate(iIL/N(), iIL%N()). It inverts the nested loop
//
//	for iMate := 0; iMate < FMates(friedel); iMate++ {
//	  for iList := 0; iList < N(); iList++ { ... }
//	}
func (s *SymEquivMillerIndices) AtIL(friedel bool, iIL int) (SymEquivIndex, error) {
	if iIL < 0 || iIL >= s.M(friedel) {
		return SymEquivIndex{}, fmt.Errorf("%w: iIL=%d, M=%d", ErrIndexOutOfRange, iIL, s.M(friedel))
	}

	return s.AtMate(iIL/s.N(), iIL%s.N())
}
