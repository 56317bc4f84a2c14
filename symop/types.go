// Package symop declares the operation and group types plus their
// sentinel errors. The group catalog lives in groups.go.
package symop

import (
	"errors"

	"github.com/katalvlaran/millsym/miller"
)

// Sentinel errors for group validation.
var (
	// ErrNonPositiveTBF indicates a translation base factor <= 0.
	ErrNonPositiveTBF = errors.New("symop: translation base factor must be positive")
	// ErrNoOperations indicates an empty symmetry-operation list; every
	// well-formed group contains at least the identity.
	ErrNoOperations = errors.New("symop: group must contain at least one operation")
	// ErrNonPositiveOrderP indicates a point-group order <= 0.
	ErrNonPositiveOrderP = errors.New("symop: point-group order must be positive")
)

// RotMx is the rotation part of a symmetry operation: a 3×3 integer
// matrix stored row-major (element (i,j) at index i*3+j).
type RotMx [9]int

// Identity returns the 3×3 identity rotation.
func Identity() RotMx {
	return RotMx{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulIndex returns the row-vector product H·R, the symmetry-equivalent
// Miller index before any Friedel consideration. Exact integer
// arithmetic; component j is Σ_i H[i]·R[i][j].
func (r RotMx) MulIndex(h miller.Index) miller.Index {
	return miller.Index{
		h[0]*r[0] + h[1]*r[3] + h[2]*r[6],
		h[0]*r[1] + h[1]*r[4] + h[2]*r[7],
		h[0]*r[2] + h[1]*r[5] + h[2]*r[8],
	}
}

// TrVec is the translation part of a symmetry operation: integer
// numerators over the group's shared translation base factor.
type TrVec [3]int

// Dot returns the exact integer dot product H·T, the unreduced
// translational-phase numerator.
func (t TrVec) Dot(h miller.Index) int {
	return h[0]*t[0] + h[1]*t[1] + h[2]*t[2]
}

// Op pairs a rotation part with a translation part. The translation
// base factor is carried by the enclosing Group, shared across all of
// its operations.
type Op struct {
	R RotMx
	T TrVec
}

// PhaseNumerator returns the reduced translational-phase numerator
// ModPositive(H·T, tbf), always in [0, tbf) for tbf > 0.
// The phase itself is 2π·PhaseNumerator/tbf.
func (o Op) PhaseNumerator(h miller.Index, tbf int) int {
	return ModPositive(o.T.Dot(h), tbf)
}

// ModPositive returns x mod m with a non-negative result in [0, m).
// m must be positive; callers validate TBF before reducing with it.
func ModPositive(x, m int) int {
	x %= m
	if x < 0 {
		x += m
	}

	return x
}

// Group is the supplier-side description of a space group's symmetry:
// an ordered, finite operation list sharing one TBF, plus OrderP, the
// order of the point group without centering translations. The orbit
// package treats a Group as read-only.
type Group struct {
	// TBF is the shared translation base factor (denominator) for all
	// translation numerators of Ops. Must be positive.
	TBF int
	// OrderP is the point-group order without centering translations;
	// it drives the epsilon factor OrderP/N of an orbit.
	OrderP int
	// Ops is the ordered operation list. Order never affects orbit
	// results (the orbit package sorts canonically) but is preserved.
	Ops []Op
}

// Validate reports the first structural defect of g, or nil.
// A Group that passes Validate satisfies every precondition the orbit
// package relies on.
func (g Group) Validate() error {
	if g.TBF <= 0 {
		return ErrNonPositiveTBF
	}
	if len(g.Ops) == 0 {
		return ErrNoOperations
	}
	if g.OrderP <= 0 {
		return ErrNonPositiveOrderP
	}

	return nil
}
