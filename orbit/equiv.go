package orbit

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/millsym/miller"
	"github.com/katalvlaran/millsym/symop"
)

// SymEquivIndex is one symmetry-equivalent Miller index: the rotated
// index HR = H·R, the reduced translational-phase numerator
// HT = (H·T) mod TBF, the shared TBF, and a flag recording whether
// Friedel's law (sign inversion) was applied to arrive at H().
//
// Invariants: HT ∈ [0, TBF); H() == HR if the Friedel flag is unset,
// HR negated otherwise. Value type, immutable.
type SymEquivIndex struct {
	hr      miller.Index
	ht      int
	tbf     int
	friedel bool
}

// NewSymEquivIndex applies one symmetry operation to the input index h:
// HR = h·op.R and HT = (h·op.T) mod tbf, reduced into [0, tbf).
// The friedel argument records whether Friedel's law is applied to
// reach H(). Returns symop.ErrNonPositiveTBF if tbf <= 0.
func NewSymEquivIndex(op symop.Op, tbf int, h miller.Index, friedel bool) (SymEquivIndex, error) {
	if tbf <= 0 {
		return SymEquivIndex{}, symop.ErrNonPositiveTBF
	}

	return equivIndex(op, tbf, h, friedel), nil
}

// equivIndex is the unchecked core of NewSymEquivIndex; callers have
// already validated tbf > 0.
func equivIndex(op symop.Op, tbf int, h miller.Index, friedel bool) SymEquivIndex {
	return SymEquivIndex{
		hr:      op.R.MulIndex(h),
		ht:      op.PhaseNumerator(h, tbf),
		tbf:     tbf,
		friedel: friedel,
	}
}

// H returns the symmetry-equivalent index: HR, negated when the
// Friedel flag is set.
func (e SymEquivIndex) H() miller.Index {
	if e.friedel {
		return e.hr.Neg()
	}

	return e.hr
}

// HR returns the product of the input index and the rotation part.
func (e SymEquivIndex) HR() miller.Index { return e.hr }

// HT returns the reduced translational-phase numerator, in [0, TBF()).
// The translational phase is 2π·HT()/TBF().
func (e SymEquivIndex) HT() int { return e.ht }

// TBF returns the translation base factor HT() is expressed over.
func (e SymEquivIndex) TBF() int { return e.tbf }

// FriedelFlag reports whether Friedel's law was applied to reach H().
func (e SymEquivIndex) FriedelFlag() bool { return e.friedel }

// Mate returns a copy with the Friedel flag toggled if iMate != 0, and
// e unchanged otherwise. HR and HT are never altered.
func (e SymEquivIndex) Mate(iMate int) SymEquivIndex {
	if iMate != 0 {
		e.friedel = !e.friedel
	}

	return e
}

// shift returns the translational phase period·HT/TBF for the chosen
// period (2π or 360).
func (e SymEquivIndex) shift(deg bool) float64 {
	period := 2 * math.Pi
	if deg {
		period = 360
	}

	return period * float64(e.ht) / float64(e.tbf)
}

// PhaseEq returns the phase of the equivalent index, given the phase
// phiIn of the input index:
//
//	phi_eq = phiIn - period·HT/TBF    (period = 2π, or 360 if deg)
//	phi_eq = -phi_eq                  if the Friedel flag is set
//
// PhaseIn is the exact inverse.
func (e SymEquivIndex) PhaseEq(phiIn float64, deg bool) float64 {
	phiEq := phiIn - e.shift(deg)
	if e.friedel {
		return -phiEq
	}

	return phiEq
}

// PhaseIn returns the phase of the input index, given the phase phiEq
// of the equivalent index: the Friedel negation is undone first, then
// the translational shift is added back. Exact inverse of PhaseEq.
func (e SymEquivIndex) PhaseIn(phiEq float64, deg bool) float64 {
	if e.friedel {
		phiEq = -phiEq
	}

	return phiEq + e.shift(deg)
}

// ComplexEq returns the complex structure-factor value for the
// equivalent index, given the value fIn for the input index:
//
//	f_eq = fIn · exp(-i·2π·HT/TBF)
//	f_eq = conj(f_eq)    if the Friedel flag is set
//
// ComplexIn is the exact inverse.
func (e SymEquivIndex) ComplexEq(fIn complex128) complex128 {
	theta := -2 * math.Pi * float64(e.ht) / float64(e.tbf)
	fEq := fIn * cmplx.Rect(1, theta)
	if e.friedel {
		return cmplx.Conj(fEq)
	}

	return fEq
}

// ComplexIn returns the complex structure-factor value for the input
// index, given the value fEq for the equivalent index: conjugation is
// undone first (if the Friedel flag is set), then the conjugate phase
// factor is applied. Exact inverse of ComplexEq.
func (e SymEquivIndex) ComplexIn(fEq complex128) complex128 {
	if e.friedel {
		fEq = cmplx.Conj(fEq)
	}
	theta := 2 * math.Pi * float64(e.ht) / float64(e.tbf)

	return fEq * cmplx.Rect(1, theta)
}
