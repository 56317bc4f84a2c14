package orbit

import "math"

// PhaseRestriction describes the phase restriction of a reflection.
// A reflection with Miller index H is "centric" if some symmetry
// operation maps H·R = -H; its phase is then restricted to two values
// modulo π: the restriction angle and its antipode.
//
// The restriction is stored exactly as the reduced numerator HT over
// the translation base factor TBF, with the sentinel HT == -1 meaning
// "no restriction" (acentric). Value type, immutable.
type PhaseRestriction struct {
	ht  int
	tbf int
}

// NewPhaseRestriction builds a restriction descriptor from a reduced
// numerator (or a negative sentinel) and a translation base factor.
// It is normally obtained from SymEquivMillerIndices.PhaseRestriction
// or SysAbsentTest.PhaseRestriction rather than constructed directly.
func NewPhaseRestriction(ht, tbf int) PhaseRestriction {
	return PhaseRestriction{ht: ht, tbf: tbf}
}

// IsCentric reports whether there actually is a phase restriction.
func (p PhaseRestriction) IsCentric() bool { return p.ht >= 0 }

// HT returns the reduced restriction numerator, or a negative sentinel
// if the reflection is not centric. The restriction angle is
// π·HT()/TBF().
func (p PhaseRestriction) HT() int { return p.ht }

// TBF returns the translation base factor HT() is expressed over.
func (p PhaseRestriction) TBF() int { return p.tbf }

// HTAngle returns the restriction angle in radians (or degrees if deg
// is set): -1 if the phase is not restricted, otherwise a value in
// [0, π) or [0, 180).
func (p PhaseRestriction) HTAngle(deg bool) float64 {
	if deg {
		return p.angle(180)
	}

	return p.angle(math.Pi)
}

// angle returns halfPeriod·HT/TBF, or -1 when acentric.
func (p PhaseRestriction) angle(halfPeriod float64) float64 {
	if !p.IsCentric() {
		return -1
	}

	return halfPeriod * float64(p.ht) / float64(p.tbf)
}

// IsValidPhase reports whether the phase phi is compatible with the
// restriction, within tolerance (which compensates for rounding).
// A centric phase is valid iff it lies within tolerance of the
// restriction angle or its antipode, modulo the full period.
//
// For an acentric reflection IsValidPhase returns false: there is no
// restriction to validate against. Callers gate on IsCentric() first.
func (p PhaseRestriction) IsValidPhase(phi float64, deg bool, tolerance float64) bool {
	if deg {
		return p.isValidPhase(180, phi, tolerance)
	}

	return p.isValidPhase(math.Pi, phi, tolerance)
}

// isValidPhase checks phi against the restriction modulo halfPeriod:
// the allowed phases are angle + k·halfPeriod for every integer k,
// which covers both the restriction angle and its antipode.
func (p PhaseRestriction) isValidPhase(halfPeriod, phi, tolerance float64) bool {
	if !p.IsCentric() {
		return false
	}
	delta := math.Mod(phi-p.angle(halfPeriod), halfPeriod)
	if delta < 0 {
		delta += halfPeriod
	}

	return delta <= tolerance || halfPeriod-delta <= tolerance
}
