package orbit

import (
	"fmt"

	"github.com/katalvlaran/millsym/miller"
	"github.com/katalvlaran/millsym/symop"
)

// SysAbsentTest classifies one (group, index) pair in a single pass
// over the operation list, without building the full orbit. The state
// is a single integer with three disjoint meanings:
//
//	-2  systematically absent — the whole orbit vanishes identically
//	>=0 centric, value is the reduced restriction numerator
//	-1  ordinary acentric reflection
//
// For non-absent reflections the centric/restriction verdict always
// agrees with the full orbit builder. Value type, immutable.
type SysAbsentTest struct {
	htRestriction int
	tbf           int
}

// NewSysAbsentTest classifies h under the operations of g. A reflection
// is systematically absent when some operation fixes the index
// (H·R == H) with a translational phase numerator that is not a
// multiple of TBF, or when two operations map H·R == -H with different
// numerators (conflicting restrictions force a zero structure factor).
func NewSysAbsentTest(g symop.Group, h miller.Index) (SysAbsentTest, error) {
	if err := g.Validate(); err != nil {
		return SysAbsentTest{}, fmt.Errorf("orbit: %w", err)
	}

	t := SysAbsentTest{htRestriction: -1, tbf: g.TBF}
	neg := h.Neg()
	for _, op := range g.Ops {
		hr := op.R.MulIndex(h)
		ht := op.PhaseNumerator(h, g.TBF)
		switch {
		case hr == h:
			if ht != 0 {
				t.htRestriction = -2

				return t, nil
			}
		case hr == neg:
			if t.htRestriction < 0 {
				t.htRestriction = ht
			} else if t.htRestriction != ht {
				t.htRestriction = -2

				return t, nil
			}
		}
	}

	return t, nil
}

// HTRestriction returns the raw three-state classification value.
func (t SysAbsentTest) HTRestriction() int { return t.htRestriction }

// IsSysAbsent reports whether the reflection is systematically absent.
func (t SysAbsentTest) IsSysAbsent() bool { return t.htRestriction == -2 }

// IsCentric reports whether the reflection is centric (and not
// systematically absent).
func (t SysAbsentTest) IsCentric() bool { return t.htRestriction >= 0 }

// PhaseRestriction projects the classification onto a restriction
// descriptor. Absent reflections report no restriction (their phase is
// meaningless: the structure factor is identically zero).
func (t SysAbsentTest) PhaseRestriction() PhaseRestriction {
	ht := t.htRestriction
	if ht < 0 {
		ht = -1
	}

	return NewPhaseRestriction(ht, t.tbf)
}
