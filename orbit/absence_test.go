package orbit_test

import (
	"testing"

	"github.com/katalvlaran/millsym/miller"
	"github.com/katalvlaran/millsym/orbit"
	"github.com/katalvlaran/millsym/symop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSysAbsentTest_InvalidGroup verifies the validation path.
func TestSysAbsentTest_InvalidGroup(t *testing.T) {
	_, err := orbit.NewSysAbsentTest(symop.Group{TBF: 0, OrderP: 1, Ops: []symop.Op{{R: symop.Identity()}}}, miller.Index{1, 0, 0})
	assert.ErrorIs(t, err, symop.ErrNonPositiveTBF)

	_, err = orbit.NewSysAbsentTest(symop.Group{TBF: 12, OrderP: 1}, miller.Index{1, 0, 0})
	assert.ErrorIs(t, err, symop.ErrNoOperations)
}

// TestSysAbsentTest_ScrewAxis covers the P21 selection rule: 0k0 is
// absent exactly for odd k.
func TestSysAbsentTest_ScrewAxis(t *testing.T) {
	g := symop.P21()
	for k := -5; k <= 5; k++ {
		if k == 0 {
			continue
		}
		sat, err := orbit.NewSysAbsentTest(g, miller.Index{0, k, 0})
		require.NoError(t, err)
		assert.Equal(t, k%2 != 0, sat.IsSysAbsent(), "0%d0", k)
		if sat.IsSysAbsent() {
			assert.Equal(t, -2, sat.HTRestriction())
			assert.False(t, sat.IsCentric(), "absent is not centric")
		}
	}
}

// TestSysAbsentTest_Centering covers the C2 selection rule: h+k odd is
// absent for every l.
func TestSysAbsentTest_Centering(t *testing.T) {
	g := symop.C2()
	for h := -3; h <= 3; h++ {
		for k := -3; k <= 3; k++ {
			for l := -3; l <= 3; l++ {
				hkl := miller.Index{h, k, l}
				if hkl.IsZero() {
					continue
				}
				sat, err := orbit.NewSysAbsentTest(g, hkl)
				require.NoError(t, err)
				assert.Equal(t, (h+k)%2 != 0, sat.IsSysAbsent(), "%v", hkl)
			}
		}
	}
}

// TestSysAbsentTest_FourFoldScrew covers the P41 rule: 00l is absent
// unless l is divisible by 4.
func TestSysAbsentTest_FourFoldScrew(t *testing.T) {
	g := symop.P41()
	for l := -8; l <= 8; l++ {
		if l == 0 {
			continue
		}
		sat, err := orbit.NewSysAbsentTest(g, miller.Index{0, 0, l})
		require.NoError(t, err)
		assert.Equal(t, l%4 != 0, sat.IsSysAbsent(), "00%d", l)
	}
}

// TestSysAbsentTest_CentricStates verifies the centric branch and its
// restriction projection.
func TestSysAbsentTest_CentricStates(t *testing.T) {
	// P21: h0l reflections are centric with restriction 0 (the 2-fold
	// screw translation is orthogonal to (h,0,l)).
	sat, err := orbit.NewSysAbsentTest(symop.P21(), miller.Index{1, 0, 3})
	require.NoError(t, err)
	assert.False(t, sat.IsSysAbsent())
	assert.True(t, sat.IsCentric())
	assert.Equal(t, 0, sat.HTRestriction())
	assert.Equal(t, 0.0, sat.PhaseRestriction().HTAngle(true))

	// P21: a general index is acentric.
	sat, err = orbit.NewSysAbsentTest(symop.P21(), miller.Index{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, sat.IsSysAbsent())
	assert.False(t, sat.IsCentric())
	assert.Equal(t, -1, sat.HTRestriction())
	assert.False(t, sat.PhaseRestriction().IsCentric())
}

// TestSysAbsentTest_ConflictingRestrictions verifies that two
// operations mapping H·R = -H with different numerators force absence.
func TestSysAbsentTest_ConflictingRestrictions(t *testing.T) {
	g := symop.Group{
		TBF:    12,
		OrderP: 2,
		Ops: []symop.Op{
			{R: symop.Identity()},
			inversionOp(symop.TrVec{}),
			inversionOp(symop.TrVec{3, 0, 0}), // shifted center
		},
	}
	sat, err := orbit.NewSysAbsentTest(g, miller.Index{2, 0, 0})
	require.NoError(t, err)
	assert.True(t, sat.IsSysAbsent(), "restrictions 0 and 6 conflict")

	// The composite of the two inversions fixes H with a nonzero
	// phase, so the pure-translation rule agrees with the verdict.
	sat, err = orbit.NewSysAbsentTest(g, miller.Index{4, 0, 0})
	require.NoError(t, err)
	assert.False(t, sat.IsSysAbsent(), "H·T is a full turn for h=4")
	assert.True(t, sat.IsCentric())
}

// TestSysAbsentTest_AbsentRestrictionProjection pins the projection of
// an absent reflection: no phase restriction is reported.
func TestSysAbsentTest_AbsentRestrictionProjection(t *testing.T) {
	sat, err := orbit.NewSysAbsentTest(symop.P21(), miller.Index{0, 3, 0})
	require.NoError(t, err)
	require.True(t, sat.IsSysAbsent())
	p := sat.PhaseRestriction()
	assert.False(t, p.IsCentric())
	assert.Equal(t, -1.0, p.HTAngle(true))
}
