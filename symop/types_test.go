package symop_test

import (
	"testing"

	"github.com/katalvlaran/millsym/miller"
	"github.com/katalvlaran/millsym/symop"
	"github.com/stretchr/testify/assert"
)

// TestIdentity_MulIndex verifies H·I == H for a few indices.
func TestIdentity_MulIndex(t *testing.T) {
	id := symop.Identity()
	for _, h := range []miller.Index{{0, 0, 0}, {1, 2, 3}, {-4, 0, 7}} {
		assert.Equal(t, h, id.MulIndex(h), "identity must fix %v", h)
	}
}

// TestRotMx_MulIndex_RowVectorConvention pins the H·R convention:
// component j of the product is Σ_i H[i]·R[i][j].
func TestRotMx_MulIndex_RowVectorConvention(t *testing.T) {
	// 4-fold about c maps coordinates (x,y,z) → (-y,x,z); indices
	// transform as row vectors: (h,k,l)·R = (k,-h,l).
	r := symop.RotMx{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	assert.Equal(t, miller.Index{2, -1, 3}, r.MulIndex(miller.Index{1, 2, 3}))
}

// TestTrVec_Dot checks the unreduced translational-phase numerator.
func TestTrVec_Dot(t *testing.T) {
	tr := symop.TrVec{0, 6, 0}
	assert.Equal(t, 12, tr.Dot(miller.Index{5, 2, -1}))
	assert.Equal(t, -6, tr.Dot(miller.Index{0, -1, 0}))
}

// TestModPositive covers positive, negative and wrapped arguments.
func TestModPositive(t *testing.T) {
	cases := []struct{ x, m, want int }{
		{0, 12, 0},
		{5, 12, 5},
		{12, 12, 0},
		{25, 12, 1},
		{-1, 12, 11},
		{-12, 12, 0},
		{-25, 12, 11},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, symop.ModPositive(c.x, c.m), "ModPositive(%d,%d)", c.x, c.m)
	}
}

// TestOp_PhaseNumerator_Range verifies the numerator is always reduced
// into [0, TBF).
func TestOp_PhaseNumerator_Range(t *testing.T) {
	op := symop.Op{R: symop.Identity(), T: symop.TrVec{3, -7, 5}}
	const tbf = 12
	for h := -3; h <= 3; h++ {
		for k := -3; k <= 3; k++ {
			for l := -3; l <= 3; l++ {
				ht := op.PhaseNumerator(miller.Index{h, k, l}, tbf)
				assert.GreaterOrEqual(t, ht, 0)
				assert.Less(t, ht, tbf)
			}
		}
	}
}

// TestGroup_Validate exercises every sentinel and the happy path.
func TestGroup_Validate(t *testing.T) {
	g := symop.P1()
	assert.NoError(t, g.Validate(), "catalog P1 must validate")

	bad := g
	bad.TBF = 0
	assert.ErrorIs(t, bad.Validate(), symop.ErrNonPositiveTBF)

	bad = g
	bad.Ops = nil
	assert.ErrorIs(t, bad.Validate(), symop.ErrNoOperations)

	bad = g
	bad.OrderP = 0
	assert.ErrorIs(t, bad.Validate(), symop.ErrNonPositiveOrderP)
}

// TestCatalog_Validates ensures every catalog group is well-formed and
// starts with the identity operation.
func TestCatalog_Validates(t *testing.T) {
	groups := map[string]symop.Group{
		"P1":  symop.P1(),
		"P-1": symop.P1bar(),
		"P2":  symop.P2(),
		"P21": symop.P21(),
		"C2":  symop.C2(),
		"P4":  symop.P4(),
		"P41": symop.P41(),
	}
	for name, g := range groups {
		assert.NoError(t, g.Validate(), "%s must validate", name)
		assert.Equal(t, symop.Identity(), g.Ops[0].R, "%s must start with the identity", name)
		assert.Equal(t, symop.TrVec{}, g.Ops[0].T, "%s identity op must have zero translation", name)
		assert.Equal(t, symop.CatalogTBF, g.TBF, "%s must use the catalog TBF", name)
	}
}

// TestCatalog_P4_RotationOrbit checks the 4-fold generates the expected
// four rotated indices.
func TestCatalog_P4_RotationOrbit(t *testing.T) {
	g := symop.P4()
	h := miller.Index{1, 2, 3}
	want := []miller.Index{
		{1, 2, 3},
		{2, -1, 3},
		{-1, -2, 3},
		{-2, 1, 3},
	}
	for i, op := range g.Ops {
		assert.Equal(t, want[i], op.R.MulIndex(h), "op %d of P4", i)
	}
}
