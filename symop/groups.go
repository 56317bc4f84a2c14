package symop

// Hand-built operation lists for a few common space groups, in the
// conventional settings (monoclinic unique axis b, tetragonal c axis).
// All catalog groups share the conventional translation base factor 12,
// which expresses every screw/glide/centering translation exactly.
//
// These constructors exist so examples and tests do not depend on an
// external space-group table; they are not a general supplier.

// CatalogTBF is the translation base factor used by every catalog group.
const CatalogTBF = 12

// twoFoldB is the 2-fold rotation about the b axis: (x,y,z) → (-x,y,-z).
func twoFoldB() RotMx {
	return RotMx{
		-1, 0, 0,
		0, 1, 0,
		0, 0, -1,
	}
}

// fourFoldC is the 4-fold rotation about the c axis: (x,y,z) → (-y,x,z).
func fourFoldC() RotMx {
	return RotMx{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
}

// inversion is the inversion through the origin: (x,y,z) → (-x,-y,-z).
func inversion() RotMx {
	return RotMx{
		-1, 0, 0,
		0, -1, 0,
		0, 0, -1,
	}
}

// mulRot returns the matrix product a·b (both acting on column vectors).
func mulRot(a, b RotMx) RotMx {
	var p RotMx
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += a[i*3+k] * b[k*3+j]
			}
			p[i*3+j] = s
		}
	}

	return p
}

// P1 returns the trivial group: identity only, OrderP 1.
func P1() Group {
	return Group{
		TBF:    CatalogTBF,
		OrderP: 1,
		Ops:    []Op{{R: Identity()}},
	}
}

// P1bar returns the centrosymmetric triclinic group: identity plus
// inversion, OrderP 2. Every reflection is centric with restriction 0.
func P1bar() Group {
	return Group{
		TBF:    CatalogTBF,
		OrderP: 2,
		Ops: []Op{
			{R: Identity()},
			{R: inversion()},
		},
	}
}

// P2 returns the monoclinic group with a 2-fold axis along b, OrderP 2.
func P2() Group {
	return Group{
		TBF:    CatalogTBF,
		OrderP: 2,
		Ops: []Op{
			{R: Identity()},
			{R: twoFoldB()},
		},
	}
}

// P21 returns the monoclinic group with a 2-fold screw axis along b
// (translation b/2), OrderP 2. Reflections 0k0 with odd k are
// systematically absent.
func P21() Group {
	return Group{
		TBF:    CatalogTBF,
		OrderP: 2,
		Ops: []Op{
			{R: Identity()},
			{R: twoFoldB(), T: TrVec{0, CatalogTBF / 2, 0}},
		},
	}
}

// C2 returns the C-centered monoclinic group: P2 plus the centering
// translation (1/2,1/2,0) applied to both operations, OrderP 2 (the
// point-group order excludes centering). Reflections with h+k odd are
// systematically absent.
func C2() Group {
	half := CatalogTBF / 2
	return Group{
		TBF:    CatalogTBF,
		OrderP: 2,
		Ops: []Op{
			{R: Identity()},
			{R: twoFoldB()},
			{R: Identity(), T: TrVec{half, half, 0}},
			{R: twoFoldB(), T: TrVec{half, half, 0}},
		},
	}
}

// P4 returns the tetragonal group generated by the 4-fold axis along c,
// OrderP 4.
func P4() Group {
	r4 := fourFoldC()
	r2 := mulRot(r4, r4)
	r43 := mulRot(r2, r4)
	return Group{
		TBF:    CatalogTBF,
		OrderP: 4,
		Ops: []Op{
			{R: Identity()},
			{R: r4},
			{R: r2},
			{R: r43},
		},
	}
}

// P41 returns the tetragonal group with a 4-fold screw axis along c
// (translation c/4 per quarter turn), OrderP 4. Reflections 00l with
// l not divisible by 4 are systematically absent.
func P41() Group {
	r4 := fourFoldC()
	r2 := mulRot(r4, r4)
	r43 := mulRot(r2, r4)
	quarter := CatalogTBF / 4
	return Group{
		TBF:    CatalogTBF,
		OrderP: 4,
		Ops: []Op{
			{R: Identity()},
			{R: r4, T: TrVec{0, 0, quarter}},
			{R: r2, T: TrVec{0, 0, 2 * quarter}},
			{R: r43, T: TrVec{0, 0, 3 * quarter}},
		},
	}
}
