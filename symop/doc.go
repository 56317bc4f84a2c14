// Package symop represents crystallographic symmetry operations in the
// exact integer form consumed by the orbit package.
//
// 🚀 What is a symmetry operation?
//
//	A rotation part R (3×3 integer matrix) plus a translation part T
//	(integer 3-vector) that map a crystal onto itself. Translations are
//	stored as numerators over a shared positive denominator, the
//	translation base factor (TBF), so every translational phase is an
//	exact fraction — no floating point anywhere in this package.
//
// ✨ Key pieces:
//   - RotMx / TrVec / Op — the operation triple itself.
//   - Group — an ordered operation list sharing one TBF, plus OrderP,
//     the point-group order without centering translations. This is the
//     shape the external space-group supplier hands to the core.
//   - MulIndex — the exact row-vector product H·R used to generate
//     symmetry-equivalent Miller indices.
//   - PhaseNumerator — the reduced translational phase H·T mod TBF.
//   - A small catalog of hand-built common groups (P1, P-1, P2, P21, C2,
//     P4, P41) for examples and tests. Parsing of space-group symbols and
//     full table lookup are deliberately out of scope.
//
// Conventions:
//
//	RotMx is row-major and acts on fractional coordinates as a column
//	vector (x' = R·x + T/TBF); Miller indices therefore transform as row
//	vectors, HR = H·R. Translation numerators are taken modulo TBF with
//	a positive remainder, so every phase numerator lies in [0, TBF).
//
// Complexity: every operation in this package is O(1) per symmetry op.
package symop
