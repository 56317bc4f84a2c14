// Package miller defines the Miller Index value type and the ordering
// primitives the rest of github.com/katalvlaran/millsym builds on.
//
// 🚀 What is a Miller index?
//
//	An integer triple (h,k,l) labeling a diffraction direction (a
//	"reflection") of a crystal. Symmetry maps indices onto each other,
//	so downstream code constantly needs exact equality, negation, and a
//	deterministic total order on these triples.
//
// ✨ Key properties:
//   - Index is a plain [3]int value type: comparable with ==, copied by
//     value, safe to share across goroutines.
//   - All arithmetic is exact integer arithmetic — no rounding, ever.
//   - Less defines the natural lexicographic order (h, then k, then l).
//   - Hemisphere classifies an index by the sign of its lexicographically
//     first nonzero component; the orbit package uses it to produce a
//     canonical, input-order-independent listing of equivalent indices.
//
// Complexity: every operation in this package is O(1).
package miller
