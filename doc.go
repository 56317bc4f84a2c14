// Package millsym is an exact, in-memory toolkit for crystallographic
// Miller-index symmetry — orbits, centric phase restrictions, and
// systematic-absence rules.
//
// 🚀 What is millsym?
//
//	A pure-Go library that takes a space group's symmetry operations
//	(integer rotation matrices, integer translation numerators over a
//	shared base factor) and answers the questions reflection-processing
//	code asks about every Miller index:
//		• Orbits: the complete, deduplicated, canonically ordered set of
//		  symmetry-equivalent indices
//		• Centricity: is the index mapped onto its own negation, and to
//		  which two phase values is it then restricted?
//		• Statistics: multiplicity M, Friedel-mate counts, epsilon factor
//		• Phase algebra: exact mapping of phases and complex structure
//		  factors between an index and any of its equivalents
//		• Systematic absences: single-pass detection of reflections whose
//		  structure factor vanishes identically
//
// ✨ Why choose millsym?
//
//   - Exact by construction – all symmetry bookkeeping is integer
//     arithmetic; floating point appears only at the phase/complex edge
//   - Deterministic – orbits are identical regardless of the order the
//     symmetry operations are supplied in
//   - Immutable values – every orbit, restriction and absence verdict is
//     read-only after construction and safe for concurrent reads
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	miller/ — the Index value type (h,k,l) and its ordering primitives
//	symop/  — symmetry operations, groups, and a small built-in catalog
//	orbit/  — orbits, phase restrictions, phase/amplitude algebra, and
//	          the systematic-absence test
//
// Quick ASCII example:
//
//	    (1,2,3) ──4₊──▶ (2,-1,3)
//	       ▲               │
//	       4₋              2
//	       │               ▼
//	    (-2,1,3) ◀──2──── (-1,-2,3)
//
//	the orbit of (1,2,3) under a 4-fold axis along c.
//
// Dive into the orbit package docs for the full query surface, and into
// symop for the operation conventions (row-vector H·R products, phase
// numerators over the translation base factor).
//
//	go get github.com/katalvlaran/millsym
package millsym
