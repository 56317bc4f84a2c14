package miller

import "fmt"

// Index is a Miller index: an ordered triple of signed integers (h,k,l).
// It is an immutable value type; use == for exact equality.
type Index [3]int

// New returns the Index (h,k,l).
// Provided for readability at call sites; Index{h, k, l} is equivalent.
func New(h, k, l int) Index { return Index{h, k, l} }

// H returns the first component.
func (m Index) H() int { return m[0] }

// K returns the second component.
func (m Index) K() int { return m[1] }

// L returns the third component.
func (m Index) L() int { return m[2] }

// Neg returns the component-wise negation (-h,-k,-l), the Friedel mate
// of m.
func (m Index) Neg() Index { return Index{-m[0], -m[1], -m[2]} }

// IsZero reports whether m is (0,0,0).
func (m Index) IsZero() bool { return m[0] == 0 && m[1] == 0 && m[2] == 0 }

// Less reports whether m precedes other in the natural lexicographic
// order: first by h, then by k, then by l.
func (m Index) Less(other Index) bool {
	for i := 0; i < 3; i++ {
		if m[i] != other[i] {
			return m[i] < other[i]
		}
	}

	return false
}

// Hemisphere classifies m by the sign of its lexicographically first
// nonzero component: +1 if that component is positive, -1 if negative.
// The zero index (0,0,0) is assigned to the positive hemisphere.
//
// Negation always flips the hemisphere of a nonzero index, so an index
// and its Friedel mate never share a hemisphere.
func (m Index) Hemisphere() int {
	for i := 0; i < 3; i++ {
		if m[i] > 0 {
			return 1
		}
		if m[i] < 0 {
			return -1
		}
	}

	return 1
}

// String renders m as "(h,k,l)".
func (m Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", m[0], m[1], m[2])
}
