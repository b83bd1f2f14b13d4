// Package box provides an immutable rectangle value type with CSS dimensions.
package box

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// Rect is an axis-aligned rectangle, located at an origin (top/left) and
// sized in device units. Rects are values: modifying operations return a new
// rect and leave the receiver untouched. The zero Rect is the empty rect at
// the origin.
type Rect struct {
	x, y dimen.DU
	w, h dimen.DU
}

// New creates a rect from an origin and an extent. Negative extents are
// normalized by shifting the origin, i.e.
//
//	New(10, 10, -4, 2)  ≡  New(6, 10, 4, 2)
//
func New(x, y, w, h dimen.DU) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{x: x, y: y, w: w, h: h}
}

// FromCorners creates a rect spanned by two opposite corner points, in any
// order.
func FromCorners(x1, y1, x2, y2 dimen.DU) Rect {
	return New(x1, y1, x2-x1, y2-y1)
}

// --- API -------------------------------------------------------------------

func (r Rect) X() dimen.DU      { return r.x }
func (r Rect) Y() dimen.DU      { return r.y }
func (r Rect) Width() dimen.DU  { return r.w }
func (r Rect) Height() dimen.DU { return r.h }

// Empty is true for rects without extent in at least one direction.
func (r Rect) Empty() bool {
	return r.w == 0 || r.h == 0
}

// Contains checks whether a point lies within the rect. Points on the left
// and top edges are inside, points on the right and bottom edges are not,
// so adjacent rects do not share contained points.
func (r Rect) Contains(x, y dimen.DU) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Translate moves the rect by a displacement, returning the moved rect.
func (r Rect) Translate(dx, dy dimen.DU) Rect {
	return Rect{x: r.x + dx, y: r.y + dy, w: r.w, h: r.h}
}

// Union returns the smallest rect covering both r and other. An empty rect
// is the neutral operand.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x1 := minDU(r.x, other.x)
	y1 := minDU(r.y, other.y)
	x2 := maxDU(r.x+r.w, other.x+other.w)
	y2 := maxDU(r.y+r.h, other.y+other.h)
	return FromCorners(x1, y1, x2, y2)
}

func (r Rect) String() string {
	return fmt.Sprintf("%s %s %s %s", r.x, r.y, r.w, r.h)
}

// --- Helpers ---------------------------------------------------------------

func minDU(a, b dimen.DU) dimen.DU {
	if a < b {
		return a
	}
	return b
}

func maxDU(a, b dimen.DU) dimen.DU {
	if a > b {
		return a
	}
	return b
}
