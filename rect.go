package gfx

import (
	"fmt"
	"math"

	"github.com/gogfx/gfx/internal/wide"
)

// Rect is an immutable axis-aligned region described by its top-left corner
// and a non-negative pixel count on each axis. A rect with XSpan 3 covers
// exactly 3 pixel positions.
//
// A rect is empty when either span is zero. An empty rect can still carry a
// meaningful position and one positive span, so empty rects are not collapsed
// to a single canonical value except for the all-zero case, which is
// RectEmpty.
//
// Position plus span may describe a maximum coordinate beyond the int32
// range. Such a rect is "overflowing": it is legal as an intermediate value,
// the wide accessors handle it exactly, and Trimmed cuts it back into range.
type Rect struct {
	x, y, xSpan, ySpan int32
}

var (
	// RectEmpty is the canonical empty rect at the origin.
	RectEmpty = Rect{}

	// RectHuge is centered on the origin with spans of half the int32
	// maximum, large enough to stand in for "everything" while keeping the
	// union of two huge rects representable without overflow.
	RectHuge = Rect{
		x:     math.MinInt32 / 4,
		y:     math.MinInt32 / 4,
		xSpan: math.MaxInt32 / 2,
		ySpan: math.MaxInt32 / 2,
	}
)

// NewRect creates a Rect from a top-left corner and spans. It fails with
// ErrInvalidArgument if either span is negative.
func NewRect(x, y, xSpan, ySpan int32) (Rect, error) {
	if xSpan < 0 || ySpan < 0 {
		return Rect{}, fmt.Errorf("%w: negative span (%d, %d)", ErrInvalidArgument, xSpan, ySpan)
	}
	return Rect{x: x, y: y, xSpan: xSpan, ySpan: ySpan}, nil
}

// X returns the left coordinate.
func (r Rect) X() int32 { return r.x }

// Y returns the top coordinate.
func (r Rect) Y() int32 { return r.y }

// XSpan returns the pixel count along the x axis.
func (r Rect) XSpan() int32 { return r.xSpan }

// YSpan returns the pixel count along the y axis.
func (r Rect) YSpan() int32 { return r.ySpan }

// IsEmpty reports whether the rect covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.xSpan == 0 || r.ySpan == 0
}

// WithX returns the rect with its left coordinate replaced.
func (r Rect) WithX(x int32) Rect {
	return Rect{x: x, y: r.y, xSpan: r.xSpan, ySpan: r.ySpan}
}

// WithY returns the rect with its top coordinate replaced.
func (r Rect) WithY(y int32) Rect {
	return Rect{x: r.x, y: y, xSpan: r.xSpan, ySpan: r.ySpan}
}

// WithXSpan returns the rect with its x span replaced. It fails with
// ErrInvalidArgument if the span is negative.
func (r Rect) WithXSpan(xSpan int32) (Rect, error) {
	if xSpan < 0 {
		return Rect{}, fmt.Errorf("%w: negative span %d", ErrInvalidArgument, xSpan)
	}
	return Rect{x: r.x, y: r.y, xSpan: xSpan, ySpan: r.ySpan}, nil
}

// WithYSpan returns the rect with its y span replaced. It fails with
// ErrInvalidArgument if the span is negative.
func (r Rect) WithYSpan(ySpan int32) (Rect, error) {
	if ySpan < 0 {
		return Rect{}, fmt.Errorf("%w: negative span %d", ErrInvalidArgument, ySpan)
	}
	return Rect{x: r.x, y: r.y, xSpan: r.xSpan, ySpan: ySpan}, nil
}

// Shift returns the rect moved by (dx, dy). Like Point.Shift, the addition
// wraps around on int32 overflow rather than paying for a range check.
func (r Rect) Shift(dx, dy int32) Rect {
	return Rect{x: r.x + dx, y: r.y + dy, xSpan: r.xSpan, ySpan: r.ySpan}
}

// Grow returns the rect with signed deltas applied to its spans. The
// additions wrap around, but a resulting negative span fails with
// ErrInvalidArgument since it would break every later operation.
func (r Rect) Grow(dxSpan, dySpan int32) (Rect, error) {
	xs, ys := r.xSpan+dxSpan, r.ySpan+dySpan
	if xs < 0 || ys < 0 {
		return Rect{}, fmt.Errorf("%w: negative span (%d, %d)", ErrInvalidArgument, xs, ys)
	}
	return Rect{x: r.x, y: r.y, xSpan: xs, ySpan: ys}, nil
}

// GrowBorders returns the rect with each border moved outward by the given
// signed amount: the left border by left, the top border by top, and so on.
// Negative amounts move a border inward. A resulting negative span fails
// with ErrInvalidArgument.
func (r Rect) GrowBorders(left, top, right, bottom int32) (Rect, error) {
	xs, ys := r.xSpan+left+right, r.ySpan+top+bottom
	if xs < 0 || ys < 0 {
		return Rect{}, fmt.Errorf("%w: negative span (%d, %d)", ErrInvalidArgument, xs, ys)
	}
	return Rect{x: r.x - left, y: r.y - top, xSpan: xs, ySpan: ys}, nil
}

// XMax returns the inclusive right coordinate x+xSpan-1. It fails with
// ErrOverflow when that value is not representable as an int32, except for
// an empty rect, which contains no pixel and therefore has no real maximum
// to overflow; there the wrapped value is returned without error.
func (r Rect) XMax() (int32, error) {
	m := wide.Max(r.x, r.xSpan)
	if !wide.InInt32(m) && !r.IsEmpty() {
		return 0, fmt.Errorf("%w: x max %d", ErrOverflow, m)
	}
	return int32(m), nil
}

// YMax returns the inclusive bottom coordinate y+ySpan-1, with the same
// overflow behavior as XMax.
func (r Rect) YMax() (int32, error) {
	m := wide.Max(r.y, r.ySpan)
	if !wide.InInt32(m) && !r.IsEmpty() {
		return 0, fmt.Errorf("%w: y max %d", ErrOverflow, m)
	}
	return int32(m), nil
}

// XMaxWide returns the inclusive right coordinate without overflow.
func (r Rect) XMaxWide() int64 { return wide.Max(r.x, r.xSpan) }

// YMaxWide returns the inclusive bottom coordinate without overflow.
func (r Rect) YMaxWide() int64 { return wide.Max(r.y, r.ySpan) }

// XMidWide returns the middle x coordinate without overflow. Even spans
// have no exact middle; the division truncates toward zero.
func (r Rect) XMidWide() int64 { return wide.Mid(r.x, r.xSpan) }

// YMidWide returns the middle y coordinate without overflow, with the same
// rounding as XMidWide.
func (r Rect) YMidWide() int64 { return wide.Mid(r.y, r.ySpan) }

// Area returns the covered pixel count. It fails with ErrOverflow when the
// count exceeds the int32 range; AreaWide never does.
func (r Rect) Area() (int32, error) {
	a := wide.Area(r.xSpan, r.ySpan)
	if a > math.MaxInt32 {
		return 0, fmt.Errorf("%w: area %d", ErrOverflow, a)
	}
	return int32(a), nil
}

// AreaWide returns the covered pixel count as an int64.
func (r Rect) AreaWide() int64 {
	return wide.Area(r.xSpan, r.ySpan)
}

// ContainsCoord reports whether the pixel at (px, py) lies inside the rect.
// An empty rect contains nothing.
func (r Rect) ContainsCoord(px, py int32) bool {
	return wide.Contains(r.x, r.xSpan, px) && wide.Contains(r.y, r.ySpan, py)
}

// ContainsRect reports whether o lies entirely inside r. An empty rect
// contains nothing and is contained by nothing, not even an identical empty
// rect; use ContainsBounds for a pure coordinate comparison.
func (r Rect) ContainsRect(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.ContainsBounds(o)
}

// ContainsBounds reports whether o's bounds lie inside r's bounds, ignoring
// emptiness on both sides.
func (r Rect) ContainsBounds(o Rect) bool {
	return o.x >= r.x && wide.End(o.x, o.xSpan) <= wide.End(r.x, r.xSpan) &&
		o.y >= r.y && wide.End(o.y, o.ySpan) <= wide.End(r.y, r.ySpan)
}

// Overlaps reports whether the two rects share at least one pixel. Empty
// rects overlap nothing.
func (r Rect) Overlaps(o Rect) bool {
	return wide.Overlap(r.x, r.xSpan, o.x, o.xSpan) &&
		wide.Overlap(r.y, r.ySpan, o.y, o.ySpan)
}

// RegionsOverlap reports whether two raw (position, span) regions share at
// least one pixel, without building Rect values. Non-positive spans never
// overlap anything.
func RegionsOverlap(x1, y1, xSpan1, ySpan1, x2, y2, xSpan2, ySpan2 int32) bool {
	return wide.Overlap(x1, xSpan1, x2, xSpan2) &&
		wide.Overlap(y1, ySpan1, y2, ySpan2)
}

// Intersect returns the largest rect contained in both r and o. When the
// operands do not overlap on an axis the result keeps the computed position
// with a zero span instead of collapsing to RectEmpty, so that later
// restoring a coordinate yields a sensible non-empty rect again.
func (r Rect) Intersect(o Rect) Rect {
	nx := max(r.x, o.x)
	ny := max(r.y, o.y)
	xs := min(wide.End(r.x, r.xSpan), wide.End(o.x, o.xSpan)) - int64(nx)
	ys := min(wide.End(r.y, r.ySpan), wide.End(o.y, o.ySpan)) - int64(ny)
	res := Rect{
		x:     nx,
		y:     ny,
		xSpan: int32(max(xs, 0)),
		ySpan: int32(max(ys, 0)),
	}
	// Hand back the operand itself when it already is the intersection.
	if res == r {
		return r
	}
	if res == o {
		return o
	}
	return res
}

// UnionCoord returns the smallest rect containing both r and the pixel at
// (px, py). An empty rect yields the 1x1 rect at the pixel. It fails with
// ErrOverflow when the grown span exceeds the int32 range.
func (r Rect) UnionCoord(px, py int32) (Rect, error) {
	if r.IsEmpty() {
		return Rect{x: px, y: py, xSpan: 1, ySpan: 1}, nil
	}
	nx, xs, err := unionAxisCoord(r.x, r.xSpan, px)
	if err != nil {
		return Rect{}, err
	}
	ny, ys, err := unionAxisCoord(r.y, r.ySpan, py)
	if err != nil {
		return Rect{}, err
	}
	return Rect{x: nx, y: ny, xSpan: xs, ySpan: ys}, nil
}

func unionAxisCoord(pos, span, p int32) (int32, int32, error) {
	lo := min(int64(pos), int64(p))
	hi := max(wide.End(pos, span), int64(p)+1)
	s := hi - lo
	if s > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: union span %d", ErrOverflow, s)
	}
	return int32(lo), int32(s), nil
}

// Union returns the bounding box of r and o. If exactly one operand is
// empty the other is returned unchanged. Otherwise the position is the
// per-axis minimum and the span reaches to the per-axis maximum bound,
// except that a zero span on either operand forces a zero span on that axis
// independently of the other axis. It fails with ErrOverflow when a grown
// span exceeds the int32 range.
func (r Rect) Union(o Rect) (Rect, error) {
	if r.IsEmpty() != o.IsEmpty() {
		if r.IsEmpty() {
			return o, nil
		}
		return r, nil
	}
	nx, xs, err := unionAxis(r.x, r.xSpan, o.x, o.xSpan)
	if err != nil {
		return Rect{}, err
	}
	ny, ys, err := unionAxis(r.y, r.ySpan, o.y, o.ySpan)
	if err != nil {
		return Rect{}, err
	}
	return Rect{x: nx, y: ny, xSpan: xs, ySpan: ys}, nil
}

func unionAxis(pos1, span1, pos2, span2 int32) (int32, int32, error) {
	pos := min(pos1, pos2)
	if span1 == 0 || span2 == 0 {
		return pos, 0, nil
	}
	s := max(wide.End(pos1, span1), wide.End(pos2, span2)) - int64(pos)
	if s > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: union span %d", ErrOverflow, s)
	}
	return pos, int32(s), nil
}

// OverflowsX reports whether the rect's right coordinate falls outside the
// int32 range. An empty rect never overflows, even at the extreme minimum
// position.
func (r Rect) OverflowsX() bool {
	return !r.IsEmpty() && !wide.InInt32(wide.Max(r.x, r.xSpan))
}

// OverflowsY reports whether the rect's bottom coordinate falls outside the
// int32 range. An empty rect never overflows.
func (r Rect) OverflowsY() bool {
	return !r.IsEmpty() && !wide.InInt32(wide.Max(r.y, r.ySpan))
}

// Trimmed returns the rect with any overflowing span reduced to the largest
// value that keeps the maximum bound in range. The position is unchanged,
// and a non-overflowing rect is returned as is.
func (r Rect) Trimmed() Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		x:     r.x,
		y:     r.y,
		xSpan: TrimmedSpan(r.x, r.xSpan),
		ySpan: TrimmedSpan(r.y, r.ySpan),
	}
}

// TrimmedSpan returns the largest span not exceeding span for which
// pos+span-1 stays in the int32 range.
func TrimmedSpan(pos, span int32) int32 {
	if wide.InInt32(wide.Max(pos, span)) {
		return span
	}
	return int32(math.MaxInt32 - int64(pos) + 1)
}

// Compare orders rects by y, then x, then y span, then x span. It returns
// -1, 0 or 1.
func (r Rect) Compare(o Rect) int {
	for _, d := range [4]int64{
		int64(r.y) - int64(o.y),
		int64(r.x) - int64(o.x),
		int64(r.ySpan) - int64(o.ySpan),
		int64(r.xSpan) - int64(o.xSpan),
	} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}
