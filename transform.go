package gfx

// Transform is a bijection between two integer coordinate frames: a quadrant
// rotation of frame 2 relative to frame 1 plus the position of frame 2's
// origin expressed in frame 1. Drawing surfaces keep a stack of these to map
// between their base frame (frame 1) and the caller-selected frame (frame 2).
//
// Transform is a comparable value type; the zero value is the identity.
type Transform struct {
	rot  Rotation
	x, y int32
}

// TransformIdentity maps every coordinate to itself. It is its own inverse.
var TransformIdentity = Transform{}

// NewTransform creates a Transform from the rotation of frame 2 relative to
// frame 1 and the position of frame 2's origin in frame 1.
func NewTransform(rot Rotation, frame2OriginX, frame2OriginY int32) Transform {
	return Transform{rot: rot & 3, x: frame2OriginX, y: frame2OriginY}
}

// Rotation returns the rotation of frame 2 relative to frame 1.
func (t Transform) Rotation() Rotation { return t.rot }

// Frame2OriginX returns the x position of frame 2's origin in frame 1.
func (t Transform) Frame2OriginX() int32 { return t.x }

// Frame2OriginY returns the y position of frame 2's origin in frame 1.
func (t Transform) Frame2OriginY() int32 { return t.y }

// IsIdentity reports whether the transform maps every coordinate to itself.
func (t Transform) IsIdentity() bool {
	return t == TransformIdentity
}

// Inverted returns the transform that maps frame 1 onto frame 2. Inversion
// is cheap integer arithmetic, and equal transforms always yield equal
// inverses, so callers may invert as often as convenient.
func (t Transform) Inverted() Transform {
	if t.IsIdentity() {
		return t
	}
	inv := t.rot.Inverted()
	ix, iy := inv.DeltaIn1(-t.x, -t.y)
	return Transform{rot: inv, x: ix, y: iy}
}

// Composed chains two transforms: if t maps frame 2 to frame 1 and o maps
// frame 3 to frame 2, the result maps frame 3 to frame 1. The resulting
// rotation is the sum of the rotations and the resulting translation is the
// image of o's translation under t.
func (t Transform) Composed(o Transform) Transform {
	return Transform{
		rot: t.rot.Plus(o.rot),
		x:   t.XIn1(o.x, o.y),
		y:   t.YIn1(o.x, o.y),
	}
}

// XIn1 returns the frame-1 x coordinate of the frame-2 point (x2, y2).
func (t Transform) XIn1(x2, y2 int32) int32 {
	return t.rot.Cos()*x2 - t.rot.Sin()*y2 + t.x
}

// YIn1 returns the frame-1 y coordinate of the frame-2 point (x2, y2).
func (t Transform) YIn1(x2, y2 int32) int32 {
	return t.rot.Sin()*x2 + t.rot.Cos()*y2 + t.y
}

// XIn2 returns the frame-2 x coordinate of the frame-1 point (x1, y1). The
// backward direction is recomputed from the rotation directly instead of
// going through Inverted.
func (t Transform) XIn2(x1, y1 int32) int32 {
	dx, _ := t.rot.DeltaIn2(x1-t.x, y1-t.y)
	return dx
}

// YIn2 returns the frame-2 y coordinate of the frame-1 point (x1, y1).
func (t Transform) YIn2(x1, y1 int32) int32 {
	_, dy := t.rot.DeltaIn2(x1-t.x, y1-t.y)
	return dy
}

// RectIn1 returns the bounding box in frame 1 of a rect given in frame 2.
// The spans swap axes for the flipping rotations; an empty rect stays empty.
func (t Transform) RectIn1(r Rect) Rect {
	return mapRect(r, t.XIn1, t.YIn1, t.rot)
}

// RectIn2 returns the bounding box in frame 2 of a rect given in frame 1.
func (t Transform) RectIn2(r Rect) Rect {
	return mapRect(r, t.XIn2, t.YIn2, t.rot)
}

func mapRect(r Rect, fx, fy func(int32, int32) int32, rot Rotation) Rect {
	// Opposite corner deltas, clamped so an empty rect keeps its position.
	dx := max(r.XSpan()-1, 0)
	dy := max(r.YSpan()-1, 0)
	x1, y1 := fx(r.X(), r.Y()), fy(r.X(), r.Y())
	x2, y2 := fx(r.X()+dx, r.Y()+dy), fy(r.X()+dx, r.Y()+dy)
	xs, ys := rot.MapSpans(r.XSpan(), r.YSpan())
	return Rect{x: min(x1, x2), y: min(y1, y2), xSpan: xs, ySpan: ys}
}

// RectRotation returns the transform that draws the rotated image of a
// component back at the component's own top-left corner: content laid out in
// frame 2 inside bounds with swapped spans appears in frame 1 exactly inside
// bounds. Backends use this to draw a rotated component without
// special-casing each quadrant.
func RectRotation(rot Rotation, bounds Rect) Transform {
	if rot == Rot0 {
		return TransformIdentity
	}
	xs, ys := rot.MapSpans(bounds.XSpan(), bounds.YSpan())
	content := Rect{x: bounds.X(), y: bounds.Y(), xSpan: xs, ySpan: ys}
	box := NewTransform(rot, 0, 0).RectIn1(content)
	return NewTransform(rot, bounds.X()-box.X(), bounds.Y()-box.Y())
}

// RectRotationReusing is RectRotation with churn avoidance: when prev
// already is the wanted transform it is handed back unchanged.
func RectRotationReusing(prev Transform, rot Rotation, bounds Rect) Transform {
	t := RectRotation(rot, bounds)
	if t == prev {
		return prev
	}
	return t
}

// Compare orders transforms by translation y, then x, then rotation. It
// returns -1, 0 or 1.
func (t Transform) Compare(o Transform) int {
	for _, d := range [3]int64{
		int64(t.y) - int64(o.y),
		int64(t.x) - int64(o.x),
		int64(t.rot) - int64(o.rot),
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
