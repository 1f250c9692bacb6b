package gfx

// Surface is the contract every rendering backend offers to drawing code.
// Backends (software rasterizer, GPU texture, native toolkit canvas) differ
// in how they draw, but they all consume the same value types: rects and
// points for regions and coordinates, transforms for the mapping between
// the surface's base frame and the caller-selected frame, and Color for the
// current color state.
//
// The transform and clip form a stack: PushTransform composes a further
// transform onto the current one, PushClip intersects a further clip
// (expressed in the current frame) into the current one, and Pop undoes the
// most recent push of either kind. Backends must support the 32-bit color
// form and may optionally preserve full 16-bit precision.
type Surface interface {
	// Bounds returns the drawable area in the base frame.
	Bounds() Rect

	// PushTransform composes t onto the current transform.
	PushTransform(t Transform)
	// PushClip intersects r, given in the current frame, into the clip.
	PushClip(r Rect)
	// Pop undoes the most recent PushTransform or PushClip.
	Pop()
	// Transform returns the current frame-2-to-base transform.
	Transform() Transform
	// Clip returns the current clip in the base frame.
	Clip() Rect

	// SetColor replaces the current color.
	SetColor(c Color)
	// Color returns the current color.
	Color() Color

	// FillRect fills r, given in the current frame, with the current color.
	FillRect(r Rect)
	// DrawLine draws a one-pixel line between the two points in the
	// current frame.
	DrawLine(from, to Point)
}

// stateEntry snapshots the stack state before a push so Pop can restore it.
type stateEntry struct {
	transform Transform
	clip      Rect
}

// State implements the transform/clip/color bookkeeping of Surface so that
// backends only have to implement the actual drawing. The zero value is not
// ready to use; call NewState with the surface bounds.
type State struct {
	base      Rect
	transform Transform
	clip      Rect
	color     Color
	stack     []stateEntry
}

// NewState creates the bookkeeping for a surface with the given base-frame
// bounds. The initial clip is the bounds, trimmed if overflowing, and the
// initial transform is the identity.
func NewState(bounds Rect) *State {
	return &State{
		base:  bounds,
		clip:  bounds.Trimmed(),
		stack: make([]stateEntry, 0, 8),
	}
}

// Bounds returns the base-frame bounds.
func (s *State) Bounds() Rect { return s.base }

// Transform returns the current frame-2-to-base transform.
func (s *State) Transform() Transform { return s.transform }

// Clip returns the current clip in the base frame.
func (s *State) Clip() Rect { return s.clip }

// Color returns the current color.
func (s *State) Color() Color { return s.color }

// SetColor replaces the current color. Unlike transforms and clips, the
// color is not stacked; callers set it before each drawing run.
func (s *State) SetColor(c Color) { s.color = c }

// PushTransform composes t onto the current transform.
func (s *State) PushTransform(t Transform) {
	s.push()
	s.transform = s.transform.Composed(t)
}

// PushClip intersects r, given in the current frame, into the current clip.
// An overflowing rect is trimmed before use.
func (s *State) PushClip(r Rect) {
	s.push()
	if r.OverflowsX() || r.OverflowsY() {
		logger().Debug("gfx: trimming overflowing clip rect",
			"x", r.X(), "y", r.Y(), "xSpan", r.XSpan(), "ySpan", r.YSpan())
		r = r.Trimmed()
	}
	s.clip = s.clip.Intersect(s.transform.RectIn1(r))
}

func (s *State) push() {
	s.stack = append(s.stack, stateEntry{transform: s.transform, clip: s.clip})
}

// Pop undoes the most recent PushTransform or PushClip. Popping an empty
// stack is a no-op.
func (s *State) Pop() {
	if len(s.stack) == 0 {
		return
	}
	last := len(s.stack) - 1
	s.transform = s.stack[last].transform
	s.clip = s.stack[last].clip
	s.stack = s.stack[:last]
}

// Depth returns the number of pushes not yet popped.
func (s *State) Depth() int { return len(s.stack) }

// ClipIn2 returns the current clip converted to the current frame, handy
// for backends that cull drawing work early.
func (s *State) ClipIn2() Rect {
	return s.transform.RectIn2(s.clip)
}
