package spline

import (
	"iter"
	"math"
	"slices"
)

var _ ParametricCurve = (*Spline)(nil)
var _ Differentiable = (*Spline)(nil)

// Spline is an ordered chain of segments. Segment i covers the global
// parameter range [i, i+1).
//
// Adjacent segments are kept positionally continuous: the end of segment i
// coincides with the start of segment i+1. This isn't enforced structurally;
// instead, every operation that could break a joint moves segments back into
// place afterwards.
//
// A spline owns its segments. A segment must not be part of more than one
// spline, and callers must not mutate a segment that belongs to a spline
// other than through the spline.
type Spline struct {
	segs []*Segment
}

// New returns a spline consisting of segs, in order. The segments are used as
// given; they aren't moved to connect to each other. Use
// [Spline.ConnectSegment] to build a spline whose joints are closed. Nil
// segments are dropped.
func New(segs ...*Segment) *Spline {
	segs = slices.DeleteFunc(slices.Clone(segs), func(seg *Segment) bool { return seg == nil })
	return &Spline{segs: segs}
}

// Len returns the number of segments.
func (sp *Spline) Len() int { return len(sp.segs) }

// Domain returns the range of the global parameter covered by segments.
func (sp *Spline) Domain() (float64, float64) {
	return 0, float64(len(sp.segs))
}

// Segments returns an iterator over the segments and their indices.
func (sp *Spline) Segments() iter.Seq2[int, *Segment] {
	return slices.All(sp.segs)
}

// Segment returns the i-th segment.
//
// Out of range indices don't panic. For i ≥ Len, Segment returns a new
// zero-length segment located at the end of the last segment; for i < 0, one
// located at the start of the first segment. If the spline is empty, the
// zero-length segment is located at the origin. Such segments aren't part
// of the spline.
func (sp *Spline) Segment(i int) *Segment {
	switch {
	case len(sp.segs) == 0:
		return pointSegment(Point{})
	case i >= len(sp.segs):
		return pointSegment(sp.segs[len(sp.segs)-1].End())
	case i < 0:
		return pointSegment(sp.segs[0].Start())
	default:
		return sp.segs[i]
	}
}

// locate splits a global parameter into a segment and a local parameter.
// Indices outside the spline are clamped before the conversion to int, which
// would otherwise overflow for huge or infinite t. The zero-length segments
// returned for them are evaluated at 0, as the position is the same for any
// local parameter.
func (sp *Spline) locate(t float64) (*Segment, float64) {
	i := math.Floor(t)
	switch {
	case math.IsNaN(t):
		return sp.Segment(0), t
	case i >= float64(len(sp.segs)):
		return sp.Segment(len(sp.segs)), 0
	case i < 0:
		return sp.Segment(-1), 0
	default:
		return sp.segs[int(i)], t - i
	}
}

// Eval returns the position at global parameter t. The integer part of t
// selects the segment and the fractional part is the parameter within that
// segment. See [Spline.Segment] for out of range values.
func (sp *Spline) Eval(t float64) Point {
	seg, lt := sp.locate(t)
	return seg.Eval(lt)
}

// Velocity returns the derivative at global parameter t, with respect to the
// parameter of the segment t falls into.
func (sp *Spline) Velocity(t float64) Vec2 {
	seg, lt := sp.locate(t)
	return seg.Velocity(lt)
}

// Translate moves every segment by v.
func (sp *Spline) Translate(v Vec2) {
	for _, seg := range sp.segs {
		seg.Translate(v)
	}
}

// MovePointTo translates the spline so that its position at global parameter
// t lies on target.
func (sp *Spline) MovePointTo(t float64, target Point) {
	sp.Translate(target.Sub(sp.Eval(t)))
}

// Rotate rotates the spline counter-clockwise by the given number of degrees,
// keeping the position at global parameter t fixed.
//
// Each segment is rotated about its own start and then moved so that its
// start meets the end of the previous segment. Finally, the whole chain is
// moved so that the point at t returns to where it was. For a spline whose
// joints are closed this is a rigid rotation of the whole curve; open joints
// are closed in the process.
func (sp *Spline) Rotate(degrees, t float64) {
	center := sp.Eval(t)
	var prev *Segment
	for _, seg := range sp.segs {
		seg.Rotate(degrees, 0)
		if prev != nil {
			seg.MovePointTo(0, prev.End())
		}
		prev = seg
	}
	sp.MovePointTo(t, center)
}

// Transform applies an affine transformation to every segment and then
// reconnects each segment to its predecessor.
func (sp *Spline) Transform(aff Affine) {
	var prev *Segment
	for _, seg := range sp.segs {
		seg.Transform(aff)
		if prev != nil {
			seg.MovePointTo(0, prev.End())
		}
		prev = seg
	}
}

// ExtendPoint grows the spline by one point. The new segment uses the basis
// of the last segment, and its control points are the last three stored
// points of the last segment followed by pt. It is connected to the end of
// the spline and returned.
//
// This is meaningful for bases where [Basis.SupportsExtension] is true. For
// other bases the window is formed the same way, but the result is
// generally not a smooth continuation. Extending an empty spline starts from
// a zero-length Bézier segment at the origin.
func (sp *Spline) ExtendPoint(pt Point) *Segment {
	last := sp.Segment(len(sp.segs) - 1)
	s := last.StoredPoints()
	seg := NewSegment([4]Point{s[1], s[2], s[3], pt}, last.Basis())
	sp.ConnectSegment(seg)
	return seg
}

// ConnectSegment moves seg so that its start meets the end of the last segment
// and appends it to the spline. If seg is already part of the spline, it is
// moved but not appended a second time. A nil seg is ignored.
func (sp *Spline) ConnectSegment(seg *Segment) {
	if seg == nil {
		return
	}
	if n := len(sp.segs); n > 0 {
		seg.MovePointTo(0, sp.segs[n-1].End())
	}
	if !slices.Contains(sp.segs, seg) {
		sp.segs = append(sp.segs, seg)
	}
}

// ConnectSpline connects each of o's segments, in order, to the end of sp.
// The segments are moved into sp and o is left empty. Connecting a spline to
// itself does nothing.
func (sp *Spline) ConnectSpline(o *Spline) {
	if o == sp {
		return
	}
	for _, seg := range o.segs {
		sp.ConnectSegment(seg)
	}
	o.segs = nil
}

// Split removes the segments starting at index i and returns them as a new
// spline. sp keeps the segments [0, i). Indices are clamped to [0, Len].
func (sp *Spline) Split(i int) *Spline {
	i = min(max(i, 0), len(sp.segs))
	tail := &Spline{segs: slices.Clone(sp.segs[i:])}
	clear(sp.segs[i:])
	sp.segs = sp.segs[:i:i]
	return tail
}

// Continuous reports whether the end of every segment lies within tol of the
// start of the next one.
func (sp *Spline) Continuous(tol float64) bool {
	for i := 1; i < len(sp.segs); i++ {
		if sp.segs[i-1].End().Distance(sp.segs[i].Start()) > tol {
			return false
		}
	}
	return true
}

// Path returns the spline as a path of cubic Béziers, with one subpath per
// segment.
func (sp *Spline) Path() BezPath {
	p := make(BezPath, 0, 2*len(sp.segs))
	for _, seg := range sp.segs {
		for el := range seg.PathElements() {
			p.Push(el)
		}
	}
	return p
}
