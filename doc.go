// Package spline implements piecewise cubic curves in the plane.
//
// # Segments and bases
//
// A [Segment] is a single cubic defined by four control points. How the points
// shape the curve depends on the segment's [Basis]:
//
//   - [Bezier]: the curve runs from the first to the last point, pulled
//     towards the middle two.
//   - [Hermite]: start point, start handle, end point, end handle. The
//     tangents are the handles' offsets from their points.
//   - [CatmullRom]: four consecutive points of a sequence; the curve passes
//     through the middle two.
//   - [BSpline]: four consecutive points of a sequence, approximated by a
//     uniform cubic B-spline.
//
// Internally, a segment evaluates
//
//	[1 t t² t³] × C × S × P
//
// where P are the control points, S is the basis's storing matrix and C its
// characteristic matrix (see [Basis.Storing] and [Basis.Characteristic]).
// Multiplying by the inverse of the Bézier characteristic matrix turns any
// segment into an equivalent cubic Bézier, available as
// [Segment.BezierPoints], [Segment.Bezier] and [Segment.PathElements]. This
// lets renderers draw every basis with a single cubic Bézier primitive.
//
// # Splines
//
// A [Spline] chains segments. Its global parameter selects a segment with the
// integer part and a position within it with the fractional part. Operations
// that move segments independently, such as [Spline.Rotate] and
// [Spline.ConnectSegment], move them back so that each segment starts where
// the previous one ends. Looking up a segment outside of the spline never
// fails; it yields a zero-length segment at the nearest end of the spline.
//
// Catmull-Rom and B-spline splines can be grown one point at a time with
// [Spline.ExtendPoint].
//
// # Concurrency
//
// Segments and splines must not be mutated concurrently. The basis matrices
// are shared, read-only package state.
package spline
