package spline

import (
	"errors"
	"fmt"
)

// ErrUnknownBasis is returned by [ParseBasis] for names that don't denote a
// basis.
var ErrUnknownBasis = errors.New("spline: unknown basis")

// Basis selects how the four control points of a [Segment] blend into a cubic
// polynomial.
type Basis uint8

const (
	// Bezier segments interpolate their first and last control points and
	// use the middle two as handles.
	Bezier Basis = iota
	// Hermite segments are given as start point, start handle, end point,
	// end handle. The tangents are the differences between each handle and
	// the point it belongs to.
	Hermite
	// CatmullRom segments interpolate the middle two of four consecutive
	// points of a running sequence.
	CatmullRom
	// BSpline segments approximate four consecutive points of a running
	// sequence with a uniform cubic B-spline.
	BSpline

	numBases = iota
)

var basisNames = [numBases]string{
	Bezier:     "bezier",
	Hermite:    "hermite",
	CatmullRom: "catmull-rom",
	BSpline:    "b-spline",
}

func (b Basis) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Basis(%d)", uint8(b))
	}
	return basisNames[b]
}

// ParseBasis returns the basis named by s, which must be one of the strings
// returned by [Basis.String].
func ParseBasis(s string) (Basis, error) {
	for b, name := range basisNames {
		if name == s {
			return Basis(b), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBasis, s)
}

// Valid reports whether b is one of the four defined bases.
func (b Basis) Valid() bool {
	return b < numBases
}

// SupportsExtension reports whether consecutive segments of this basis share
// three of their four control points, so that a spline can be grown one point
// at a time with [Spline.ExtendPoint].
func (b Basis) SupportsExtension() bool {
	return b == CatmullRom || b == BSpline
}

type basisMatrices struct {
	characteristic *Matrix
	storing        *Matrix
	// toBezier is inverseBezier × characteristic.
	toBezier *Matrix
}

// inverseBezier maps the power-basis coefficients of a cubic to its Bézier
// control points. It is the inverse of the Bézier characteristic matrix.
var inverseBezier = NewMatrix(
	[]float64{3, 0, 0, 0},
	[]float64{3, 1, 0, 0},
	[]float64{3, 2, 1, 0},
	[]float64{3, 3, 3, 3},
).Scale(1.0 / 3.0)

// catalog is written once during package initialization and only read
// afterwards.
var catalog = func() [numBases]basisMatrices {
	var c [numBases]basisMatrices
	c[Bezier] = basisMatrices{
		characteristic: NewMatrix(
			[]float64{1, 0, 0, 0},
			[]float64{-3, 3, 0, 0},
			[]float64{3, -6, 3, 0},
			[]float64{-1, 3, -3, 1},
		),
		storing: Identity(4),
	}
	c[Hermite] = basisMatrices{
		characteristic: NewMatrix(
			[]float64{1, 0, 0, 0},
			[]float64{0, 1, 0, 0},
			[]float64{-3, -2, 3, -1},
			[]float64{2, 1, -2, 1},
		),
		// Turns the two handles into tangents relative to their points.
		storing: NewMatrix(
			[]float64{1, 0, 0, 0},
			[]float64{-1, 1, 0, 0},
			[]float64{0, 0, 1, 0},
			[]float64{0, 0, -1, 1},
		),
	}
	c[CatmullRom] = basisMatrices{
		characteristic: NewMatrix(
			[]float64{0, 2, 0, 0},
			[]float64{-1, 0, 1, 0},
			[]float64{2, -5, 4, -1},
			[]float64{-1, 3, -3, 1},
		).Scale(0.5),
		storing: Identity(4),
	}
	c[BSpline] = basisMatrices{
		characteristic: NewMatrix(
			[]float64{1, 4, 1, 0},
			[]float64{-3, 0, 3, 0},
			[]float64{3, -6, 3, 0},
			[]float64{-1, 3, -3, 1},
		).Scale(1.0 / 6.0),
		storing: Identity(4),
	}
	for i := range c {
		c[i].toBezier = mustMul(inverseBezier, c[i].characteristic)
	}
	return c
}()

// identity4 is the fallback for values outside the enumeration.
var identity4 = Identity(4)

func (b Basis) matrices() basisMatrices {
	if !b.Valid() {
		return basisMatrices{identity4, identity4, inverseBezier}
	}
	return catalog[b]
}

// Characteristic returns a copy of the basis's characteristic matrix, which
// turns stored points into the coefficients of the cubic's power basis
// 1, t, t², t³. Values of b outside the defined bases yield the identity.
func (b Basis) Characteristic() *Matrix {
	return b.matrices().characteristic.Clone()
}

// Storing returns a copy of the basis's storing matrix, which turns native
// control points into the stored points the characteristic matrix expects.
// Values of b outside the defined bases yield the identity.
func (b Basis) Storing() *Matrix {
	return b.matrices().storing.Clone()
}

// ToBezier returns a copy of the matrix converting stored points of this basis
// into the four equivalent Bézier control points.
func (b Basis) ToBezier() *Matrix {
	return b.matrices().toBezier.Clone()
}

// InverseBezier returns a copy of the inverse of the Bézier characteristic
// matrix.
func InverseBezier() *Matrix {
	return inverseBezier.Clone()
}
