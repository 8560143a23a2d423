// Package geomerrors collects the sentinel errors and the precondition-assert
// helper shared by every layer of the exact-geometry kernel (bignum, adaptive,
// point, delaunay).
//
// The kernel has essentially no recoverable errors: every failure is a
// precondition violation by the caller. Such violations panic with one of
// the sentinel errors below, following an ErrorPrefix-plus-exported-Err*-
// sentinel convention.
package geomerrors

import "errors"

// ErrorPrefix is prepended to every error message originating from this module.
const ErrorPrefix = "exactgeom: "

var (
	// ErrDivisionByZero is raised by any divmod operation given a zero divisor.
	ErrDivisionByZero = errors.New(ErrorPrefix + "division by zero")

	// ErrWidthTooSmall is raised when a bit budget is too narrow to hold a
	// value that construction or computation requires it to hold (e.g. a
	// Delaunay bit budget below 2, which leaves no room for INF).
	ErrWidthTooSmall = errors.New(ErrorPrefix + "bit budget too small for the requested value")

	// ErrCoordinateOutOfRange is returned by delaunay.Triangulate when an
	// input coordinate's absolute value is not strictly below INF.
	ErrCoordinateOutOfRange = errors.New(ErrorPrefix + "coordinate exceeds the super-triangle bound")

	// ErrInvalidLiteral is raised by decimal parsers (bignum.Parse,
	// point.ParsePoint) on malformed input.
	ErrInvalidLiteral = errors.New(ErrorPrefix + "invalid integer literal")

	// ErrEmptyPolygon is raised by operations that require at least one vertex.
	ErrEmptyPolygon = errors.New(ErrorPrefix + "polygon has no vertices")
)

// Assert panics with err if condition is false. It is the production-code
// counterpart of internal/testutils.Assert: the latter is for use from
// _test.go files only (it takes *testing.T style failure modes in some
// variants), this one is safe to call from any package at any time and is
// the mechanism by which every precondition in this kernel is enforced.
func Assert(condition bool, err error) {
	if !condition {
		panic(err)
	}
}
