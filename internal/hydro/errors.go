package hydro

import "errors"

var (
	// ErrInvalidGeometry indicates decreasing station data or a segment set
	// that does not exactly cover the profile width.
	ErrInvalidGeometry = errors.New("hydro: invalid geometry")
	// ErrInvalidParameter indicates a non-positive roughness or slope on a
	// segment that carries water, or an exceedance probability outside (0,1).
	ErrInvalidParameter = errors.New("hydro: invalid parameter")
	// ErrInvalidStep indicates a non-positive level step.
	ErrInvalidStep = errors.New("hydro: invalid level step")
	// ErrNonMonotonicCurve indicates a rating curve violating the
	// non-decreasing discharge/area invariant.
	ErrNonMonotonicCurve = errors.New("hydro: non-monotonic rating curve")
	// ErrOutOfRange indicates an interpolation request outside the computed
	// curve bounds.
	ErrOutOfRange = errors.New("hydro: outside curve bounds")
)
