// Package hydro computes steady 1-D open-channel hydraulics for a surveyed
// river cross-section: submerged geometry per roughness segment, Manning
// conveyance, the stage-discharge (rating) and stage-velocity curves, and
// design water levels for given design discharges.
//
// The package is pure computation. All inputs arrive in SI units (meters,
// m³/s, slope as a dimensionless fraction, metric Manning n); unit
// conversions from survey file conventions belong to the callers.
//
// Errors:
//
//   - ErrInvalidGeometry: station order broken or segments do not cover the profile.
//   - ErrInvalidParameter: non-positive roughness/slope on a wet segment.
//   - ErrInvalidStep: non-positive level step.
//   - ErrNonMonotonicCurve: rating curve violates the non-decreasing Q/A invariant.
//   - ErrOutOfRange: query outside the computed curve bounds.
package hydro
