// Package numcast provides numeric casts whose failure modes are visible at
// the call site.
//
// Every cast starts with [Cast], which compares the mathematical value of
// the source against the destination type and returns an [Outcome]. The
// Outcome's adapters then pick a policy for lossy casts:
//
//   - [Outcome.Value] returns the value or a *[LossyCastError];
//   - [Outcome.Closest] saturates and rounds to the nearest representable
//     value;
//   - [Outcome.Lossy] accepts the attempted value;
//   - [Outcome.AssumedLossless] panics in [Debug] mode and accepts the plain
//     conversion in [Release] mode;
//   - [Outcome.UnwrapUnchecked] accepts the plain conversion unconditionally.
//
// [Bitwise] reinterprets bit patterns instead of values, and the Lossless
// functions ([LosslessInt64], [LosslessUint], ...) only compile for source
// types the destination always holds on the target platform.
//
// Integer range checks use [safemath]. [To] accepts untyped input, using
// [cast] to read numeric strings.
//
// [safemath]: https://pkg.go.dev/go.dw1.io/safemath
// [cast]: https://pkg.go.dev/github.com/spf13/cast
package numcast
