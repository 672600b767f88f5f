package numcast

// The Lossless functions convert between types where every source value is
// representable in the destination, so they cannot fail and carry no
// runtime check. The source constraints enforce this at compile time.
// Constraints whose members depend on the pointer width (LosslessToInt,
// LosslessToUint, LosslessToUintptr, LosslessToInt32, LosslessToUint32 and
// LosslessToFloat64) are declared per platform.

// LosslessToInt8 is the set of types int8 holds without loss.
type LosslessToInt8 interface {
	~int8
}

// LosslessToInt16 is the set of types int16 holds without loss.
type LosslessToInt16 interface {
	~int8 | ~int16 | ~uint8
}

// LosslessToInt64 is the set of types int64 holds without loss.
type LosslessToInt64 interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32
}

// LosslessToUint8 is the set of types uint8 holds without loss.
type LosslessToUint8 interface {
	~uint8
}

// LosslessToUint16 is the set of types uint16 holds without loss.
type LosslessToUint16 interface {
	~uint8 | ~uint16
}

// LosslessToUint64 is the set of types uint64 holds without loss.
type LosslessToUint64 interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// LosslessToFloat32 is the set of types float32 holds without loss.
type LosslessToFloat32 interface {
	~int8 | ~int16 | ~uint8 | ~uint16 | ~float32
}

// LosslessInt converts v to int.
func LosslessInt[S LosslessToInt](v S) int { return int(v) }

// LosslessInt8 converts v to int8.
func LosslessInt8[S LosslessToInt8](v S) int8 { return int8(v) }

// LosslessInt16 converts v to int16.
func LosslessInt16[S LosslessToInt16](v S) int16 { return int16(v) }

// LosslessInt32 converts v to int32.
func LosslessInt32[S LosslessToInt32](v S) int32 { return int32(v) }

// LosslessInt64 converts v to int64.
func LosslessInt64[S LosslessToInt64](v S) int64 { return int64(v) }

// LosslessUint converts v to uint.
func LosslessUint[S LosslessToUint](v S) uint { return uint(v) }

// LosslessUint8 converts v to uint8.
func LosslessUint8[S LosslessToUint8](v S) uint8 { return uint8(v) }

// LosslessUint16 converts v to uint16.
func LosslessUint16[S LosslessToUint16](v S) uint16 { return uint16(v) }

// LosslessUint32 converts v to uint32.
func LosslessUint32[S LosslessToUint32](v S) uint32 { return uint32(v) }

// LosslessUint64 converts v to uint64.
func LosslessUint64[S LosslessToUint64](v S) uint64 { return uint64(v) }

// LosslessUintptr converts v to uintptr.
func LosslessUintptr[S LosslessToUintptr](v S) uintptr { return uintptr(v) }

// LosslessFloat32 converts v to float32.
func LosslessFloat32[S LosslessToFloat32](v S) float32 { return float32(v) }

// LosslessFloat64 converts v to float64.
func LosslessFloat64[S LosslessToFloat64](v S) float64 { return float64(v) }
