//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm

package numcast

// LosslessToInt is the set of types int holds without loss on 64-bit
// platforms.
type LosslessToInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32
}

// LosslessToUint is the set of types uint holds without loss on 64-bit
// platforms.
type LosslessToUint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// LosslessToUintptr is the set of types uintptr holds without loss on 64-bit
// platforms.
type LosslessToUintptr interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// LosslessToInt32 is the set of types int32 holds without loss on 64-bit
// platforms.
type LosslessToInt32 interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16
}

// LosslessToUint32 is the set of types uint32 holds without loss on 64-bit
// platforms.
type LosslessToUint32 interface {
	~uint8 | ~uint16 | ~uint32
}

// LosslessToFloat64 is the set of types float64 holds without loss on 64-bit
// platforms.
type LosslessToFloat64 interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32 | ~float32 | ~float64
}
