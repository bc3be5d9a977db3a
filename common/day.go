package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// DayLength is the duration of a single reward day in milliseconds.
const DayLength = 86_400_000

// CurrentDay returns the index of the reward day the executing block falls
// into. Days are counted from the Unix epoch in DayLength intervals, so the
// index is a pure function of block time.
func CurrentDay() int {
	return runtime.GetTime() / DayLength
}

// FixedKey encodes a non-negative integer as an 8-byte big-endian string.
// Storage keys built from such parts can be searched by prefix without one
// index bleeding into another, which variable-length integer encoding does
// not guarantee.
func FixedKey(value int) []byte {
	key := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	for i := 7; i >= 0; i-- {
		key[i] = byte(value & 0xff)
		value = value >> 8
	}

	return key
}
