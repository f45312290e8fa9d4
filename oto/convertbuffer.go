package oto

import (
	"encoding/binary"
	"math"
)

// floatsToBytesLE serializes float32 samples into dst as little-endian IEEE
// float bits, the wire format the device was opened with. dst must have room
// for 4 bytes per sample.
func floatsToBytesLE(samples []float32, dst []byte) {
	for i, s := range samples {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(s))
	}
}
