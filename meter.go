package fmsynth

import (
	"fmt"
	"math"

	"github.com/viterin/vek/vek32"
)

type Decibel float32

func (d Decibel) String() string {
	return fmt.Sprintf("%.1f dB", float32(d))
}

// BufferStats summarizes a rendered buffer: the sample peak and the RMS
// level, both relative to full scale.
type BufferStats struct {
	Peak Decibel
	RMS  Decibel
}

// Analyze measures the peak and RMS level of a buffer. The command line
// layer prints these after a render; tests use them to sanity check that a
// melody neither clips nor comes out silent.
func Analyze(buffer []float32) BufferStats {
	if len(buffer) == 0 {
		return BufferStats{Peak: Decibel(math.Inf(-1)), RMS: Decibel(math.Inf(-1))}
	}
	tmp := make([]float32, len(buffer))
	copy(tmp, buffer)
	vek32.Abs_Inplace(tmp)
	peak := vek32.Max(tmp)
	power := vek32.Mean(vek32.Mul_Into(tmp, buffer, buffer))
	return BufferStats{
		Peak: amplitudeDecibels(float64(peak)),
		RMS:  amplitudeDecibels(math.Sqrt(float64(power))),
	}
}

func amplitudeDecibels(a float64) Decibel {
	if a <= 0 {
		return Decibel(math.Inf(-1))
	}
	return Decibel(20 * math.Log10(a))
}
