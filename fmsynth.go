// Package fmsynth renders melodies with two-operator FM synthesis.
//
// The root package holds the engine: note-name to frequency resolution, the
// FM voice, the ADSR envelope, the per-note sample renderer and the melody
// sequencer, plus the preset/melody catalog they are parameterized with.
// Audio delivery goes through the AudioSink interface; the oto subpackage
// adapts a real output device and BufferSink collects samples in memory.
package fmsynth

import "math"

// SampleRate is the default sample rate in Hz. Everything in the engine
// takes an explicit rate, this is just what the command line tools and the
// default Player use.
const SampleRate = 44100

// clampSample hard-limits a sample to [-1,1]. NaN maps to silence, so a
// degenerate parameter set (zero carrier, for one) cannot push non-finite
// samples to a device.
func clampSample(v float64) float32 {
	if math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return float32(v)
}
