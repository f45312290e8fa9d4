package fmsynth

import "math"

// samplesFor converts a duration in milliseconds to a sample count at the
// given rate, rounding to nearest so note boundaries stay within one sample
// of their nominal position.
func samplesFor(durMs float64, sampleRate int) int {
	return int(math.Round(durMs * float64(sampleRate) / 1000))
}

// ReleaseSamples is the length of the release tail appended to every note.
func ReleaseSamples(sampleRate int) int {
	return samplesFor(EnvReleaseMs, sampleRate)
}

// RenderNote renders one note into a freshly allocated buffer: the scheduled
// duration plus the full release tail, so the tail is never cut short by
// whatever follows. The params' carrier frequency is overridden to freq (the
// modulator follows by ratio, see FMParams.AtPitch) and every emitted sample
// is hard-clamped to [-1,1] in case a misconfigured preset pushes the voice
// past full scale.
//
// The voice and envelope state live only for the duration of this call;
// rendering the same note twice yields identical buffers.
func RenderNote(params FMParams, freq float64, durMs int, sampleRate int) []float32 {
	return renderNote(params, freq, durMs, samplesFor(float64(durMs), sampleRate), sampleRate)
}

// renderNote renders held samples of sounding note plus the release tail.
// The held count is a parameter so a caller scheduling consecutive notes can
// derive it from a cumulative position instead of rounding every duration
// independently; the envelope still keys off durMs, so held may differ from
// the rounded duration by a sample without shifting the release.
func renderNote(params FMParams, freq float64, durMs, held, sampleRate int) []float32 {
	total := held + ReleaseSamples(sampleRate)
	buffer := make([]float32, total)
	voice := NewVoice(params.AtPitch(freq), sampleRate)
	msPerSample := 1000 / float64(sampleRate)
	for i := range buffer {
		gain := EnvelopeGain(float64(i)*msPerSample, float64(durMs))
		buffer[i] = clampSample(voice.NextSample() * gain)
	}
	return buffer
}
