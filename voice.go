package fmsynth

import "math"

// Voice is a two-operator FM oscillator. Both operators advance by
// incremental phase accumulation, wrapped to one cycle each sample, so the
// sin arguments stay small no matter how long a note runs; recomputing phase
// from absolute elapsed time would slowly lose precision instead.
//
// A Voice is owned by exactly one note render and is never shared.
type Voice struct {
	params       FMParams
	carrierStep  float64
	modStep      float64
	carrierPhase float64
	modPhase     float64
}

func NewVoice(params FMParams, sampleRate int) *Voice {
	return &Voice{
		params:      params,
		carrierStep: params.CarrierFreq / float64(sampleRate),
		modStep:     params.ModulatorFreq / float64(sampleRate),
	}
}

// NextSample returns the next oscillator output in [-1,1] and advances both
// phase accumulators by one sample period:
//
//	modulator = sin(2π modPhase)
//	sample    = amplitude * sin(2π carrierPhase + index*modulator)
//
// With a zero modulator frequency the modulation term vanishes and the voice
// reduces to a plain sine at the carrier frequency.
func (v *Voice) NextSample() float64 {
	modulator := math.Sin(2 * math.Pi * v.modPhase)
	sample := v.params.Amplitude * math.Sin(2*math.Pi*v.carrierPhase+v.params.ModulationIndex*modulator)
	v.carrierPhase += v.carrierStep
	v.modPhase += v.modStep
	if v.carrierPhase >= 1 {
		v.carrierPhase -= 1
	}
	if v.modPhase >= 1 {
		v.modPhase -= 1
	}
	return sample
}
