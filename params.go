package fmsynth

import (
	"fmt"
	"math"
)

// FMParams is the parameter set of one two-operator FM timbre. The carrier
// and modulator frequencies are stored at the preset's reference pitch; what
// matters for the timbre is their ratio, which AtPitch preserves when a note
// transposes the pair.
type FMParams struct {
	CarrierFreq     float64 `yaml:"carrierfreq"`
	ModulatorFreq   float64 `yaml:"modulatorfreq"`
	ModulationIndex float64 `yaml:"modulationindex"`
	Amplitude       float64 `yaml:"amplitude"`
}

// Preset is a named, immutable FM timbre.
type Preset struct {
	Name   string   `yaml:"name"`
	Params FMParams `yaml:"params"`
}

func (p *FMParams) Validate() error {
	if math.IsNaN(p.CarrierFreq) || math.IsInf(p.CarrierFreq, 0) || p.CarrierFreq <= 0 {
		return fmt.Errorf("carrier frequency should be finite and > 0, got %v", p.CarrierFreq)
	}
	if math.IsNaN(p.ModulatorFreq) || math.IsInf(p.ModulatorFreq, 0) || p.ModulatorFreq < 0 {
		return fmt.Errorf("modulator frequency should be finite and >= 0, got %v", p.ModulatorFreq)
	}
	if math.IsNaN(p.ModulationIndex) || math.IsInf(p.ModulationIndex, 0) || p.ModulationIndex < 0 {
		return fmt.Errorf("modulation index should be finite and >= 0, got %v", p.ModulationIndex)
	}
	if math.IsNaN(p.Amplitude) || p.Amplitude < 0 || p.Amplitude > 1 {
		return fmt.Errorf("amplitude should be within 0-1, got %v", p.Amplitude)
	}
	return nil
}

// AtPitch returns a copy of the params transposed so that the carrier sits at
// freq Hz and the modulator keeps the preset's modulator/carrier ratio. A
// zero modulator stays zero, so pure-tone presets stay pure at every pitch.
func (p FMParams) AtPitch(freq float64) FMParams {
	ratio := p.ModulatorFreq / p.CarrierFreq
	p.CarrierFreq = freq
	p.ModulatorFreq = freq * ratio
	return p
}
