package fmsynth

import "context"

// Player binds a catalog to an audio output and exposes the operations the
// command surface needs: listing the catalogs and playing one melody with
// one preset. Only one melody plays at a time; PlayMelody returns once the
// whole melody has been handed to the sink and the sink has drained.
type Player struct {
	catalog    *Catalog
	sampleRate int
	audio      AudioContext
}

func NewPlayer(catalog *Catalog, sampleRate int, audio AudioContext) *Player {
	return &Player{catalog: catalog, sampleRate: sampleRate, audio: audio}
}

func (p *Player) Catalog() *Catalog { return p.catalog }

// ListPresets returns the preset display names, in catalog order.
func (p *Player) ListPresets() []string { return p.catalog.PresetNames() }

// ListMelodies returns the melody display names, in catalog order.
func (p *Player) ListMelodies() []string { return p.catalog.MelodyNames() }

// PlayMelody renders melodyIndex with presetIndex and plays it through the
// player's audio output. Both 0-based indices are validated against the
// catalog bounds before any rendering work begins. A failed play leaves the
// player usable for the next request.
func (p *Player) PlayMelody(ctx context.Context, presetIndex, melodyIndex int) error {
	preset, err := p.catalog.Preset(presetIndex)
	if err != nil {
		return err
	}
	melody, err := p.catalog.Melody(melodyIndex)
	if err != nil {
		return err
	}
	sink := p.audio.Output()
	streamErr := StreamMelody(ctx, melody, preset, p.sampleRate, sink)
	closeErr := sink.Close()
	if streamErr != nil {
		return streamErr
	}
	return closeErr
}

// Demo plays the chromatic scale melody once with every preset in catalog
// order, so all timbres can be compared against the same pitches.
func (p *Player) Demo(ctx context.Context) error {
	melodyIndex, err := p.catalog.FindMelody("Chromatic Scale")
	if err != nil {
		melodyIndex = 0
	}
	for presetIndex := range p.catalog.Presets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.PlayMelody(ctx, presetIndex, melodyIndex); err != nil {
			return err
		}
	}
	return nil
}
