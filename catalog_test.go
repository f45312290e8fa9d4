package fmsynth_test

import (
	"errors"
	"testing"

	"github.com/gsspdev/fmsynth"
)

func TestDefaultCatalogShape(t *testing.T) {
	catalog := fmsynth.DefaultCatalog()
	if len(catalog.Presets) != 12 {
		t.Errorf("default catalog should have 12 presets, got %v", len(catalog.Presets))
	}
	if len(catalog.Melodies) != 10 {
		t.Errorf("default catalog should have 10 melodies, got %v", len(catalog.Melodies))
	}
	if err := catalog.Validate(); err != nil {
		t.Errorf("default catalog should validate: %v", err)
	}
	for i, name := range catalog.PresetNames() {
		if name == "" {
			t.Errorf("preset %v should have a name", i)
		}
	}
}

func TestCatalogIndexBounds(t *testing.T) {
	catalog := fmsynth.DefaultCatalog()
	if _, err := catalog.Preset(len(catalog.Presets)); !errors.Is(err, fmsynth.ErrIndexOutOfRange) {
		t.Errorf("preset index one past the end should fail with ErrIndexOutOfRange, got %v", err)
	}
	if _, err := catalog.Preset(-1); !errors.Is(err, fmsynth.ErrIndexOutOfRange) {
		t.Errorf("negative preset index should fail with ErrIndexOutOfRange, got %v", err)
	}
	if _, err := catalog.Melody(len(catalog.Melodies)); !errors.Is(err, fmsynth.ErrIndexOutOfRange) {
		t.Errorf("melody index one past the end should fail with ErrIndexOutOfRange, got %v", err)
	}
	if _, err := catalog.Preset(0); err != nil {
		t.Errorf("first preset should resolve, got %v", err)
	}
	if _, err := catalog.Preset(len(catalog.Presets) - 1); err != nil {
		t.Errorf("last preset should resolve, got %v", err)
	}
}

func TestCatalogSelectors(t *testing.T) {
	catalog := fmsynth.DefaultCatalog()
	tests := []struct {
		selector string
		index    int
	}{
		{"1", 0},
		{"12", 11},
		{"Bell", 0},
		{"bell", 0},
		{"ELECTRIC PIANO", 2},
	}
	for _, test := range tests {
		i, err := catalog.FindPreset(test.selector)
		if err != nil {
			t.Fatalf("FindPreset(%q) failed: %v", test.selector, err)
		}
		if i != test.index {
			t.Errorf("FindPreset(%q) = %v, expected %v", test.selector, i, test.index)
		}
	}
	for _, selector := range []string{"0", "13", "-1"} {
		if _, err := catalog.FindPreset(selector); !errors.Is(err, fmsynth.ErrIndexOutOfRange) {
			t.Errorf("FindPreset(%q) should fail with ErrIndexOutOfRange, got %v", selector, err)
		}
	}
	if _, err := catalog.FindPreset("Accordion"); err == nil {
		t.Error("FindPreset of an unknown name should fail")
	}
	if i, err := catalog.FindMelody("twinkle twinkle"); err != nil || i != 1 {
		t.Errorf("FindMelody(\"twinkle twinkle\") = %v, %v; expected 1, nil", i, err)
	}
}

func TestParseCatalogRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad note name", `
presets:
  - {name: P, params: {carrierfreq: 440, modulatorfreq: 440, modulationindex: 1, amplitude: 0.5}}
melodies:
  - name: M
    notes:
      - {note: X4, duration: 100}
`},
		{"zero duration", `
presets:
  - {name: P, params: {carrierfreq: 440, modulatorfreq: 440, modulationindex: 1, amplitude: 0.5}}
melodies:
  - name: M
    notes:
      - {note: C4, duration: 0}
`},
		{"amplitude above 1", `
presets:
  - {name: P, params: {carrierfreq: 440, modulatorfreq: 440, modulationindex: 1, amplitude: 1.5}}
melodies:
  - name: M
    notes:
      - {note: C4, duration: 100}
`},
		{"negative carrier", `
presets:
  - {name: P, params: {carrierfreq: -440, modulatorfreq: 440, modulationindex: 1, amplitude: 0.5}}
melodies:
  - name: M
    notes:
      - {note: C4, duration: 100}
`},
		{"no melodies", `
presets:
  - {name: P, params: {carrierfreq: 440, modulatorfreq: 440, modulationindex: 1, amplitude: 0.5}}
melodies: []
`},
	}
	for _, test := range tests {
		if _, err := fmsynth.ParseCatalog([]byte(test.yaml)); err == nil {
			t.Errorf("ParseCatalog should reject catalog with %v", test.name)
		}
	}
}

func TestParseCatalogRoundTrip(t *testing.T) {
	data := `
presets:
  - name: Solo
    params: {carrierfreq: 220, modulatorfreq: 440, modulationindex: 2.5, amplitude: 0.4}
melodies:
  - name: Two Notes
    notes:
      - {note: A3, duration: 200}
      - {note: E4, duration: 300}
`
	catalog, err := fmsynth.ParseCatalog([]byte(data))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	preset, err := catalog.Preset(0)
	if err != nil {
		t.Fatalf("Preset(0) failed: %v", err)
	}
	if preset.Params.ModulationIndex != 2.5 {
		t.Errorf("modulation index should be 2.5, got %v", preset.Params.ModulationIndex)
	}
	melody, err := catalog.Melody(0)
	if err != nil {
		t.Fatalf("Melody(0) failed: %v", err)
	}
	if melody.TotalDuration() != 500 {
		t.Errorf("total duration should be 500 ms, got %v", melody.TotalDuration())
	}
}
