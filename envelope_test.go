package fmsynth_test

import (
	"math"
	"testing"

	"github.com/gsspdev/fmsynth"
)

func TestEnvelopeStageBoundaries(t *testing.T) {
	for _, dur := range []float64{10, 50, 110, 500, 10000} {
		if g := fmsynth.EnvelopeGain(0, dur); g != 0 {
			t.Errorf("gain at note-on should be 0, got %v (dur %v)", g, dur)
		}
		if dur >= 10 {
			if g := fmsynth.EnvelopeGain(10, dur); math.Abs(g-1) > 1e-9 {
				t.Errorf("gain at end of attack should be 1, got %v (dur %v)", g, dur)
			}
		}
		if dur >= 110 {
			if g := fmsynth.EnvelopeGain(110, dur); math.Abs(g-fmsynth.EnvSustainLvl) > 1e-9 {
				t.Errorf("gain at end of decay should be %v, got %v (dur %v)", fmsynth.EnvSustainLvl, g, dur)
			}
		}
	}
}

func TestEnvelopeAttackRamp(t *testing.T) {
	if g := fmsynth.EnvelopeGain(5, 1000); math.Abs(g-0.5) > 1e-9 {
		t.Errorf("gain mid-attack should be 0.5, got %v", g)
	}
	if g := fmsynth.EnvelopeGain(60, 1000); math.Abs(g-0.85) > 1e-9 {
		t.Errorf("gain mid-decay should be 0.85, got %v", g)
	}
	if g := fmsynth.EnvelopeGain(300, 1000); g != fmsynth.EnvSustainLvl {
		t.Errorf("gain during sustain should be %v, got %v", fmsynth.EnvSustainLvl, g)
	}
}

func TestEnvelopeReleaseMonotonic(t *testing.T) {
	const dur = 200.0
	prev := math.Inf(1)
	for elapsed := dur; elapsed <= dur+fmsynth.EnvReleaseMs+10; elapsed += 1 {
		g := fmsynth.EnvelopeGain(elapsed, dur)
		if g > prev {
			t.Fatalf("release should decrease monotonically, got %v after %v at %v ms", g, prev, elapsed)
		}
		prev = g
	}
	if g := fmsynth.EnvelopeGain(dur+fmsynth.EnvReleaseMs, dur); g != 0 {
		t.Errorf("gain at end of release should be 0, got %v", g)
	}
	if g := fmsynth.EnvelopeGain(dur+fmsynth.EnvReleaseMs+1000, dur); g != 0 {
		t.Errorf("gain after release should stay 0, got %v", g)
	}
}

// A note shorter than the attack truncates the ramp: release starts from the
// partial attack value and still runs its full window.
func TestEnvelopeShortNoteTruncation(t *testing.T) {
	const dur = 5.0
	if g := fmsynth.EnvelopeGain(5, dur); math.Abs(g-0.5) > 1e-9 {
		t.Errorf("release of a 5 ms note should start at gain 0.5, got %v", g)
	}
	half := dur + fmsynth.EnvReleaseMs/2
	if g := fmsynth.EnvelopeGain(half, dur); math.Abs(g-0.25) > 1e-9 {
		t.Errorf("gain halfway through release should be 0.25, got %v", g)
	}
	// a note ending mid-decay releases from the mid-decay value
	if g := fmsynth.EnvelopeGain(50, 50); math.Abs(g-0.88) > 1e-9 {
		t.Errorf("release of a 50 ms note should start at gain 0.88, got %v", g)
	}
}

func TestEnvelopeGainWithinBounds(t *testing.T) {
	for _, dur := range []float64{1, 5, 15, 120, 2000} {
		for elapsed := -10.0; elapsed < dur+fmsynth.EnvReleaseMs+50; elapsed += 0.25 {
			g := fmsynth.EnvelopeGain(elapsed, dur)
			if g < 0 || g > 1 {
				t.Fatalf("gain should stay within 0-1, got %v at %v ms (dur %v)", g, elapsed, dur)
			}
		}
	}
}
