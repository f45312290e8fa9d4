package fmsynth

// The ADSR stage durations are shared constants across every note and preset,
// matching the classic percussive shape: a fast attack, a short decay to the
// sustain plateau, and a long release once the note's scheduled duration has
// elapsed. There is no separate note-off signal; release always begins at the
// note's nominal duration.
const (
	EnvAttackMs   = 10.0
	EnvDecayMs    = 100.0
	EnvSustainLvl = 0.70
	EnvReleaseMs  = 500.0
)

// EnvelopeGain returns the amplitude gain in [0,1] at elapsedMs milliseconds
// into a note scheduled to last durMs milliseconds. It is a pure function of
// its arguments, so any sample position can be evaluated independently.
//
// Truncation rule for short notes: the held portion of the envelope is simply
// evaluated at durMs when release starts, so the release ramp always begins
// from whatever gain the attack/decay had reached (possibly a partial attack)
// and runs its full 500 ms window from that value down to zero.
func EnvelopeGain(elapsedMs, durMs float64) float64 {
	if elapsedMs < 0 {
		return 0
	}
	if elapsedMs < durMs {
		return heldGain(elapsedMs)
	}
	releasePos := (elapsedMs - durMs) / EnvReleaseMs
	if releasePos >= 1 {
		return 0
	}
	return heldGain(durMs) * (1 - releasePos)
}

// heldGain is the attack/decay/sustain portion, ignoring release.
func heldGain(elapsedMs float64) float64 {
	if elapsedMs < EnvAttackMs {
		return elapsedMs / EnvAttackMs
	}
	if elapsedMs < EnvAttackMs+EnvDecayMs {
		return 1 - (1-EnvSustainLvl)*(elapsedMs-EnvAttackMs)/EnvDecayMs
	}
	return EnvSustainLvl
}
