package fmsynth

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidNoteName is returned when a pitch string cannot be parsed. It
// should never surface for the built-in catalog; user-supplied catalogs can
// trigger it.
var ErrInvalidNoteName = errors.New("invalid note name")

// semitone offsets from C for the letters A-G
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteFreq resolves a note name like "C4", "A#3" or "Bb2" to its
// equal-tempered frequency in Hz, with A4 = 440 Hz as the reference pitch.
// The grammar is letter A-G, an optional '#' or 'b' accidental, and an
// octave digit; C4 is MIDI semitone 60.
func NoteFreq(name string) (float64, error) {
	n, err := NoteNumber(name)
	if err != nil {
		return 0, err
	}
	return 440 * math.Pow(2, float64(n-69)/12), nil
}

// NoteNumber parses a note name into its MIDI semitone number (C4 = 60,
// A4 = 69).
func NoteNumber(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	letter := name[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	semitone, ok := letterSemitones[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no letter A-G", ErrInvalidNoteName, name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		semitone++
		rest = rest[1:]
	case 'b':
		semitone--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || octave > 9 {
		return 0, fmt.Errorf("%w: %q has no octave 0-9", ErrInvalidNoteName, name)
	}
	return (octave+1)*12 + semitone, nil
}
