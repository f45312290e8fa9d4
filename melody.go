package fmsynth

import "fmt"

// NoteEvent is one step of a melody: a pitch name and how long it is held,
// in milliseconds. Events are never mutated once a melody is built.
type NoteEvent struct {
	Note     string `yaml:"note"`
	Duration int    `yaml:"duration"`
}

// Melody is a named, ordered sequence of note events. The order is musically
// significant and is preserved through rendering.
type Melody struct {
	Name  string      `yaml:"name"`
	Notes []NoteEvent `yaml:"notes"`
}

func (m *Melody) Validate() error {
	if len(m.Notes) == 0 {
		return fmt.Errorf("melody %q should have at least one note", m.Name)
	}
	for i, n := range m.Notes {
		if n.Duration <= 0 {
			return fmt.Errorf("melody %q note %v: duration should be > 0 ms, got %v", m.Name, i, n.Duration)
		}
		if _, err := NoteFreq(n.Note); err != nil {
			return fmt.Errorf("melody %q note %v: %w", m.Name, i, err)
		}
	}
	return nil
}

// TotalDuration is the sum of the scheduled note durations in milliseconds,
// not counting the final release tail.
func (m *Melody) TotalDuration() int {
	total := 0
	for _, n := range m.Notes {
		total += n.Duration
	}
	return total
}
