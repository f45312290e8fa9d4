package fmsynth

import (
	"context"
	"fmt"
)

// DefaultChunkSize is the number of samples handed to the sink per write
// when streaming. Cancellation takes effect within one chunk's latency.
const DefaultChunkSize = 2048

// StreamMelody renders a melody with the given preset and pushes the samples
// to the sink in strict chronological order, one note at a time, so playback
// of the first note never waits on a full-melody pre-render and ctx can stop
// the stream between chunks.
//
// Note names are resolved before any audio is produced: a malformed melody
// aborts the render as a whole instead of yielding partial, confusing audio.
// Consecutive notes are joined by overlap-adding each note's release tail
// into the next note's attack, so every note onset lands within half a
// sample of its cumulative scheduled position and the total length is the
// summed durations plus one trailing release.
func StreamMelody(ctx context.Context, melody Melody, preset Preset, sampleRate int, sink AudioSink) error {
	if err := preset.Params.Validate(); err != nil {
		return fmt.Errorf("preset %q: %v", preset.Name, err)
	}
	freqs, err := melodyFreqs(melody)
	if err != nil {
		return err
	}
	var tail []float32 // previous note's release, still to be mixed and played
	cumMs := 0
	start := 0 // sample index of the current note's onset
	for i, event := range melody.Notes {
		// derive each held length from the cumulative position, so
		// rounding error never accumulates across notes
		cumMs += event.Duration
		end := samplesFor(float64(cumMs), sampleRate)
		held := end - start
		note := renderNote(preset.Params, freqs[i], event.Duration, held, sampleRate)
		mixInto(note, tail)
		if err := writeChunks(ctx, sink, note[:held]); err != nil {
			return err
		}
		tail = note[held:]
		start = end
	}
	return writeChunks(ctx, sink, tail)
}

// RenderMelody renders a whole melody into one buffer. It is the streaming
// path captured in memory, so the two always agree sample for sample.
func RenderMelody(melody Melody, preset Preset, sampleRate int) ([]float32, error) {
	var sink BufferSink
	if err := StreamMelody(context.Background(), melody, preset, sampleRate, &sink); err != nil {
		return nil, err
	}
	return sink.Samples(), nil
}

func writeChunks(ctx context.Context, sink AudioSink, buffer []float32) error {
	for len(buffer) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := DefaultChunkSize
		if n > len(buffer) {
			n = len(buffer)
		}
		if err := sink.WriteAudio(buffer[:n]); err != nil {
			return fmt.Errorf("could not write audio chunk: %v", err)
		}
		buffer = buffer[n:]
	}
	return nil
}

// melodyFreqs resolves every note name up front; the first failure aborts.
func melodyFreqs(melody Melody) ([]float64, error) {
	freqs := make([]float64, len(melody.Notes))
	for i, event := range melody.Notes {
		if event.Duration <= 0 {
			return nil, fmt.Errorf("melody %q note %v: duration should be > 0 ms, got %v", melody.Name, i, event.Duration)
		}
		f, err := NoteFreq(event.Note)
		if err != nil {
			return nil, fmt.Errorf("melody %q note %v: %w", melody.Name, i, err)
		}
		freqs[i] = f
	}
	return freqs, nil
}

// mixInto sums src into the head of dst, clamping the overlap where a
// release tail and the next note's attack coincide. A note is always at
// least as long as the tail it absorbs, since every note buffer carries a
// full release of its own.
func mixInto(dst, src []float32) {
	for i, v := range src {
		dst[i] = clampSample(float64(dst[i]) + float64(v))
	}
}
