package fmsynth

// BufferSink is an AudioSink that collects every chunk pushed to it into one
// in-memory buffer. It is the buffered-playback adapter half of the sink
// contract (a browser-style "schedule these samples" API, a file export, or
// a test) as opposed to the oto package's hardware callback.
//
// The zero value is ready to use.
type BufferSink struct {
	buffer []float32
}

func (b *BufferSink) WriteAudio(buffer []float32) error {
	b.buffer = append(b.buffer, buffer...)
	return nil
}

func (b *BufferSink) Close() error {
	return nil
}

// Samples returns the collected buffer. The sink keeps ownership; rendering
// into the sink again keeps appending.
func (b *BufferSink) Samples() []float32 {
	return b.buffer
}
