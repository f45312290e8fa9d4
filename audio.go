package fmsynth

// AudioSink accepts rendered sample chunks, in chronological order, and
// schedules their playback. Implementations decide whether that means a
// hardware callback pulling from a ring (the oto package) or an in-memory
// buffer (BufferSink); the engine never branches on which one it got.
type AudioSink interface {
	WriteAudio(buffer []float32) error
	Close() error
}

type AudioContext interface {
	Output() AudioSink
	Close() error
}
