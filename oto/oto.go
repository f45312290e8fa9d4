// Package oto adapts an ebitengine/oto/v3 output device to the
// fmsynth.AudioSink contract. The device pulls samples through a callback;
// the sink bridges the engine's pushed chunks into a bounded fifo the
// callback drains, so the producer gets backpressure at roughly the fifo's
// worth of latency.
package oto

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gsspdev/fmsynth"
)

type OtoContext struct {
	ctx        *oto.Context
	sampleRate int
}

type OtoOutput struct {
	player *oto.Player
	mutex  sync.Mutex
	space  *sync.Cond // signaled when the fifo drains below capacity
	fifo   []float32
	closed bool
}

// fifoCapacity bounds how many samples WriteAudio may queue ahead of the
// device, roughly 186 ms at 44100 Hz. Cancellation latency is capped by it.
const fifoCapacity = 8192

// NewContext creates an audio context playing mono float32 samples at the
// given sample rate.
func NewContext(sampleRate int) (*OtoContext, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{ctx: ctx, sampleRate: sampleRate}, nil
}

// Output starts a new player pulling from an empty fifo; until the first
// WriteAudio it plays silence.
func (c *OtoContext) Output() fmsynth.AudioSink {
	o := &OtoOutput{}
	o.space = sync.NewCond(&o.mutex)
	o.player = c.ctx.NewPlayer(o)
	o.player.Play()
	return o
}

// Close is a no-op: an oto context cannot be closed, the process-wide device
// stays open until exit.
func (c *OtoContext) Close() error {
	return nil
}

// WriteAudio queues a chunk for playback, blocking while the fifo is full so
// the producer cannot run arbitrarily far ahead of the device.
func (o *OtoOutput) WriteAudio(buffer []float32) error {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	for len(o.fifo) >= fifoCapacity && !o.closed {
		o.space.Wait()
	}
	if o.closed {
		return errors.New("cannot write to a closed sink")
	}
	o.fifo = append(o.fifo, buffer...)
	return nil
}

// Read is the device pull callback. It drains whatever the fifo holds and
// zero-fills the rest, so a slow producer causes silence instead of an
// underrun error.
func (o *OtoOutput) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	o.mutex.Lock()
	if o.closed && len(o.fifo) == 0 {
		o.mutex.Unlock()
		return 0, io.EOF
	}
	take := numSamples
	if take > len(o.fifo) {
		take = len(o.fifo)
	}
	floatsToBytesLE(o.fifo[:take], p)
	o.fifo = append(o.fifo[:0], o.fifo[take:]...)
	o.space.Signal()
	o.mutex.Unlock()
	for i := take * 4; i < numSamples*4; i++ {
		p[i] = 0
	}
	return numSamples * 4, nil
}

// Close waits until everything queued has actually been played, then
// disposes of the player. This is what makes PlayMelody return only after
// the audio has been heard.
func (o *OtoOutput) Close() error {
	for {
		o.mutex.Lock()
		queued := len(o.fifo)
		o.mutex.Unlock()
		if queued == 0 && o.player.BufferedSize() == 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	o.mutex.Lock()
	o.closed = true
	o.space.Broadcast()
	o.mutex.Unlock()
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}
