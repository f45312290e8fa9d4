package fmsynth_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gsspdev/fmsynth"
)

func TestWavFloat32(t *testing.T) {
	buffer := []float32{0, 0.5, -0.5, 1}
	wav, err := fmsynth.Wav(buffer, 44100, false)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	// float32 header is 58 bytes (fmt extension + fact chunk), then 4 bytes
	// per sample
	if len(wav) != 58+4*len(buffer) {
		t.Errorf("expected %v bytes, got %v", 58+4*len(buffer), len(wav))
	}
	if !bytes.HasPrefix(wav, []byte("RIFF")) || !bytes.Equal(wav[8:12], []byte("WAVE")) {
		t.Error("wav header magic is wrong")
	}
	rate := binary.LittleEndian.Uint32(wav[24:28])
	if rate != 44100 {
		t.Errorf("header sample rate should be 44100, got %v", rate)
	}
}

func TestWavPcm16(t *testing.T) {
	buffer := []float32{0, 0.5, -0.5, 1}
	wav, err := fmsynth.Wav(buffer, 48000, true)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	if len(wav) != 44+2*len(buffer) {
		t.Errorf("expected %v bytes, got %v", 44+2*len(buffer), len(wav))
	}
	rate := binary.LittleEndian.Uint32(wav[24:28])
	if rate != 48000 {
		t.Errorf("header sample rate should be 48000, got %v", rate)
	}
}

func TestRawPcm16ClampsOverflow(t *testing.T) {
	raw, err := fmsynth.Raw([]float32{2, -2}, true)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	hi := int16(binary.LittleEndian.Uint16(raw[0:2]))
	lo := int16(binary.LittleEndian.Uint16(raw[2:4]))
	if hi != 32767 || lo != -32768 {
		t.Errorf("out of range samples should clamp to int16 range, got %v and %v", hi, lo)
	}
}

func TestBufferSinkCollects(t *testing.T) {
	var sink fmsynth.BufferSink
	if err := sink.WriteAudio([]float32{1, 2}); err != nil {
		t.Fatalf("WriteAudio failed: %v", err)
	}
	if err := sink.WriteAudio([]float32{3}); err != nil {
		t.Fatalf("WriteAudio failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	got := sink.Samples()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("sink should collect chunks in order, got %v", got)
	}
}
