//go:build !headless

// adapter_oto.go - audio cues via oto/v3, grounded on the teacher's
// audio_backend_oto.go (same oto.NewContext/NewPlayer/Read shape), cut
// down from its generic ring-buffer SoundChip source to eight fixed,
// short tones: one per discrete Space Invaders sound effect, played by
// swapping in a toneReader and calling Play.

package main

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const otoSampleRate = 44100

// OtoSoundSink owns one oto context and one player per concurrently
// playable cue; the continuous UFO cue gets its own looping player so it
// can be started and stopped independently of the one-shot cues.
type OtoSoundSink struct {
	ctx *oto.Context

	mu      sync.Mutex
	ufoOn   bool
	ufoTone *toneReader
	ufoPlr  *oto.Player
}

// NewOtoSoundSink opens the platform's default audio device.
func NewOtoSoundSink() (*OtoSoundSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   otoSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSoundSink{ctx: ctx}
	s.ufoTone = newToneReader(220, otoSampleRate, true)
	s.ufoPlr = ctx.NewPlayer(s.ufoTone)
	return s, nil
}

func (s *OtoSoundSink) playOneShot(freq float64, durationSamples int) {
	tone := newToneReader(freq, otoSampleRate, false)
	tone.remaining = durationSamples
	player := s.ctx.NewPlayer(tone)
	player.Play()
}

func (s *OtoSoundSink) StartSoundUFO() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ufoOn {
		return
	}
	s.ufoOn = true
	s.ufoPlr.Play()
}

func (s *OtoSoundSink) StopSoundUFO() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ufoOn {
		return
	}
	s.ufoOn = false
	s.ufoPlr.Pause()
}

func (s *OtoSoundSink) PlaySoundShoot()      { s.playOneShot(880, otoSampleRate/10) }
func (s *OtoSoundSink) PlaySoundPlayerDie()  { s.playOneShot(110, otoSampleRate/3) }
func (s *OtoSoundSink) PlaySoundInvaderDie() { s.playOneShot(440, otoSampleRate/8) }
func (s *OtoSoundSink) PlaySoundUFOHit()     { s.playOneShot(660, otoSampleRate/5) }

// PlaySoundFleetMove plays one of the four rising "fleet march" tones,
// step in [1,4] as supplied by Cabinet's port-5 edge detector.
func (s *OtoSoundSink) PlaySoundFleetMove(step int) {
	freq := 90.0 + float64(step)*30.0
	s.playOneShot(freq, otoSampleRate/12)
}

// toneReader generates a square wave as float32LE samples, either for a
// fixed number of samples (one-shot cues) or indefinitely (the looping
// UFO cue, paused/resumed rather than re-created).
type toneReader struct {
	freq      float64
	sampleHz  int
	loop      bool
	remaining int
	phase     float64
}

func newToneReader(freq float64, sampleHz int, loop bool) *toneReader {
	return &toneReader{freq: freq, sampleHz: sampleHz, loop: loop}
}

func (t *toneReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if !t.loop && n > t.remaining {
		n = t.remaining
	}
	step := t.freq / float64(t.sampleHz)
	for i := 0; i < n; i++ {
		sample := float32(math.Copysign(1, math.Sin(2*math.Pi*t.phase)))
		bits := math.Float32bits(sample)
		p[i*4+0] = byte(bits)
		p[i*4+1] = byte(bits >> 8)
		p[i*4+2] = byte(bits >> 16)
		p[i*4+3] = byte(bits >> 24)
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	if !t.loop {
		t.remaining -= n
	}
	for i := n * 4; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}
