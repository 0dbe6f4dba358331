// adapter_headless.go - the no-op PlatformAdapter used by `run --headless`
// and by every test that drives a Cabinet: it records what it was told
// rather than opening a window or a sound device. Unlike the teacher's
// headless backends (video_backend_headless.go, audio_backend_headless.go),
// this one carries no build tag — it is always compiled, so package tests
// never need `-tags headless` to run.

package main

import (
	"fmt"
	"sync"
)

// HeadlessAdapter implements PlatformAdapter without touching any real
// display or audio device. PollInput always returns the last InputState
// handed to it via SetInput (tests drive input this way); RefreshScreen
// and the sound triggers just count their calls.
type HeadlessAdapter struct {
	mu sync.Mutex

	input InputState

	frames       uint64
	lastFrame    *Framebuffer
	soundsPlayed map[string]int
	ufoSoundOn   bool
}

// NewHeadlessAdapter returns a HeadlessAdapter with no buttons held.
func NewHeadlessAdapter() *HeadlessAdapter {
	return &HeadlessAdapter{soundsPlayed: make(map[string]int)}
}

// SetInput replaces the InputState the next PollInput call will return.
func (h *HeadlessAdapter) SetInput(in InputState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.input = in
}

func (h *HeadlessAdapter) PollInput() InputState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.input
}

func (h *HeadlessAdapter) RefreshScreen(fb *Framebuffer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames++
	h.lastFrame = fb
}

// FrameCount reports how many times RefreshScreen has been called.
func (h *HeadlessAdapter) FrameCount() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// LastFrame returns the most recent Framebuffer passed to RefreshScreen,
// or nil if none has arrived yet.
func (h *HeadlessAdapter) LastFrame() *Framebuffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastFrame
}

func (h *HeadlessAdapter) recordSound(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.soundsPlayed[name]++
}

// SoundCount reports how many times the named cue has fired, for test
// assertions (e.g. "shoot", "playerDie", "invaderDie", "fleetMove1",
// "ufoHit"; "ufoStart"/"ufoStop" for the looping UFO cue).
func (h *HeadlessAdapter) SoundCount(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.soundsPlayed[name]
}

func (h *HeadlessAdapter) StartSoundUFO() {
	h.mu.Lock()
	h.ufoSoundOn = true
	h.mu.Unlock()
	h.recordSound("ufoStart")
}

func (h *HeadlessAdapter) StopSoundUFO() {
	h.mu.Lock()
	h.ufoSoundOn = false
	h.mu.Unlock()
	h.recordSound("ufoStop")
}

func (h *HeadlessAdapter) PlaySoundShoot()      { h.recordSound("shoot") }
func (h *HeadlessAdapter) PlaySoundPlayerDie()  { h.recordSound("playerDie") }
func (h *HeadlessAdapter) PlaySoundInvaderDie() { h.recordSound("invaderDie") }
func (h *HeadlessAdapter) PlaySoundUFOHit()     { h.recordSound("ufoHit") }

func (h *HeadlessAdapter) PlaySoundFleetMove(step int) {
	h.recordSound(fmt.Sprintf("fleetMove%d", step))
}
