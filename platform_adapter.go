// platform_adapter.go - the boundary between Cabinet and whatever actually
// draws a window or plays a sound. Grounded on the teacher's abstract
// Adapter (original_source/machine.hpp: `class Adapter* _platformAdapter`)
// reborn as a Go interface rather than a virtual base class, per spec.md's
// design note that GUI/audio/video stay out of the core and are bound
// only through this boundary.
package main

// InputState is a snapshot of the nine cabinet buttons the Cabinet reads
// once per Step to update port1/port2.
type InputState struct {
	Coin    bool
	P1Start bool
	P2Start bool
	P1Shoot bool
	P1Left  bool
	P1Right bool
	P2Shoot bool
	P2Left  bool
	P2Right bool
}

// Framebuffer is the rotated, decoded view of video RAM handed to
// RefreshScreen: 256 columns x 224 rows, landscape, after the 90-degree
// CCW rotation the cabinet's physical monitor mount requires (spec.md
// §4.4/§6). Pix holds one byte per pixel (0 or 1, the raw monochrome
// bit), row-major, Width*Height long.
type Framebuffer struct {
	Width, Height int
	Pix           []byte
}

// PlatformAdapter is everything a Cabinet needs from the outside world:
// input polling, a screen to refresh, and eight discrete sound cues.
// Implementations never run emulator logic themselves; they only react to
// calls the Cabinet makes from its own Step.
type PlatformAdapter interface {
	PollInput() InputState
	RefreshScreen(fb *Framebuffer)

	StartSoundUFO()
	StopSoundUFO()
	PlaySoundShoot()
	PlaySoundPlayerDie()
	PlaySoundInvaderDie()
	PlaySoundFleetMove(step int) // step in [1,4]
	PlaySoundUFOHit()
}
