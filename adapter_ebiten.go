//go:build !headless

// adapter_ebiten.go - windowed video + keyboard input for the arcade
// cabinet, grounded on the teacher's video_backend_ebiten.go (same
// ebiten.Game Update/Draw/Layout shape, same inpututil key-press
// polling), simplified down from its generic multi-format framebuffer to
// the one pixel format this repository ever produces: a 256x224
// one-byte-per-pixel monochrome Framebuffer.

package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"
)

// phosphorGreen tints lit pixels the way the cabinet's P1 phosphor CRT did,
// rather than drawing flat white.
var phosphorGreen color.Color = colornames.Springgreen

// EbitenAdapter draws the cabinet's screen in a real window and reads
// keyboard state for the nine cabinet buttons. It implements
// PlatformAdapter; StartSoundUFO/PlaySound* are delegated to an
// OtoSoundSink so the ebiten game loop itself stays audio-agnostic.
type EbitenAdapter struct {
	sound   *OtoSoundSink
	cabinet *Cabinet

	mu     sync.Mutex
	latest *Framebuffer
	img    *ebiten.Image
}

// SetCabinet wires the Cabinet whose Step the ebiten Update loop drives.
// Called once after both the adapter and its Cabinet exist, since
// NewCabinet itself needs the adapter to already be constructed.
func (a *EbitenAdapter) SetCabinet(c *Cabinet) { a.cabinet = c }

// NewEbitenAdapter constructs the adapter and its paired sound sink but
// does not open a window until Run is called.
func NewEbitenAdapter() (*EbitenAdapter, error) {
	sound, err := NewOtoSoundSink()
	if err != nil {
		return nil, err
	}
	return &EbitenAdapter{
		sound: sound,
		img:   ebiten.NewImage(videoBitRows, videoColumns),
	}, nil
}

// Run opens the game window and blocks until it is closed, the same way
// the teacher's Start() hands the game loop to ebiten.RunGame.
func (a *EbitenAdapter) Run(title string) error {
	ebiten.SetWindowSize(videoBitRows*2, videoColumns*2)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(a)
}

func (a *EbitenAdapter) PollInput() InputState {
	return InputState{
		Coin:    inpututil.IsKeyJustPressed(ebiten.KeyC),
		P1Start: ebiten.IsKeyPressed(ebiten.Key1),
		P2Start: ebiten.IsKeyPressed(ebiten.Key2),
		P1Shoot: ebiten.IsKeyPressed(ebiten.KeySpace),
		P1Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		P1Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		P2Shoot: ebiten.IsKeyPressed(ebiten.KeyEnter),
		P2Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		P2Right: ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (a *EbitenAdapter) RefreshScreen(fb *Framebuffer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.latest = fb
}

// Update satisfies ebiten.Game, driving one Cabinet.Step per ebiten tick.
func (a *EbitenAdapter) Update() error {
	if a.cabinet == nil {
		return nil
	}
	return a.cabinet.Step()
}

func (a *EbitenAdapter) Draw(screen *ebiten.Image) {
	a.mu.Lock()
	fb := a.latest
	a.mu.Unlock()
	if fb == nil {
		return
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := color.Color(color.Black)
			if fb.Pix[y*fb.Width+x] != 0 {
				c = phosphorGreen
			}
			a.img.Set(x, y, c)
		}
	}
	screen.DrawImage(a.img, nil)
}

func (a *EbitenAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return videoBitRows, videoColumns
}

func (a *EbitenAdapter) StartSoundUFO()       { a.sound.StartSoundUFO() }
func (a *EbitenAdapter) StopSoundUFO()        { a.sound.StopSoundUFO() }
func (a *EbitenAdapter) PlaySoundShoot()      { a.sound.PlaySoundShoot() }
func (a *EbitenAdapter) PlaySoundPlayerDie()  { a.sound.PlaySoundPlayerDie() }
func (a *EbitenAdapter) PlaySoundInvaderDie() { a.sound.PlaySoundInvaderDie() }
func (a *EbitenAdapter) PlaySoundUFOHit()     { a.sound.PlaySoundUFOHit() }
func (a *EbitenAdapter) PlaySoundFleetMove(step int) {
	a.sound.PlaySoundFleetMove(step)
}
