//go:build !headless

// runner_ebiten.go - the `run` subcommand's main loop for the default,
// windowed build: ebiten owns the calling goroutine via RunGame, driving
// one Cabinet.Step per Update tick. `run --headless` overrides the
// adapter to HeadlessAdapter at runtime without needing the `headless`
// build tag, for CI/containers that still want the windowed binary
// available for interactive use.

package main

import "fmt"

func newDefaultAdapter() (PlatformAdapter, error) {
	return NewEbitenAdapter()
}

func runCabinetLoop(cabinet *Cabinet, adapter PlatformAdapter) error {
	if headlessAdapter, ok := adapter.(*HeadlessAdapter); ok {
		return runHeadlessCabinetLoop(cabinet, headlessAdapter)
	}
	ebitenAdapter, ok := adapter.(*EbitenAdapter)
	if !ok {
		return fmt.Errorf("runner_ebiten: unexpected adapter type %T", adapter)
	}
	ebitenAdapter.SetCabinet(cabinet)
	return ebitenAdapter.Run("Space Invaders")
}

func runHeadlessCabinetLoop(cabinet *Cabinet, adapter *HeadlessAdapter) error {
	for {
		if err := cabinet.Step(); err != nil {
			return err
		}
	}
}
