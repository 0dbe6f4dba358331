//go:build headless

// runner_headless.go - the `run` subcommand's main loop when built with
// -tags headless: no window, no audio device, just the Cabinet stepping
// forever at its own wall-clock pace. Exists so a build without X11/ALSA
// development headers (CI, containers) is possible, the same reason the
// teacher carries its own headless/!headless split.

package main

func newDefaultAdapter() (PlatformAdapter, error) {
	return NewHeadlessAdapter(), nil
}

func runCabinetLoop(cabinet *Cabinet, adapter PlatformAdapter) error {
	for {
		if err := cabinet.Step(); err != nil {
			return err
		}
	}
}
