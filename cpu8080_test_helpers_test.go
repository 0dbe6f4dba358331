package main

import "testing"

// cpu8080TestRig bundles an Emulator with a flat memory and recorded I/O
// for opcode tests, the same rig-per-package convention the teacher uses
// for its own CPU cores (see cpu_z80_test_helpers_test.go).
type cpu8080TestRig struct {
	mem *Memory
	emu *Emulator

	inPorts  map[byte]byte
	outPorts map[byte]byte
}

func newCPU8080TestRig() *cpu8080TestRig {
	mem := NewMemory()
	emu := NewEmulator()
	emu.ConnectMemory(mem)

	rig := &cpu8080TestRig{
		mem:      mem,
		emu:      emu,
		inPorts:  map[byte]byte{},
		outPorts: map[byte]byte{},
	}
	emu.ConnectInput(func(port byte) byte { return rig.inPorts[port] })
	emu.ConnectOutput(func(port byte, v byte) { rig.outPorts[port] = v })
	return rig
}

// load flashes program at start and resets PC there, leaving every other
// register at its zero value.
func (r *cpu8080TestRig) load(start uint16, program ...byte) {
	r.mem.FlashBlock(start, program)
	r.emu.Reset(start)
}

// step runs exactly one instruction and fails the test on error.
func (r *cpu8080TestRig) step(t *testing.T) int {
	t.Helper()
	cycles, err := r.emu.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return cycles
}

func requireU8(t *testing.T, name string, got, want byte) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%02X, want 0x%02X", name, got, want)
	}
}

func requireU16(t *testing.T, name string, got, want uint16) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%04X, want 0x%04X", name, got, want)
	}
}

func requireFlag(t *testing.T, name string, got, want bool) {
	t.Helper()
	if got != want {
		t.Fatalf("flag %s = %v, want %v", name, got, want)
	}
}
