package main

import "testing"

func newTestCabinet() (*Cabinet, *Emulator, *HeadlessAdapter) {
	mem := NewMemory()
	emu := NewEmulator()
	emu.ConnectMemory(mem)
	emu.InterruptsEnabled = true
	adapter := NewHeadlessAdapter()
	return NewCabinet(emu, adapter), emu, adapter
}

func TestCabinetPort1ReflectsButtons(t *testing.T) {
	cab, _, adapter := newTestCabinet()
	adapter.SetInput(InputState{Coin: true, P1Start: true, P1Shoot: true})
	cab.applyInput(adapter.PollInput())
	if cab.port1 != 0x01|0x04|0x10 {
		t.Fatalf("port1 = 0x%02X", cab.port1)
	}
}

func TestCabinetPort2ReflectsP2Buttons(t *testing.T) {
	cab, _, adapter := newTestCabinet()
	adapter.SetInput(InputState{P2Shoot: true, P2Right: true})
	cab.applyInput(adapter.PollInput())
	if cab.port2 != 0x10|0x40 {
		t.Fatalf("port2 = 0x%02X", cab.port2)
	}
}

func TestCabinetShiftRegister(t *testing.T) {
	cab, _, _ := newTestCabinet()
	cab.writePort(4, 0x12) // shift in 0x12 -> register = 0x1200
	cab.writePort(4, 0x34) // shift in 0x34 -> register = 0x3412
	cab.writePort(2, 4)    // offset 4

	got := cab.readPort(3)
	want := byte(cab.shiftRegister >> (8 - 4))
	if got != want {
		t.Fatalf("readPort(3) = 0x%02X, want 0x%02X", got, want)
	}
	if cab.shiftRegister != 0x3412 {
		t.Fatalf("shiftRegister = 0x%04X, want 0x3412", cab.shiftRegister)
	}
}

func TestCabinetPort3EdgeTriggeredSounds(t *testing.T) {
	cab, _, adapter := newTestCabinet()

	cab.writePort(3, 0x01) // UFO on
	if adapter.SoundCount("ufoStart") != 1 {
		t.Fatalf("expected ufoStart to fire once")
	}
	cab.writePort(3, 0x01) // no change, no retrigger
	if adapter.SoundCount("ufoStart") != 1 {
		t.Fatalf("ufoStart should not retrigger while the bit stays set")
	}
	cab.writePort(3, 0x00) // UFO off
	if adapter.SoundCount("ufoStop") != 1 {
		t.Fatalf("expected ufoStop to fire once")
	}

	cab.writePort(3, 0x02)
	if adapter.SoundCount("shoot") != 1 {
		t.Fatalf("expected shoot sound once")
	}
}

func TestCabinetPort5FleetMoveAndUFOHit(t *testing.T) {
	cab, _, adapter := newTestCabinet()

	cab.writePort(5, 0x01)
	if adapter.SoundCount("fleetMove1") != 1 {
		t.Fatalf("expected fleetMove1 once")
	}
	cab.writePort(5, 0x00)
	cab.writePort(5, 0x08)
	if adapter.SoundCount("fleetMove4") != 1 {
		t.Fatalf("expected fleetMove4 once")
	}
	cab.writePort(5, 0x10)
	if adapter.SoundCount("ufoHit") != 1 {
		t.Fatalf("expected ufoHit once")
	}
}
