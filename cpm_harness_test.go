package main

import (
	"bytes"
	"testing"
)

// TestCPMHarnessPrintsDollarTerminatedString exercises the exact path a
// real diagnostic ROM uses: load a message into memory, CALL 0x0005 with
// C=9 and DE pointing at it, and confirm the harness writes the string up
// to (not including) the terminating '$'.
func TestCPMHarnessPrintsDollarTerminatedString(t *testing.T) {
	mem := NewMemory()
	InstallCPMStub(mem)

	msg := "CPU IS OPERATIONAL$"
	mem.FlashBlock(0x0200, []byte(msg))

	emu := NewEmulator()
	emu.ConnectMemory(mem)
	emu.Reset(0x0100)
	emu.SP = 0x2400

	var out bytes.Buffer
	NewCPMHarness(emu, &out)

	// MVI C,9 ; LXI D,0x0200 ; CALL 0x0005 ; HLT
	program := []byte{0x0E, 0x09, 0x11, 0x00, 0x02, 0xCD, 0x05, 0x00, 0x76}
	mem.FlashBlock(0x0100, program)

	for i := 0; i < 10; i++ {
		if emu.Halted {
			break
		}
		if _, err := emu.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	if got := out.String(); got != "CPU IS OPERATIONAL" {
		t.Fatalf("harness output = %q, want %q", got, "CPU IS OPERATIONAL")
	}
}

func TestCPMHarnessPrintsSingleCharacter(t *testing.T) {
	mem := NewMemory()
	InstallCPMStub(mem)

	emu := NewEmulator()
	emu.ConnectMemory(mem)
	emu.Reset(0x0100)
	emu.SP = 0x2400

	var out bytes.Buffer
	NewCPMHarness(emu, &out)

	// MVI C,2 ; MVI E,'!' ; CALL 0x0005
	program := []byte{0x0E, 0x02, 0x1E, '!', 0xCD, 0x05, 0x00}
	mem.FlashBlock(0x0100, program)

	for i := 0; i < 5; i++ {
		if _, err := emu.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	if got := out.String(); got != "!" {
		t.Fatalf("harness output = %q, want %q", got, "!")
	}
}
