package main

import (
	"bytes"
	"strings"
	"testing"
)

func newTestDebugMonitor(program []byte) (*DebugMonitor, *bytes.Buffer) {
	mem := NewMemory()
	mem.FlashBlock(0x0000, program)
	emu := NewEmulator()
	emu.ConnectMemory(mem)
	var out bytes.Buffer
	return NewDebugMonitor(emu, mem, &out), &out
}

func TestDebugMonitorStepAdvancesPC(t *testing.T) {
	mon, out := newTestDebugMonitor([]byte{0x00, 0x00, 0x76})
	mon.step(2)
	if mon.emu.PC != 2 {
		t.Fatalf("PC = $%04X after stepping 2 NOPs, want $0002", mon.emu.PC)
	}
	if !strings.Contains(out.String(), "NOP") {
		t.Fatalf("expected trace output to mention NOP, got %q", out.String())
	}
}

func TestDebugMonitorBreakpointStopsContinue(t *testing.T) {
	// NOP NOP NOP HLT
	mon, out := newTestDebugMonitor([]byte{0x00, 0x00, 0x00, 0x76})
	mon.addBreakpoint([]string{"$0002"})
	mon.continueUntilBreak()
	if mon.emu.PC != 0x0002 {
		t.Fatalf("PC = $%04X, want $0002 at the breakpoint", mon.emu.PC)
	}
	if !strings.Contains(out.String(), "breakpoint hit at $0002") {
		t.Fatalf("expected breakpoint-hit message, got %q", out.String())
	}
}

func TestDebugMonitorConditionalBreakpointOnlyFiresWhenTrue(t *testing.T) {
	// MVI B,3 ; loop: INR A ; DCR B ; JNZ loop ; HLT. A breakpoint at the
	// loop's top only fires once the condition becomes true, so the
	// monitor must run past the first two trips around the loop.
	program := []byte{0x06, 0x03, 0x3C, 0x05, 0xC2, 0x02, 0x00, 0x76}
	mon, _ := newTestDebugMonitor(program)
	mon.addBreakpoint([]string{"$0002", "A==$02"})
	mon.continueUntilBreak()
	if mon.emu.A != 0x02 {
		t.Fatalf("A = 0x%02X, expected the monitor to stop exactly when A reached 2", mon.emu.A)
	}
	if mon.emu.PC != 0x0002 {
		t.Fatalf("PC = $%04X, want $0002 at the breakpoint", mon.emu.PC)
	}
}

func TestDebugMonitorDeleteBreakpointRemovesIt(t *testing.T) {
	mon, _ := newTestDebugMonitor([]byte{0x00, 0x76})
	mon.addBreakpoint([]string{"$0001"})
	mon.deleteBreakpoint([]string{"$0001"})
	if len(mon.breakpoints) != 0 {
		t.Fatalf("expected no breakpoints after delete")
	}
}

func TestDebugMonitorDumpMemory(t *testing.T) {
	mon, out := newTestDebugMonitor([]byte{0x11, 0x22, 0x33, 0x44})
	mon.dumpMemory([]string{"$0000", "#4"})
	if !strings.Contains(out.String(), "11 22 33 44") {
		t.Fatalf("expected hex dump of the 4 bytes, got %q", out.String())
	}
}

func TestDebugMonitorDispatchQuit(t *testing.T) {
	mon, _ := newTestDebugMonitor([]byte{0x00})
	if !mon.dispatch("quit") {
		t.Fatalf("expected dispatch(\"quit\") to report quit=true")
	}
	if mon.dispatch("step") {
		t.Fatalf("expected dispatch(\"step\") to keep running")
	}
}
