package main

import "testing"

func TestSpaceInvaderMemoryProtectsROM(t *testing.T) {
	mem := NewSpaceInvaderMemory()
	mem.Flash(0x0000, 0xAA) // Flash bypasses protection, used only at load time
	mem.Write(0x0000, 0x55) // Write must be dropped, ROM region
	if got := mem.MustRead(0x0000); got != 0xAA {
		t.Fatalf("ROM write should have been dropped, got 0x%02X", got)
	}

	mem.Write(0x2000, 0x42) // RAM region, should succeed
	if got := mem.MustRead(0x2000); got != 0x42 {
		t.Fatalf("RAM write should have succeeded, got 0x%02X", got)
	}
}

func TestMemoryReadRespectsLowHighRange(t *testing.T) {
	mem := NewMemory()
	mem.lowAddr = 0x1000
	mem.highAddr = 0x1FFF

	if _, err := mem.Read(0x0FFF); err == nil {
		t.Fatalf("expected out-of-range error below lowAddr")
	}
	if _, err := mem.Read(0x2000); err == nil {
		t.Fatalf("expected out-of-range error above highAddr")
	}
	if _, err := mem.Read(0x1500); err != nil {
		t.Fatalf("unexpected error for in-range read: %v", err)
	}
}

func TestVideoFramebufferIsALiveView(t *testing.T) {
	mem := NewMemory()
	fb := mem.VideoFramebuffer()
	if len(fb) != 0x4000-0x2400 {
		t.Fatalf("len(VideoFramebuffer()) = %d, want %d", len(fb), 0x4000-0x2400)
	}
	mem.Write(0x2400, 0x7E)
	if fb[0] != 0x7E {
		t.Fatalf("VideoFramebuffer() did not reflect a subsequent write")
	}
}
