package main

import "testing"

func TestExitCodeForNilIsZero(t *testing.T) {
	if got := exitCodeFor(nil); got != 0 {
		t.Fatalf("exitCodeFor(nil) = %d, want 0", got)
	}
}

func TestExitCodeForCoreErrorsIsOne(t *testing.T) {
	errs := []error{
		&MemoryReadError{Addr: 0x4000},
		&UnimplementedInstruction{Addr: 0x0000, Opcode: 0xDD},
		&UnimplementedInterrupt{Opcode: 0xCD},
		&IoError{Path: "invaders.h", Err: errMissing},
	}
	for _, err := range errs {
		if got := exitCodeFor(err); got != 1 {
			t.Errorf("exitCodeFor(%v) = %d, want 1", err, got)
		}
	}
}

var errMissing = fakeError("file does not exist")

type fakeError string

func (e fakeError) Error() string { return string(e) }
