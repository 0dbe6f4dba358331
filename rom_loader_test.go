package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSpaceInvadersROMConcatenatesChipsInOrder(t *testing.T) {
	dir := t.TempDir()
	for i, name := range spaceInvaderRomFiles {
		data := make([]byte, spaceInvaderRomChipSize)
		for j := range data {
			data[j] = byte(i)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	mem := NewSpaceInvaderMemory()
	if err := LoadSpaceInvadersROM(mem, dir); err != nil {
		t.Fatalf("LoadSpaceInvadersROM: %v", err)
	}

	for i := range spaceInvaderRomFiles {
		addr := uint16(i * spaceInvaderRomChipSize)
		if got := mem.MustRead(addr); got != byte(i) {
			t.Fatalf("chip %d: mem[$%04X] = 0x%02X, want 0x%02X", i, addr, got, i)
		}
	}
}

func TestLoadSpaceInvadersROMRejectsWrongChipSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "invaders.h"), []byte{0x00}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mem := NewSpaceInvaderMemory()
	if err := LoadSpaceInvadersROM(mem, dir); err == nil {
		t.Fatalf("expected an error for an undersized ROM chip")
	}
}

func TestLoadBinaryRejectsOverflow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	if err := os.WriteFile(path, make([]byte, 0x100), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mem := NewMemory()
	if err := LoadBinary(mem, path, 0xFFF0); err == nil {
		t.Fatalf("expected overflow error loading at $FFF0")
	}
}

func TestLoadBinaryAtAddress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(path, []byte{0xC3, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mem := NewMemory()
	if err := LoadBinary(mem, path, 0x0100); err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}
	if mem.MustRead(0x0100) != 0xC3 {
		t.Fatalf("expected loaded byte at $0100")
	}
}

func TestLoadBinaryMissingFileIsIoError(t *testing.T) {
	mem := NewMemory()
	err := LoadBinary(mem, filepath.Join(t.TempDir(), "missing.bin"), 0x0000)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected an *IoError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected errors.Is(err, os.ErrNotExist) to hold through IoError's Unwrap")
	}
}

func TestLoadSpaceInvadersROMMissingChipIsIoError(t *testing.T) {
	dir := t.TempDir()
	mem := NewSpaceInvaderMemory()
	err := LoadSpaceInvadersROM(mem, dir)
	if err == nil {
		t.Fatalf("expected an error when no ROM chips are present")
	}
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected an *IoError, got %T", err)
	}
}
