// rom_loader.go - loads a Space Invaders ROM set or a single CP/M binary
// into Memory, grounded on the teacher's CPUZ80Runner.LoadProgram
// (cpu_z80_runner.go): os.ReadFile plus a byte-by-byte flash, generalized
// here to concatenate the four original ROM chips in address order.

package main

import (
	"fmt"
	"os"
)

// spaceInvaderRomFiles is the four original arcade ROM chips in load
// order: invaders.h at $0000, invaders.g at $0800, invaders.f at $1000,
// invaders.e at $1800.
var spaceInvaderRomFiles = []string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

const spaceInvaderRomChipSize = 0x0800

// IoError wraps a ROM-file open/read failure from the loading harness
// (spec.md §7). It is distinct from the core CPU error kinds
// (MemoryReadError, UnimplementedInstruction, UnimplementedInterrupt):
// those come from the running emulator, this one from the filesystem
// before the emulator ever starts. Unwrap exposes the underlying
// *os.PathError so callers can still errors.Is it against os.ErrNotExist
// and friends.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io error: %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// LoadSpaceInvadersROM concatenates the four ROM chip files found in dir
// and flashes them into mem starting at $0000.
func LoadSpaceInvadersROM(mem *Memory, dir string) error {
	addr := uint16(0)
	for _, name := range spaceInvaderRomFiles {
		path := dir + string(os.PathSeparator) + name
		data, err := os.ReadFile(path)
		if err != nil {
			return &IoError{Path: path, Err: err}
		}
		if len(data) != spaceInvaderRomChipSize {
			return fmt.Errorf("load %s: expected %d bytes, got %d", name, spaceInvaderRomChipSize, len(data))
		}
		mem.FlashBlock(addr, data)
		addr += spaceInvaderRomChipSize
	}
	return nil
}

// LoadBinary flashes the raw contents of filename into mem starting at
// loadAddr, for the `hexdump`/`disassemble`/`debug --cpm` paths that
// operate on a single CP/M-style binary rather than the four-chip ROM
// set.
func LoadBinary(mem *Memory, filename string, loadAddr uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return &IoError{Path: filename, Err: err}
	}
	if int(loadAddr)+len(data) > 0x10000 {
		return fmt.Errorf("load %s: %d bytes at $%04X overflows the 64KB address space", filename, len(data), loadAddr)
	}
	mem.FlashBlock(loadAddr, data)
	return nil
}
