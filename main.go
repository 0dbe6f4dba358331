// main.go - CLI entry point: hexdump/disassemble/debug/run over a
// Space Invaders ROM set or a single CP/M binary. Grounded on the
// teacher's main.go argument handling (plain os.Args parsing, no flag
// framework), generalized from its fixed two-positional-argument shape
// into subcommand + positional fileName + a --cpm switch per spec.md §6.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: invaders <hexdump|disassemble|debug|run> [--cpm] [--dump-on-exit path] [--headless] [--stats] fileName")
}

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]
	cpm := false
	headless := false
	stats := false
	dumpOnExit := ""
	var fileName string

	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--cpm":
			cpm = true
		case args[i] == "--headless":
			headless = true
		case args[i] == "--stats":
			stats = true
		case args[i] == "--dump-on-exit" && i+1 < len(args):
			i++
			dumpOnExit = args[i]
		default:
			fileName = args[i]
		}
	}
	if fileName == "" {
		usage()
		os.Exit(1)
	}

	var err error
	switch command {
	case "hexdump":
		err = runHexdump(fileName, cpm)
	case "disassemble":
		err = runDisassemble(fileName, cpm)
	case "debug":
		err = runDebug(fileName, cpm)
	case "run":
		err = runGame(fileName, cpm, dumpOnExit, headless, stats)
	default:
		usage()
		os.Exit(1)
	}

	os.Exit(exitCodeFor(err))
}

// exitCodeFor maps a core error kind to the CLI's process exit code: 0 on
// a clean run, 1 for any of the fatal core error kinds (spec.md §7). The
// errors.As chain exists to name which kind failed in the diagnostic,
// not to change the exit code itself — every core error kind is fatal.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var memErr *MemoryReadError
	var unimpErr *UnimplementedInstruction
	var intErr *UnimplementedInterrupt
	var ioErr *IoError

	switch {
	case errors.As(err, &ioErr):
		fmt.Fprintln(os.Stderr, "error:", ioErr)
	case errors.As(err, &memErr):
		fmt.Fprintln(os.Stderr, "error:", memErr)
	case errors.As(err, &unimpErr):
		fmt.Fprintln(os.Stderr, "error:", unimpErr)
	case errors.As(err, &intErr):
		fmt.Fprintln(os.Stderr, "error:", intErr)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return 1
}

// installDumpOnExit arranges for mem's video RAM window to be written to
// path as a raw .snapshot the moment the process receives SIGINT/SIGTERM,
// for cmd/invaders-shot to later rasterise.
func installDumpOnExit(mem *Memory, path string) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		if err := os.WriteFile(path, mem.VideoFramebuffer(), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "dump-on-exit:", err)
		}
		os.Exit(0)
	}()
}

// loadForCPM loads fileName at $0100 and installs the BDOS stub, for the
// three tooling subcommands and for `run --cpm`.
func loadForCPM(mem *Memory, fileName string) error {
	if err := LoadBinary(mem, fileName, 0x0100); err != nil {
		return err
	}
	InstallCPMStub(mem)
	return nil
}

func runHexdump(fileName string, cpm bool) error {
	mem := NewMemory()
	if cpm {
		if err := loadForCPM(mem, fileName); err != nil {
			return err
		}
	} else if err := LoadBinary(mem, fileName, 0x0000); err != nil {
		return err
	}

	for addr := uint32(mem.LowAddress()); addr <= uint32(mem.HighAddress()); addr += 16 {
		fmt.Printf("$%04X  ", addr)
		for j := uint32(0); j < 16 && addr+j <= uint32(mem.HighAddress()); j++ {
			fmt.Printf("%02X ", mem.MustRead(uint16(addr+j)))
		}
		fmt.Println()
	}
	return nil
}

func runDisassemble(fileName string, cpm bool) error {
	mem := NewMemory()
	entry := uint16(0x0000)
	if cpm {
		if err := loadForCPM(mem, fileName); err != nil {
			return err
		}
		entry = 0x0100
	} else if err := LoadBinary(mem, fileName, 0x0000); err != nil {
		return err
	}

	addr := entry
	for addr < 0xFFFF {
		size, mnemonic, err := decodeAt(mem, addr)
		if err != nil {
			return err
		}
		fmt.Printf("$%04X  %s\n", addr, mnemonic)
		addr += uint16(size)
	}
	return nil
}

func runDebug(fileName string, cpm bool) error {
	mem := NewMemory()
	entry := uint16(0x0000)
	if cpm {
		if err := loadForCPM(mem, fileName); err != nil {
			return err
		}
		entry = 0x0100
	} else if err := LoadBinary(mem, fileName, 0x0000); err != nil {
		return err
	}

	emu := NewEmulator()
	emu.ConnectMemory(mem)
	emu.Reset(entry)
	if cpm {
		NewCPMHarness(emu, os.Stdout)
	}

	monitor := NewDebugMonitor(emu, mem, os.Stdout)
	var lines <-chan string
	if term := NewTerminalHost(); isTerminal(os.Stdin) {
		term.Start()
		defer term.Stop()
		lines = term.Lines()
	} else {
		lines = bufferedStdinLines()
	}
	monitor.Run(lines)
	return nil
}

func runGame(fileName string, cpm bool, dumpOnExit string, headless bool, stats bool) error {
	mem := NewSpaceInvaderMemory()
	entry := uint16(0x0000)
	if cpm {
		mem = NewMemory()
		if err := loadForCPM(mem, fileName); err != nil {
			return err
		}
		entry = 0x0100
	} else if err := LoadSpaceInvadersROM(mem, filepath.Dir(fileName)); err != nil {
		return err
	}

	if dumpOnExit != "" {
		installDumpOnExit(mem, dumpOnExit)
	}

	emu := NewEmulator()
	emu.ConnectMemory(mem)
	emu.Reset(entry)
	start := time.Now()

	if cpm {
		NewCPMHarness(emu, os.Stdout)
		for emu.PC != 0 {
			if _, err := emu.Step(); err != nil {
				return err
			}
		}
		if stats {
			printStats(emu, time.Since(start))
		}
		return nil
	}

	var adapter PlatformAdapter
	var err error
	if headless {
		adapter = NewHeadlessAdapter()
	} else {
		adapter, err = newDefaultAdapter()
		if err != nil {
			return err
		}
	}

	cabinet := NewCabinet(emu, adapter)
	runErr := runCabinetLoop(cabinet, adapter)
	if stats {
		printStats(emu, time.Since(start))
	}
	return runErr
}

// printStats reports the `run --stats` performance counters named in
// SPEC_FULL.md §4.3: total instructions executed and the resulting
// instructions-per-second rate over the run's wall-clock duration.
func printStats(emu *Emulator, elapsed time.Duration) {
	n := emu.InstructionsExecuted()
	var ips float64
	if elapsed > 0 {
		ips = float64(n) / elapsed.Seconds()
	}
	fmt.Fprintf(os.Stderr, "instructions executed: %d (%.0f/s over %s)\n", n, ips, elapsed.Round(time.Millisecond))
}
