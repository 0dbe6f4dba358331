// debug_monitor.go - the `debug` subcommand's interactive command loop: a
// line-oriented monitor in the spirit of the teacher's MachineMonitor
// (debug_monitor.go) but built for a terminal rather than an in-window
// overlay, since this repository's debug surface is CLI-only (spec.md §6
// names `debug` as a plain subcommand, not a GUI feature).

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Breakpoint is one address-triggered, optionally conditioned stop point.
type Breakpoint struct {
	Addr     uint16
	Cond     *breakpointCondition
	HitCount uint64
}

// DebugMonitor drives an Emulator one instruction (or one run) at a time,
// printing a disassembly trace and honouring breakpoints, entirely
// through Read/Write against the io.Writer/channel it's given rather than
// any direct terminal dependency — TerminalHost or bufferedStdinLines
// supply the actual line source.
type DebugMonitor struct {
	emu *Emulator
	mem *Memory
	out io.Writer

	breakpoints map[uint16]*Breakpoint
	running     bool
}

// NewDebugMonitor wraps emu/mem for interactive stepping, writing all
// output to out.
func NewDebugMonitor(emu *Emulator, mem *Memory, out io.Writer) *DebugMonitor {
	return &DebugMonitor{
		emu:         emu,
		mem:         mem,
		out:         out,
		breakpoints: make(map[uint16]*Breakpoint),
	}
}

// Run reads one command per line from lines until it sees "quit" or the
// channel closes.
func (d *DebugMonitor) Run(lines <-chan string) {
	fmt.Fprintln(d.out, "debug monitor ready, type 'help' for commands")
	d.printState()
	for line := range lines {
		if d.dispatch(strings.TrimSpace(line)) {
			return
		}
	}
}

func (d *DebugMonitor) dispatch(line string) (quit bool) {
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "quit", "q", "exit":
		return true
	case "help", "?":
		d.printHelp()
	case "step", "s":
		count := 1
		if len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				count = n
			}
		}
		d.step(count)
	case "continue", "c":
		d.continueUntilBreak()
	case "regs", "r":
		d.printState()
	case "break", "b":
		d.addBreakpoint(args)
	case "delete", "d":
		d.deleteBreakpoint(args)
	case "breakpoints", "bl":
		d.listBreakpoints()
	case "mem", "m":
		d.dumpMemory(args)
	case "disasm", "u":
		d.disasm(args)
	default:
		fmt.Fprintf(d.out, "unknown command %q, type 'help'\n", cmd)
	}
	return false
}

func (d *DebugMonitor) printHelp() {
	fmt.Fprint(d.out, `commands:
  step [n]             execute n instructions (default 1)
  continue             run until a breakpoint fires
  regs                 print register state
  break addr [cond]    set a breakpoint at addr, optionally conditioned
  delete addr          remove the breakpoint at addr
  breakpoints          list active breakpoints
  mem addr len         hex-dump len bytes starting at addr
  disasm addr count    disassemble count instructions starting at addr
  quit                 leave the monitor
`)
}

func (d *DebugMonitor) step(count int) {
	for i := 0; i < count; i++ {
		pc := d.emu.PC
		_, mnemonic, decodeErr := decodeAt(d.mem, pc)
		if decodeErr != nil {
			fmt.Fprintf(d.out, "stopped at $%04X: %v\n", pc, decodeErr)
			return
		}
		if _, err := d.emu.Step(); err != nil {
			fmt.Fprintf(d.out, "stopped at $%04X: %v\n", pc, err)
			return
		}
		fmt.Fprintf(d.out, "$%04X  %s\n", pc, mnemonic)
	}
	d.printState()
}

func (d *DebugMonitor) continueUntilBreak() {
	for {
		if bp, ok := d.breakpoints[d.emu.PC]; ok {
			bp.HitCount++
			if evaluateCondition(bp.Cond, d.emu.State(), d.mem, bp.HitCount) {
				fmt.Fprintf(d.out, "breakpoint hit at $%04X\n", d.emu.PC)
				d.printState()
				return
			}
		}
		if _, err := d.emu.Step(); err != nil {
			fmt.Fprintf(d.out, "stopped: %v\n", err)
			return
		}
	}
}

func (d *DebugMonitor) addBreakpoint(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "usage: break addr [cond]")
		return
	}
	addr, ok := parseAddress(args[0])
	if !ok {
		fmt.Fprintf(d.out, "invalid address: %s\n", args[0])
		return
	}
	bp := &Breakpoint{Addr: uint16(addr)}
	if len(args) > 1 {
		cond, err := parseCondition(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Fprintf(d.out, "invalid condition: %v\n", err)
			return
		}
		bp.Cond = cond
	}
	d.breakpoints[uint16(addr)] = bp
	fmt.Fprintf(d.out, "breakpoint set at $%04X\n", addr)
}

func (d *DebugMonitor) deleteBreakpoint(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "usage: delete addr")
		return
	}
	addr, ok := parseAddress(args[0])
	if !ok {
		fmt.Fprintf(d.out, "invalid address: %s\n", args[0])
		return
	}
	delete(d.breakpoints, uint16(addr))
}

func (d *DebugMonitor) listBreakpoints() {
	if len(d.breakpoints) == 0 {
		fmt.Fprintln(d.out, "no breakpoints set")
		return
	}
	for addr, bp := range d.breakpoints {
		if bp.Cond != nil {
			fmt.Fprintf(d.out, "$%04X  %s  (hits=%d)\n", addr, formatCondition(bp.Cond), bp.HitCount)
		} else {
			fmt.Fprintf(d.out, "$%04X  (hits=%d)\n", addr, bp.HitCount)
		}
	}
}

func (d *DebugMonitor) dumpMemory(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(d.out, "usage: mem addr len")
		return
	}
	addr, ok1 := parseAddress(args[0])
	length, ok2 := parseAddress(args[1])
	if !ok1 || !ok2 {
		fmt.Fprintln(d.out, "invalid address or length")
		return
	}
	for i := uint64(0); i < length; i += 16 {
		fmt.Fprintf(d.out, "$%04X  ", uint16(addr)+uint16(i))
		for j := uint64(0); j < 16 && i+j < length; j++ {
			fmt.Fprintf(d.out, "%02X ", d.mem.MustRead(uint16(addr)+uint16(i+j)))
		}
		fmt.Fprintln(d.out)
	}
}

func (d *DebugMonitor) disasm(args []string) {
	addr := uint64(d.emu.PC)
	count := uint64(10)
	if len(args) > 0 {
		if v, ok := parseAddress(args[0]); ok {
			addr = v
		}
	}
	if len(args) > 1 {
		if v, ok := parseAddress(args[1]); ok {
			count = v
		}
	}
	lines, err := Disassemble(d.mem, uint16(addr), int(count))
	for _, line := range lines {
		fmt.Fprintf(d.out, "$%04X  %-12s %s\n", line.Addr, line.HexBytes, line.Mnemonic)
	}
	if err != nil {
		fmt.Fprintf(d.out, "stopped: %v\n", err)
	}
}

func (d *DebugMonitor) printState() {
	s := d.emu.State()
	fmt.Fprintf(d.out, "PC=$%04X SP=$%04X  A=$%02X B=$%02X C=$%02X D=$%02X E=$%02X H=$%02X L=$%02X  F=$%02X IE=%v\n",
		s.PC, s.SP, s.A, s.B, s.C, s.D, s.E, s.H, s.L, s.F, s.InterruptsEnabled)
}
