// terminal_host.go - raw-mode stdin reader for the debug monitor,
// grounded on the teacher's terminal_host.go (same term.MakeRaw/
// term.Restore, syscall.SetNonblock, goroutine-based byte reader), with
// RouteHostKey swapped for a line channel since the debug REPL reads
// whole commands rather than individual terminal keystrokes.

package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalHost puts stdin into raw mode and reads complete lines for the
// debug monitor's command prompt. Only instantiated by the `debug`
// subcommand — never in tests.
type TerminalHost struct {
	lines chan string

	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminalHost creates a host that reads stdin lines into a channel
// the debug monitor's command loop can select on.
func NewTerminalHost() *TerminalHost {
	return &TerminalHost{
		lines:  make(chan string, 16),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Lines returns the channel of complete input lines (CR translated to
// LF, trailing newline stripped).
func (h *TerminalHost) Lines() <-chan string { return h.lines }

// Start puts stdin into raw non-blocking mode and begins assembling
// lines in a goroutine. Call Stop to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)
		var line []byte

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				b := buf[0]
				if b == '\r' {
					b = '\n'
				}
				if b == 0x7F && len(line) > 0 {
					line = line[:len(line)-1]
				} else if b == '\n' {
					h.lines <- string(line)
					line = nil
				} else {
					line = append(line, b)
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop terminates the reader goroutine and restores stdin.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}

// isTerminal reports whether f is an interactive terminal, the same check
// the debug subcommand uses to decide between TerminalHost's raw-mode
// reader and the plain line-buffered fallback for piped/scripted input.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// bufferedStdinLines is used instead of TerminalHost when stdin is not a
// terminal (e.g. piped input in tests or scripted runs): plain
// line-buffered reads, no raw mode.
func bufferedStdinLines() <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
