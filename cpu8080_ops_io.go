// cpu8080_ops_io.go - IN/OUT port transfers and EI/DI interrupt control.

package main

func opIN(e *Emulator) int {
	port := e.fetchByte()
	if e.input != nil {
		e.A = e.input(port)
	} else {
		e.A = 0xFF
	}
	return 10
}

func opOUT(e *Emulator) int {
	port := e.fetchByte()
	if e.output != nil {
		e.output(port, e.A)
	}
	return 10
}

// opEI arms interrupts for the instruction after next, mirroring the
// real 8080's one-instruction enable delay.
func opEI(e *Emulator) int {
	e.eiPending = true
	return 4
}

func opDI(e *Emulator) int {
	e.InterruptsEnabled = false
	e.eiPending = false
	return 4
}
