// cpu8080_ops_stack.go - PUSH/POP for BC,DE,HL,PSW; XTHL; SPHL.

package main

func opPUSH(rp byte) opcodeFunc {
	return func(e *Emulator) int {
		e.push16(e.readRegPair(rp))
		return 11
	}
}

func opPOP(rp byte) opcodeFunc {
	return func(e *Emulator) int {
		e.writeRegPair(rp, e.pop16())
		return 10
	}
}

func opPUSHPSW(e *Emulator) int {
	e.push16(uint16(e.A)<<8 | uint16(e.F))
	return 11
}

func opPOPPSW(e *Emulator) int {
	v := e.pop16()
	e.A = byte(v >> 8)
	e.SetFlagsByte(byte(v))
	return 10
}

func opXTHL(e *Emulator) int {
	lo := e.mem.MustRead(e.SP)
	hi := e.mem.MustRead(e.SP + 1)
	e.mem.Write(e.SP, e.L)
	e.mem.Write(e.SP+1, e.H)
	e.L = lo
	e.H = hi
	return 18
}

func opSPHL(e *Emulator) int {
	e.SP = e.HL()
	return 5
}
