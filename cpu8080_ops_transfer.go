// cpu8080_ops_transfer.go - data transfer family: MOV/MVI/LXI/LDA/STA/
// LHLD/SHLD/LDAX/STAX/XCHG. None of these affect flags (spec.md §4.3).

package main

func opNOP(e *Emulator) int { return 4 }

// opMOV handles the entire 0x40-0x7F MOV r,r sub-range (HLT excepted),
// registered as one generating loop over (dest,src) pairs in the
// dispatch table, the same way the teacher's initBaseOps loops
// 0x40..0x7F for LD r,r' (cpu_z80.go).
func opMOV(dest, src byte) opcodeFunc {
	return func(e *Emulator) int {
		e.writeReg(dest, e.readReg(src))
		if dest == regM || src == regM {
			return 7
		}
		return 5
	}
}

func opMVI(dest byte) opcodeFunc {
	return func(e *Emulator) int {
		v := e.fetchByte()
		e.writeReg(dest, v)
		if dest == regM {
			return 10
		}
		return 7
	}
}

func opLXI(rp byte) opcodeFunc {
	return func(e *Emulator) int {
		v := e.fetchWord()
		e.writeRegPair(rp, v)
		return 10
	}
}

func opLDA(e *Emulator) int {
	addr := e.fetchWord()
	e.A = e.mem.MustRead(addr)
	return 13
}

func opSTA(e *Emulator) int {
	addr := e.fetchWord()
	e.mem.Write(addr, e.A)
	return 13
}

func opLHLD(e *Emulator) int {
	addr := e.fetchWord()
	e.L = e.mem.MustRead(addr)
	e.H = e.mem.MustRead(addr + 1)
	return 16
}

func opSHLD(e *Emulator) int {
	addr := e.fetchWord()
	e.mem.Write(addr, e.L)
	e.mem.Write(addr+1, e.H)
	return 16
}

func opLDAXB(e *Emulator) int {
	e.A = e.mem.MustRead(e.BC())
	return 7
}

func opLDAXD(e *Emulator) int {
	e.A = e.mem.MustRead(e.DE())
	return 7
}

func opSTAXB(e *Emulator) int {
	e.mem.Write(e.BC(), e.A)
	return 7
}

func opSTAXD(e *Emulator) int {
	e.mem.Write(e.DE(), e.A)
	return 7
}

func opXCHG(e *Emulator) int {
	e.D, e.H = e.H, e.D
	e.E, e.L = e.L, e.E
	return 4
}
