// cpu8080_regs.go - 3-bit register-code addressing shared by MOV/ALU
// opcode sub-ranges, grounded on the teacher's readReg8/writeReg8 pair
// (cpu_z80.go) built around the same B,C,D,E,H,L,(HL),A encoding order
// the 8080 and Z80 share.

package main

// regCode indexes match the 8080's 3-bit register field: B=0 C=1 D=2 E=3
// H=4 L=5 M=6 (memory at HL) A=7.
const regM = 6

func (e *Emulator) readReg(code byte) byte {
	switch code {
	case 0:
		return e.B
	case 1:
		return e.C
	case 2:
		return e.D
	case 3:
		return e.E
	case 4:
		return e.H
	case 5:
		return e.L
	case regM:
		return e.mem.MustRead(e.HL())
	case 7:
		return e.A
	}
	panic("unreachable register code")
}

func (e *Emulator) writeReg(code byte, v byte) {
	switch code {
	case 0:
		e.B = v
	case 1:
		e.C = v
	case 2:
		e.D = v
	case 3:
		e.E = v
	case 4:
		e.H = v
	case 5:
		e.L = v
	case regM:
		e.mem.Write(e.HL(), v)
	case 7:
		e.A = v
	}
}

// regPair indexes the four register-pair encodings used by LXI/DAD/INX/DCX
// (0=BC 1=DE 2=HL 3=SP).
func (e *Emulator) readRegPair(code byte) uint16 {
	switch code {
	case 0:
		return e.BC()
	case 1:
		return e.DE()
	case 2:
		return e.HL()
	case 3:
		return e.SP
	}
	panic("unreachable register pair code")
}

func (e *Emulator) writeRegPair(code byte, v uint16) {
	switch code {
	case 0:
		e.SetBC(v)
	case 1:
		e.SetDE(v)
	case 2:
		e.SetHL(v)
	case 3:
		e.SP = v
	}
}
