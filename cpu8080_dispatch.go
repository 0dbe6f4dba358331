// cpu8080_dispatch.go - assembles the 256-entry opcode dispatch table once
// at construction time, the same way the teacher's initBaseOps builds
// cpu_z80.go's baseOps [256]func(*CPU_Z80) table: every entry is filled
// explicitly, including the twelve illegal 8080 opcodes, which get a
// trap closure rather than being left as a bare nil map miss.

package main

// opTrap fills a table slot for one of the twelve illegal 8080 opcodes.
// Step consults illegalOpcodes directly and never actually calls through
// to this handler in practice, since an opcodeFunc has no error return to
// report the failure with; the point of installing it here rather than
// leaving the slot nil is that the table itself has no gaps, so a bug in
// the generating loops below shows up as a wrong handler, not a silent
// nil that happens to behave like one.
func opTrap(opcode byte) opcodeFunc {
	return func(e *Emulator) int {
		panic(&UnimplementedInstruction{Addr: e.PC - 1, Opcode: opcode})
	}
}

// newOpcodeTable builds the full 256-entry dispatch table.
func newOpcodeTable() [256]opcodeFunc {
	var ops [256]opcodeFunc

	for opcode := range ops {
		ops[opcode] = opTrap(byte(opcode))
	}

	ops[0x00] = opNOP
	ops[0x76] = opHLT

	// MOV r,r' over 0x40-0x7F, HLT already claimed at 0x76.
	regOrder := [8]byte{0, 1, 2, 3, 4, 5, regM, 7} // B C D E H L M A
	for destIdx, dest := range regOrder {
		for srcIdx, src := range regOrder {
			opcode := 0x40 + destIdx*8 + srcIdx
			if byte(opcode) == 0x76 {
				continue
			}
			ops[opcode] = opMOV(dest, src)
		}
	}

	// MVI r,d8: one per register in the dest column, column stride 8.
	for idx, dest := range regOrder {
		ops[0x06+idx*8] = opMVI(dest)
	}

	// LXI rp,d16 / INX / DCX / DAD, one per register pair (BC,DE,HL,SP).
	for rp := byte(0); rp < 4; rp++ {
		ops[0x01+rp*16] = opLXI(rp)
		ops[0x03+rp*16] = opINX(rp)
		ops[0x0B+rp*16] = opDCX(rp)
		ops[0x09+rp*16] = opDAD(rp)
	}

	// INR/DCR r, one per register (regOrder order maps onto 0x04,0x0C,...).
	for idx, dest := range regOrder {
		ops[0x04+idx*8] = opINR(dest)
		ops[0x05+idx*8] = opDCR(dest)
	}

	ops[0x07] = opRLC
	ops[0x0F] = opRRC
	ops[0x17] = opRAL
	ops[0x1F] = opRAR
	ops[0x27] = opDAA
	ops[0x2F] = opCMA
	ops[0x37] = opSTC
	ops[0x3F] = opCMC

	ops[0x22] = opSHLD
	ops[0x2A] = opLHLD
	ops[0x32] = opSTA
	ops[0x3A] = opLDA
	ops[0x0A] = opLDAXB
	ops[0x1A] = opLDAXD
	ops[0x02] = opSTAXB
	ops[0x12] = opSTAXD
	ops[0xEB] = opXCHG

	// ALU r / ALU M, 0x80-0xBF: ADD ADC SUB SBB ANA XRA ORA CMP, each an
	// 8-wide row over regOrder.
	aluKinds := [4]aluKind{aluAdd, aluAdc, aluSub, aluSbb}
	for row, kind := range aluKinds {
		for idx, src := range regOrder {
			ops[0x80+row*8+idx] = opALUReg(kind, src)
		}
	}
	logicKinds := [3]logicKind{logicAnd, logicXor, logicOr}
	for row, kind := range logicKinds {
		for idx, src := range regOrder {
			ops[0xA0+row*8+idx] = opLogicReg(kind, src)
		}
	}
	for idx, src := range regOrder {
		ops[0xB8+idx] = opCMPReg(src)
	}

	ops[0xC6] = opALUImm(aluAdd)
	ops[0xCE] = opALUImm(aluAdc)
	ops[0xD6] = opALUImm(aluSub)
	ops[0xDE] = opALUImm(aluSbb)
	ops[0xE6] = opLogicImm(logicAnd)
	ops[0xEE] = opLogicImm(logicXor)
	ops[0xF6] = opLogicImm(logicOr)
	ops[0xFE] = opCPI

	ops[0xC3] = opJMP
	for cond := byte(0); cond < 8; cond++ {
		ops[0xC2+cond*8] = opJcond(cond)
	}
	ops[0xCD] = opCALL
	for cond := byte(0); cond < 8; cond++ {
		ops[0xC4+cond*8] = opCcond(cond)
	}
	ops[0xC9] = opRET
	for cond := byte(0); cond < 8; cond++ {
		ops[0xC0+cond*8] = opRcond(cond)
	}
	for n := byte(0); n < 8; n++ {
		ops[0xC7+n*8] = opRST(n)
	}
	ops[0xE9] = opPCHL

	ops[0xC1] = opPOP(0)
	ops[0xD1] = opPOP(1)
	ops[0xE1] = opPOP(2)
	ops[0xF1] = opPOPPSW
	ops[0xC5] = opPUSH(0)
	ops[0xD5] = opPUSH(1)
	ops[0xE5] = opPUSH(2)
	ops[0xF5] = opPUSHPSW
	ops[0xE3] = opXTHL
	ops[0xF9] = opSPHL

	ops[0xDB] = opIN
	ops[0xD3] = opOUT
	ops[0xF3] = opDI
	ops[0xFB] = opEI

	return ops
}
