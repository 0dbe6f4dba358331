// cpu8080_ops_logic.go - logic family: ANA/XRA/ORA, CMA/CMC/STC.

package main

type logicKind int

const (
	logicAnd logicKind = iota
	logicXor
	logicOr
)

func opLogicReg(kind logicKind, src byte) opcodeFunc {
	return func(e *Emulator) int {
		applyLogic(e, kind, e.readReg(src))
		if src == regM {
			return 7
		}
		return 4
	}
}

func opLogicImm(kind logicKind) opcodeFunc {
	return func(e *Emulator) int {
		v := e.fetchByte()
		applyLogic(e, kind, v)
		return 7
	}
}

func applyLogic(e *Emulator, kind logicKind, v byte) {
	switch kind {
	case logicAnd:
		e.A = e.andFlags(e.A, v)
	case logicXor:
		e.A = e.orXorFlags(e.A ^ v)
	case logicOr:
		e.A = e.orXorFlags(e.A | v)
	}
}

func opCMA(e *Emulator) int {
	e.A = ^e.A
	return 4
}

func opCMC(e *Emulator) int {
	e.setFlag(flagCY, !e.flag(flagCY))
	return 4
}

func opSTC(e *Emulator) int {
	e.setFlag(flagCY, true)
	return 4
}
