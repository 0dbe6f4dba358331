// disassembler.go - Intel 8080 disassembler shared by the `disassemble`
// CLI command and the debug monitor's instruction trace, grounded on the
// teacher's decodeZ80Instruction/decodeZ80Base pattern (debug_disasm_z80.go):
// a handful of register-name tables plus bit-pattern decoding, entirely
// free of CpuState mutation.

package main

import "fmt"

var i8080Reg8 = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var i8080RegPair = [4]string{"B", "D", "H", "SP"}
var i8080RegPairPush = [4]string{"B", "D", "H", "PSW"}
var i8080Cond = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
var i8080ALU = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}

// DisassembledLine is one decoded instruction, used by both the
// `disassemble` command's listing and the debug monitor's trace window.
type DisassembledLine struct {
	Addr     uint16
	HexBytes string
	Mnemonic string
	Size     int
}

// decodeAt decodes the instruction at pc without touching mem beyond the
// read it needs, returning its size in bytes and its mnemonic text. It
// never mutates CpuState; disassembly and execution share only the
// opcode-to-meaning tables, not any code path. An illegal or otherwise
// unrecognized opcode yields UnimplementedInstruction rather than a
// placeholder mnemonic, matching original_source/disassembler.cpp's
// decode() (which raises the equivalent error out of opcodes.at()).
func decodeAt(mem *Memory, pc uint16) (int, string, error) {
	op := mem.MustRead(pc)

	switch {
	case op == 0x00:
		return 1, "NOP", nil
	case op == 0x76:
		return 1, "HLT", nil
	case op&0xC0 == 0x40: // MOV r,r'
		dst := i8080Reg8[(op>>3)&7]
		src := i8080Reg8[op&7]
		return 1, fmt.Sprintf("MOV %s,%s", dst, src), nil
	case op&0xC7 == 0x06: // MVI r,d8
		dst := i8080Reg8[(op>>3)&7]
		return 2, fmt.Sprintf("MVI %s,$%02X", dst, mem.MustRead(pc+1)), nil
	case op&0xCF == 0x01: // LXI rp,d16
		rp := i8080RegPair[(op>>4)&3]
		return 3, fmt.Sprintf("LXI %s,$%04X", rp, word(mem, pc+1)), nil
	case op&0xC7 == 0x04: // INR r
		return 1, fmt.Sprintf("INR %s", i8080Reg8[(op>>3)&7]), nil
	case op&0xC7 == 0x05: // DCR r
		return 1, fmt.Sprintf("DCR %s", i8080Reg8[(op>>3)&7]), nil
	case op&0xCF == 0x03: // INX rp
		return 1, fmt.Sprintf("INX %s", i8080RegPair[(op>>4)&3]), nil
	case op&0xCF == 0x0B: // DCX rp
		return 1, fmt.Sprintf("DCX %s", i8080RegPair[(op>>4)&3]), nil
	case op&0xCF == 0x09: // DAD rp
		return 1, fmt.Sprintf("DAD %s", i8080RegPair[(op>>4)&3]), nil
	case op&0xC0 == 0x80: // ALU r
		return 1, fmt.Sprintf("%s %s", i8080ALU[(op>>3)&7], i8080Reg8[op&7]), nil
	case op&0xC7 == 0xC6: // ALU immediate forms are spread across C6/CE/D6/DE/E6/EE/F6/FE
		return 2, fmt.Sprintf("%sI $%02X", i8080ALU[(op>>3)&7], mem.MustRead(pc+1)), nil
	case op == 0xC3:
		return 3, fmt.Sprintf("JMP $%04X", word(mem, pc+1)), nil
	case op&0xC7 == 0xC2:
		return 3, fmt.Sprintf("J%s $%04X", i8080Cond[(op>>3)&7], word(mem, pc+1)), nil
	case op == 0xCD:
		return 3, fmt.Sprintf("CALL $%04X", word(mem, pc+1)), nil
	case op&0xC7 == 0xC4:
		return 3, fmt.Sprintf("C%s $%04X", i8080Cond[(op>>3)&7], word(mem, pc+1)), nil
	case op == 0xC9:
		return 1, "RET", nil
	case op&0xC7 == 0xC0:
		return 1, fmt.Sprintf("R%s", i8080Cond[(op>>3)&7]), nil
	case op&0xC7 == 0xC7:
		return 1, fmt.Sprintf("RST %d", (op>>3)&7), nil
	case op == 0xE9:
		return 1, "PCHL", nil
	case op == 0xF9:
		return 1, "SPHL", nil
	case op == 0xEB:
		return 1, "XCHG", nil
	case op == 0xE3:
		return 1, "XTHL", nil
	case op&0xCF == 0xC1: // POP rp
		return 1, fmt.Sprintf("POP %s", i8080RegPairPush[(op>>4)&3]), nil
	case op&0xCF == 0xC5: // PUSH rp
		return 1, fmt.Sprintf("PUSH %s", i8080RegPairPush[(op>>4)&3]), nil
	case op == 0x22:
		return 3, fmt.Sprintf("SHLD $%04X", word(mem, pc+1)), nil
	case op == 0x2A:
		return 3, fmt.Sprintf("LHLD $%04X", word(mem, pc+1)), nil
	case op == 0x32:
		return 3, fmt.Sprintf("STA $%04X", word(mem, pc+1)), nil
	case op == 0x3A:
		return 3, fmt.Sprintf("LDA $%04X", word(mem, pc+1)), nil
	case op == 0x0A:
		return 1, "LDAX B", nil
	case op == 0x1A:
		return 1, "LDAX D", nil
	case op == 0x02:
		return 1, "STAX B", nil
	case op == 0x12:
		return 1, "STAX D", nil
	case op == 0x07:
		return 1, "RLC", nil
	case op == 0x0F:
		return 1, "RRC", nil
	case op == 0x17:
		return 1, "RAL", nil
	case op == 0x1F:
		return 1, "RAR", nil
	case op == 0x27:
		return 1, "DAA", nil
	case op == 0x2F:
		return 1, "CMA", nil
	case op == 0x37:
		return 1, "STC", nil
	case op == 0x3F:
		return 1, "CMC", nil
	case op == 0xDB:
		return 2, fmt.Sprintf("IN $%02X", mem.MustRead(pc+1)), nil
	case op == 0xD3:
		return 2, fmt.Sprintf("OUT $%02X", mem.MustRead(pc+1)), nil
	case op == 0xF3:
		return 1, "DI", nil
	case op == 0xFB:
		return 1, "EI", nil
	}

	return 0, "", &UnimplementedInstruction{Addr: pc, Opcode: op}
}

func word(mem *Memory, addr uint16) uint16 {
	return uint16(mem.MustRead(addr)) | uint16(mem.MustRead(addr+1))<<8
}

// Disassemble decodes count instructions starting at addr, for the
// `disassemble` command and the debug monitor's trace window. It stops
// and returns whatever it has decoded so far, along with the error, the
// moment decodeAt hits an illegal opcode.
func Disassemble(mem *Memory, addr uint16, count int) ([]DisassembledLine, error) {
	lines := make([]DisassembledLine, 0, count)
	for i := 0; i < count; i++ {
		size, mnemonic, err := decodeAt(mem, addr)
		if err != nil {
			return lines, err
		}
		hex := ""
		for j := 0; j < size; j++ {
			hex += fmt.Sprintf("%02X ", mem.MustRead(addr+uint16(j)))
		}
		lines = append(lines, DisassembledLine{
			Addr:     addr,
			HexBytes: hex,
			Mnemonic: mnemonic,
			Size:     size,
		})
		addr += uint16(size)
	}
	return lines, nil
}
