package encoder

import "github.com/keurnel/assembler/architecture/x86_64"

// newForm returns a Form with every "unused" index field defaulted to -1, so
// family builders below only need to set the fields their shape actually
// uses.
func newForm(mnemonic string, opcode ...byte) *Form {
	return &Form{
		Mnemonic:   mnemonic,
		Opcode:     opcode,
		ModRMDigit: -1,
		RegField:   -1,
		RMField:    -1,
		OpcodeReg:  -1,
		ImmSlot:    -1,
		Imm2Slot:   -1,
	}
}

func regSlot(size int) Slot        { return Slot{Kind: SlotReg, Size: size} }
func rmSlot(size int) Slot         { return Slot{Kind: SlotRM, Size: size} }
func immSlot(size int) Slot        { return Slot{Kind: SlotImm, Size: size} }
func opcodeRegSlot(size int) Slot  { return Slot{Kind: SlotOpcodeReg, Size: size} }
func fixedReg(r x86_64.Register) Slot { return Slot{Kind: SlotFixedReg, Fixed: r} }
func literalImm(v int64) Slot      { return Slot{Kind: SlotLiteralImm, Literal: v} }

// zeroOperand builds a fixed-byte-sequence form with no operands.
func zeroOperand(mnemonic string, opcode ...byte) *Form {
	return newForm(mnemonic, opcode...)
}

var sizeToWidthBytes = map[int]int{8: 1, 16: 2, 32: 4, 64: 8}
