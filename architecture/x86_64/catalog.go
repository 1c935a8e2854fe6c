package x86_64

import (
	"strings"

	"github.com/keurnel/assembler/architecture/x86_64/encoder"
	"github.com/keurnel/assembler/internal/asm"
)

// regMemOperand returns the register-or-memory introspection type for a
// given operand width, falling back to OperandMem for widths the fixed
// OperandRegMemN set doesn't name.
func regMemOperand(size int) asm.OperandType {
	switch size {
	case 8:
		return OperandRegMem8
	case 16:
		return OperandRegMem16
	case 32:
		return OperandRegMem32
	case 64:
		return OperandRegMem64
	default:
		return OperandMem
	}
}

func regOperand(size int) asm.OperandType {
	switch size {
	case 8:
		return OperandReg8
	case 16:
		return OperandReg16
	case 32:
		return OperandReg32
	case 64:
		return OperandReg64
	default:
		return OperandNone
	}
}

func immOperand(size int) asm.OperandType {
	switch size {
	case 8:
		return OperandImm8
	case 16:
		return OperandImm16
	case 32:
		return OperandImm32
	case 64:
		return OperandImm64
	default:
		return OperandNone
	}
}

// operandTypeFor converts one encoder.Slot into the introspection
// asm.OperandType it corresponds to.
func operandTypeFor(slot encoder.Slot) asm.OperandType {
	switch slot.Kind {
	case encoder.SlotImm, encoder.SlotLiteralImm:
		return immOperand(slot.Size)
	case encoder.SlotRM:
		return regMemOperand(slot.Size)
	case encoder.SlotReg, encoder.SlotOpcodeReg:
		return regOperand(slot.Size)
	case encoder.SlotFixedReg:
		return regOperand(int(registerBitWidth(slot.Fixed.Type)))
	default:
		return OperandNone
	}
}

func registerBitWidth(t RegisterType) int {
	switch t {
	case Register8:
		return 8
	case Register16:
		return 16
	case Register32:
		return 32
	case Register64:
		return 64
	default:
		return 0
	}
}

// buildCatalog converts the encoder's declarative Form table into the
// architecture-agnostic asm.Instruction catalog, grouping forms by their
// upper-cased mnemonic. This keeps the introspection surface (Instructions,
// IsInstruction) in lockstep with whatever the encoder actually supports,
// instead of drifting out of sync with a hand-maintained list.
func buildCatalog(forms []*encoder.Form) map[string]asm.Instruction {
	catalog := map[string]asm.Instruction{}

	for _, form := range forms {
		key := strings.ToUpper(form.Mnemonic)
		instr, exists := catalog[key]
		if !exists {
			instr = asm.Instruction{Mnemonic: key}
		}

		operands := make([]asm.OperandType, len(form.Operands))
		for i, slot := range form.Operands {
			operands[i] = operandTypeFor(slot)
		}

		encoding := EncodingLegacy
		var rexPrefix byte
		if form.REXW {
			rexPrefix = byte(PrefixREX) | 0x08
		}

		instr.Forms = append(instr.Forms, asm.InstructionForm{
			Operands:  operands,
			Opcode:    form.Opcode,
			ModRM:     form.ModRM,
			Imm:       form.ImmWidth > 0,
			Encoding:  encoding,
			REXPrefix: rexPrefix,
		})

		catalog[key] = instr
	}

	return catalog
}
