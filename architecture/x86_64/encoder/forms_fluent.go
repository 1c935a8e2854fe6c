package encoder

import "github.com/keurnel/assembler/architecture/x86_64"

// Small fluent setters used when assembling Form rows by hand. They mutate
// and return the same *Form so family builders can chain them inline.

func (f *Form) legacy(prefixes ...byte) *Form {
	f.Legacy = append(f.Legacy, prefixes...)
	return f
}

func (f *Form) rexW() *Form {
	f.REXW = true
	return f
}

// digit marks f as using a fixed ModR/M opcode-extension digit rather than a
// second register in the reg field. By convention in every Form built this
// way, the r/m operand is Operands[0].
func (f *Form) digit(d byte) *Form {
	f.ModRMDigit = int(d)
	f.ModRM = true
	f.RMField = 0
	return f
}

// withOperands sets f's operand slots, and — when the caller hasn't already
// wired RMField/RegField via digit()+rmSlot patterns — leaves ModR/M wiring
// to whatever the caller configures afterwards (withImm, explicit field
// assignment). It is the common case of "no ModR/M, just fixed/imm slots".
func withOperands(f *Form, slots ...Slot) *Form {
	f.Operands = slots
	return f
}

// withImm marks the form's last operand slot as its trailing immediate,
// emitted at widthBits bits.
func (f *Form) withImm(widthBits int) *Form {
	f.ImmWidth = widthBits
	f.ImmSlot = len(f.Operands) - 1
	return f
}

// withImmAt marks operand index slot as the form's immediate, for the rare
// shapes (e.g. OUT imm8, acc) where the immediate isn't the last operand.
func (f *Form) withImmAt(widthBits int, slot int) *Form {
	f.ImmWidth = widthBits
	f.ImmSlot = slot
	return f
}

// withImm2At marks a second trailing immediate at operand index slot,
// emitted right after the first (ENTER imm16, imm8 is the only user).
func (f *Form) withImm2At(widthBits int, slot int) *Form {
	f.Imm2Width = widthBits
	f.Imm2Slot = slot
	return f
}

// Canonical fixed-register operands used by accumulator-shortcut forms.
var (
	regAL  = x86_64.AL
	regAX  = x86_64.AX
	regEAX = x86_64.EAX
	regRAX = x86_64.RAX
	regCL  = x86_64.CL
	regDX  = x86_64.DX
)
