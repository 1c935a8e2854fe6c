package encoder

import "github.com/keurnel/assembler/architecture/x86_64"

// SlotKind identifies how one operand slot of a Form is recognized.
type SlotKind int

const (
	// SlotImm recognizes an immediate of Size bits.
	SlotImm SlotKind = iota
	// SlotReg recognizes a register of exactly Size bits.
	SlotReg
	// SlotRM recognizes a register-or-memory operand of Size bits.
	SlotRM
	// SlotFixedReg requires the next token to name exactly Fixed.
	SlotFixedReg
	// SlotLiteralImm requires the next token to parse to exactly Literal.
	SlotLiteralImm
	// SlotOpcodeReg recognizes a register of Size bits whose index is folded
	// into the trailing opcode byte (and REX.B) rather than into a ModR/M
	// byte.
	SlotOpcodeReg
)

// Slot is one operand position in a Form's fixed shape.
type Slot struct {
	Kind    SlotKind
	Size    int
	Fixed   x86_64.Register
	Literal int64
}

// Form is one declarative row of the instruction catalog: a (mnemonic,
// operand-shape) combination together with everything the generic emitter
// needs to turn recognized operands into bytes.
type Form struct {
	Mnemonic string
	Operands []Slot

	Legacy []byte // legacy prefix bytes (0x66, 0xF2, 0xF3, ...) emitted unconditionally
	REXW   bool
	Opcode []byte

	ModRM      bool
	ModRMDigit int // fixed opcode-extension digit for the reg field; -1 if RegField supplies it instead
	RegField   int // index into Operands supplying the ModR/M reg field register; -1 if ModRMDigit is used
	RMField    int // index into Operands supplying the ModR/M rm field (register or memory); -1 if ModRM is false
	OpcodeReg  int // index into Operands whose register folds into the last opcode byte/REX.B; -1 if unused

	ImmWidth int // width in bits of a trailing immediate; 0 if none
	ImmSlot  int // index into Operands supplying that immediate's value; -1 if ImmWidth == 0 (a SlotLiteralImm operand is matched but never emitted)

	// Imm2Width/Imm2Slot describe a second trailing immediate, emitted right
	// after the first. Only ENTER needs this; every other form leaves
	// Imm2Width at 0.
	Imm2Width int
	Imm2Slot  int
}

// recognized holds, per slot index, whatever RecognizeX produced for that
// slot during a single match attempt.
type recognized struct {
	regs map[int]x86_64.Register
	rms  map[int]RM
	imms map[int]int64
}

// match attempts to recognize f's fixed shape against tokens, starting right
// after the mnemonic has already been confirmed by the caller. Returns the
// recognized operands and true on success.
func (f *Form) match(cur *Cursor) (recognized, bool) {
	rec := recognized{regs: map[int]x86_64.Register{}, rms: map[int]RM{}, imms: map[int]int64{}}

	for i, slot := range f.Operands {
		if i > 0 {
			if !cur.Expect(",") {
				return rec, false
			}
		}
		switch slot.Kind {
		case SlotImm:
			v, ok := RecognizeImmediate(cur, slot.Size)
			if !ok {
				return rec, false
			}
			rec.imms[i] = v
		case SlotReg, SlotOpcodeReg:
			reg, ok := RecognizeRegister(cur, slot.Size)
			if !ok {
				return rec, false
			}
			rec.regs[i] = reg
		case SlotRM:
			rm, ok := RecognizeRM(cur, slot.Size)
			if !ok {
				return rec, false
			}
			rec.rms[i] = rm
		case SlotFixedReg:
			tok, ok := cur.Next()
			if !ok || tok != slot.Fixed.Name {
				return rec, false
			}
		case SlotLiteralImm:
			v, ok := RecognizeImmediate(cur, 64)
			if !ok || v != slot.Literal {
				return rec, false
			}
		}
	}

	if !cur.Done() {
		return rec, false
	}
	if !f.legacyHighByteCompatible(rec) {
		return rec, false
	}
	return rec, true
}

// build emits the byte sequence for a successful match of f against rec.
func (f *Form) build(rec recognized) *Builder {
	b := NewBuilder(f.Mnemonic)

	if len(f.Legacy) > 0 {
		b.AppendBytes(f.Legacy...)
	}

	needsREX, rBit, bBit := f.rexRequirement(rec)
	if needsREX {
		b.AppendREX(f.REXW, rBit, bBit)
	}

	b.AppendBytes(f.Opcode[:len(f.Opcode)-1]...)
	lastOpcode := f.Opcode[len(f.Opcode)-1]

	if f.OpcodeReg >= 0 {
		reg := rec.regs[f.OpcodeReg]
		b.AppendByte(lastOpcode + reg.LowBits())
	} else {
		b.AppendByte(lastOpcode)
	}

	if f.ModRM {
		rm := f.resolveRM(rec)
		modeBits, needsSIB, dispBytes := rm.EffectiveMode()

		regField := byte(f.ModRMDigit)
		if f.RegField >= 0 {
			regField = rec.regs[f.RegField].LowBits()
		}

		rmLow := rm.EncodingReg().LowBits()
		b.AppendModRM(modeBits, rmLow, regField)
		if needsSIB {
			b.AppendSIB(rm.EncodingReg().LowBits())
		}
		if len(dispBytes) > 0 {
			b.AppendBytes(dispBytes...)
		}
	}

	if f.ImmWidth > 0 {
		v := rec.imms[f.ImmSlot]
		b.AppendInt(v, f.ImmWidth/8)
	}
	if f.Imm2Width > 0 {
		v := rec.imms[f.Imm2Slot]
		b.AppendInt(v, f.Imm2Width/8)
	}

	return b
}

// resolveRM returns the RM operand feeding the rm field, whether it came
// from a SlotRM or a SlotReg/SlotFixedReg treated as direct-register.
func (f *Form) resolveRM(rec recognized) RM {
	if rm, ok := rec.rms[f.RMField]; ok {
		return rm
	}
	if reg, ok := rec.regs[f.RMField]; ok {
		return RM{Mode: ModeDirect, IsReg: true, RegVal: reg}
	}
	slot := f.Operands[f.RMField]
	return RM{Mode: ModeDirect, IsReg: true, RegVal: slot.Fixed}
}

// legacyHighByteCompatible rejects a match that would pair a legacy
// high-byte register (ah/ch/dh/bh) with a REX prefix: ah/ch/dh/bh share
// encodings 4..7 with spl/bpl/sil/dil and can only be named in a REX-free
// encoding.
func (f *Form) legacyHighByteCompatible(rec recognized) bool {
	usesHighByte := false
	for _, reg := range rec.regs {
		if reg.IsLegacyHighByte() {
			usesHighByte = true
		}
	}
	for _, rm := range rec.rms {
		if rm.IsReg && rm.RegVal.IsLegacyHighByte() {
			usesHighByte = true
		}
	}
	if !usesHighByte {
		return true
	}
	needsREX, _, _ := f.rexRequirement(rec)
	return !needsREX
}

// rexRequirement decides whether a REX prefix must be emitted and what its
// R/B extension bits are. REX is forced by REXW, by any participating
// register whose index is >= 8, or by any 8-bit register drawn from the
// REX-required set, regardless of what the form statically declares.
func (f *Form) rexRequirement(rec recognized) (need bool, rBit, bBit byte) {
	need = f.REXW

	consider := func(reg x86_64.Register, isRM bool) {
		if reg.RequiresREX() {
			need = true
		}
		if isRM {
			bBit = reg.ExtensionBit()
		} else {
			rBit = reg.ExtensionBit()
		}
	}

	if f.RegField >= 0 {
		consider(rec.regs[f.RegField], false)
	}
	if f.RMField >= 0 {
		rm := f.resolveRM(rec)
		consider(rm.EncodingReg(), true)
	}
	if f.OpcodeReg >= 0 {
		consider(rec.regs[f.OpcodeReg], true)
	}

	return need, rBit, bBit
}
