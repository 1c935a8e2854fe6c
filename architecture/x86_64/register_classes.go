package x86_64

// legacyHighByte is the set of 8-bit registers that address the high byte of
// one of the original four GPRs. They alias the same encodings (4..7) as the
// REX-required low-byte registers below, and cannot appear in any form that
// also emits a REX prefix.
var legacyHighByte = map[string]bool{
	"ah": true, "ch": true, "dh": true, "bh": true,
}

// rexRequired8 is the set of 8-bit registers that exist only under REX: the
// four new low-byte registers sharing encodings with the legacy high-byte
// set, plus r8b..r15b.
var rexRequired8 = map[string]bool{
	"spl": true, "bpl": true, "sil": true, "dil": true,
	"r8b": true, "r9b": true, "r10b": true, "r11b": true,
	"r12b": true, "r13b": true, "r14b": true, "r15b": true,
}

// RequiresREX reports whether this register can only be named in an
// instruction that carries a REX prefix, independent of REX.W.
func (r Register) RequiresREX() bool {
	if r.Type == Register8 {
		return rexRequired8[r.Name]
	}
	return r.Encoding >= 8
}

// IsLegacyHighByte reports whether this register is one of ah/ch/dh/bh,
// which cannot be named in any form that carries a REX prefix.
func (r Register) IsLegacyHighByte() bool {
	return legacyHighByte[r.Name]
}

// ExtensionBit returns the high bit (bit 3) of the register's encoding, the
// value folded into REX.R/REX.X/REX.B for registers with index >= 8.
func (r Register) ExtensionBit() byte {
	return (r.Encoding >> 3) & 1
}

// LowBits returns the low 3 bits of the register's encoding, the value
// placed directly into a ModR/M or SIB field or added to an opcode byte.
func (r Register) LowBits() byte {
	return r.Encoding & 7
}
