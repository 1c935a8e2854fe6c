package encoder

import "github.com/keurnel/assembler/architecture/x86_64"

// Mode is the addressing-mode tag an r/m recognizer assigns before emission
// refines it into concrete ModR/M mode bits.
type Mode int

const (
	// ModeDirect means the r/m field names a register directly.
	ModeDirect Mode = iota
	// ModeIndirectNoDisp means "[reg]" with no displacement.
	ModeIndirectNoDisp
	// ModeIndirectDisp32 means "[reg +/- imm32]" prior to the 8-bit narrowing
	// refinement applied at emission time.
	ModeIndirectDisp32
)

// RM is a recognized register-or-memory operand: either a bare register
// (Mode == ModeDirect) or a memory reference through Base with an optional
// displacement.
type RM struct {
	Mode   Mode
	Base   x86_64.Register
	Disp   int32
	IsReg  bool // true iff this RM came from the register alternative
	RegVal x86_64.Register
}

// EffectiveMode computes the concrete ModR/M mode bits and whatever SIB /
// displacement bytes must accompany them: a 32-bit displacement narrows to
// 8 bits when it fits in a signed byte, rsp/r12 bases force a SIB byte, and
// rbp/r13 with no displacement promotes to an explicit zero displacement.
func (rm RM) EffectiveMode() (modeBits byte, needsSIB bool, dispBytes []byte) {
	if rm.Mode == ModeDirect {
		return 0b11, false, nil
	}

	base := rm.Base.LowBits()
	needsSIB = base == 4 // rsp/r12 family: rm=4 means "SIB follows", not the base register.

	switch rm.Mode {
	case ModeIndirectNoDisp:
		if base == 5 {
			// [rbp]/[r13] with mode 00 means RIP-relative; promote to an
			// explicit one-byte zero displacement instead.
			return 0b01, needsSIB, []byte{0x00}
		}
		return 0b00, needsSIB, nil
	case ModeIndirectDisp32:
		if rm.Disp >= -128 && rm.Disp <= 127 {
			return 0b01, needsSIB, []byte{byte(int8(rm.Disp))}
		}
		return 0b10, needsSIB, leInt32(rm.Disp)
	}
	return 0b00, needsSIB, nil
}

// EncodingReg returns the register whose low 3 bits/extension bit feed the
// ModR/M rm field: the register itself in direct mode, the base register in
// indirect mode (which also fills the SIB base field when a SIB byte is
// needed).
func (rm RM) EncodingReg() x86_64.Register {
	if rm.Mode == ModeDirect {
		return rm.RegVal
	}
	return rm.Base
}

func leInt32(v int32) []byte {
	u := uint32(v)
	return []byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
}
