package encoder

import (
	"math/bits"
	"strconv"

	"github.com/keurnel/assembler/architecture/x86_64"
)

// registersBySize indexes the four size-specific lookup tables the register
// recognizer consults. Segment registers (fs/gs) are deliberately excluded:
// they are matched as fixed literals by the forms that need them, not through
// the general register recognizer.
var registersBySize = map[int]map[string]x86_64.Register{}

func init() {
	registersBySize[8] = map[string]x86_64.Register{}
	registersBySize[16] = map[string]x86_64.Register{}
	registersBySize[32] = map[string]x86_64.Register{}
	registersBySize[64] = map[string]x86_64.Register{}
	for name, reg := range x86_64.RegistersByName {
		switch reg.Type {
		case x86_64.Register8:
			registersBySize[8][name] = reg
		case x86_64.Register16:
			registersBySize[16][name] = reg
		case x86_64.Register32:
			registersBySize[32][name] = reg
		case x86_64.Register64:
			registersBySize[64][name] = reg
		}
	}
}

// significantBits returns the number of bits needed to hold the unsigned
// magnitude v, i.e. bits.Len64. Zero requires zero bits.
func significantBits(v uint64) int {
	return bits.Len64(v)
}

// RecognizeImmediate reads an optional leading "-" and a magnitude token,
// accepting the value iff its significant-bit count is <= width. width is one
// of 8, 16, 32, 64. Returns ok=false without consuming anything on failure.
func RecognizeImmediate(cur *Cursor, width int) (int64, bool) {
	attempt := cur.Clone()

	negative := false
	tok, ok := attempt.Peek()
	if !ok {
		return 0, false
	}
	if tok == "-" {
		negative = true
		attempt.Next()
		tok, ok = attempt.Peek()
		if !ok {
			return 0, false
		}
	}

	magTok, ok := attempt.Next()
	if !ok {
		return 0, false
	}
	mag, err := strconv.ParseUint(magTok, 0, 64)
	if err != nil {
		return 0, false
	}
	_ = tok

	if significantBits(mag) > width {
		return 0, false
	}

	value := int64(mag)
	if negative {
		value = -value
	}

	cur.Adopt(attempt)
	return value, true
}

// RecognizeRegister reads one token and accepts it iff it names a register
// of the requested size, or (size == 0) any register at all — the
// addressing-base case.
func RecognizeRegister(cur *Cursor, size int) (x86_64.Register, bool) {
	attempt := cur.Clone()
	tok, ok := attempt.Next()
	if !ok {
		return x86_64.Register{}, false
	}

	if size == 0 {
		for _, table := range registersBySize {
			if reg, found := table[tok]; found {
				cur.Adopt(attempt)
				return reg, true
			}
		}
		return x86_64.Register{}, false
	}

	table, known := registersBySize[size]
	if !known {
		return x86_64.Register{}, false
	}
	reg, found := table[tok]
	if !found {
		return x86_64.Register{}, false
	}
	cur.Adopt(attempt)
	return reg, true
}

var sizeKeyword = map[int]string{8: "byte", 16: "word", 32: "dword", 64: "qword"}

// RecognizeRM first tries the register recognizer at the requested size; on
// failure it expects "SIZE ptr [ BASE" followed by either "]" or a signed
// 32-bit displacement and "]".
func RecognizeRM(cur *Cursor, size int) (RM, bool) {
	regAttempt := cur.Clone()
	if reg, ok := RecognizeRegister(regAttempt, size); ok {
		cur.Adopt(regAttempt)
		return RM{Mode: ModeDirect, IsReg: true, RegVal: reg}, true
	}

	attempt := cur.Clone()

	keyword, wantKeyword := sizeKeyword[size]
	if wantKeyword {
		tok, ok := attempt.Next()
		if !ok || tok != keyword {
			return RM{}, false
		}
	}
	if !attempt.Expect("ptr") {
		return RM{}, false
	}
	if !attempt.Expect("[") {
		return RM{}, false
	}
	base, ok := RecognizeRegister(attempt, 0)
	if !ok {
		return RM{}, false
	}

	if attempt.Expect("]") {
		cur.Adopt(attempt)
		return RM{Mode: ModeIndirectNoDisp, Base: base}, true
	}

	sign, ok := attempt.Next()
	if !ok || (sign != "+" && sign != "-") {
		return RM{}, false
	}
	disp, ok := RecognizeImmediate(attempt, 32)
	if !ok {
		return RM{}, false
	}
	if sign == "-" {
		disp = -disp
	}
	if !attempt.Expect("]") {
		return RM{}, false
	}

	cur.Adopt(attempt)
	return RM{Mode: ModeIndirectDisp32, Base: base, Disp: int32(disp)}, true
}
