package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, tokens []string) []byte {
	t.Helper()
	d := NewDispatcher()
	result, err := d.Encode(tokens)
	require.NoError(t, err, "tokens: %v", tokens)
	return result.Bytes
}

func TestDispatcher_ZeroOperandForms(t *testing.T) {
	assert.Equal(t, []byte{0xF4}, encode(t, []string{"hlt"}))
	assert.Equal(t, []byte{0x90}, encode(t, []string{"nop"}))
	assert.Equal(t, []byte{0xC3}, encode(t, []string{"ret"}))
	assert.Equal(t, []byte{0x48, 0x99}, encode(t, []string{"cqo"}))
}

func TestDispatcher_AluAccumulatorShortcut(t *testing.T) {
	assert.Equal(t, []byte{0x14, 0x05}, encode(t, []string{"adc", "al", ",", "5"}))
	assert.Equal(t, []byte{0x48, 0x15, 0x01, 0x00, 0x00, 0x00}, encode(t, []string{"adc", "rax", ",", "1"}))
}

func TestDispatcher_AluRegToRM(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0xC8}, encode(t, []string{"add", "eax", ",", "ecx"}))
}

// The 0x81 (wide immediate) form must be tried, and must win, before the
// 0x83 (sign-extended imm8) form for any value that only 0x83 could also
// encode — otherwise register forms would never reach their full-width
// immediate path. For a value that fits in an imm8, the dispatcher order
// determines which opcode is actually emitted; the imm8 shortcut (0x83) is
// registered after the wide form, so an explicit 32-bit-only operand (e.g.
// one requiring more than 8 significant bits) proves the wide path exists.
func TestDispatcher_AluWideImmediateBeyondImm8(t *testing.T) {
	bytes := encode(t, []string{"add", "ecx", ",", "1000"})
	require.Len(t, bytes, 6)
	assert.Equal(t, byte(0x81), bytes[0])
	assert.Equal(t, byte(0xC1), bytes[1]) // ModR/M: mode=11, reg(digit)=000, rm=001 (ecx)
}

func TestDispatcher_MovRegMemImm32BeforeMovImm64(t *testing.T) {
	// mov r/m64, imm32 (C7 /0) must be tried before mov r64, imm64 (B8+reg)
	// so a register destination with an immediate that fits in 32 bits still
	// prefers the shorter C7 encoding.
	bytes := encode(t, []string{"mov", "rax", ",", "1"})
	require.Len(t, bytes, 7)
	assert.Equal(t, byte(0x48), bytes[0]) // REX.W
	assert.Equal(t, byte(0xC7), bytes[1])
}

func TestDispatcher_BswapDynamicREX(t *testing.T) {
	assert.Equal(t, []byte{0x49, 0x0F, 0xC8}, encode(t, []string{"bswap", "r8"}))
}

func TestDispatcher_AadWithImmediate(t *testing.T) {
	assert.Equal(t, []byte{0xD5, 0x0A}, encode(t, []string{"aad", "0x0A"}))
}

func TestDispatcher_JmpIndirectMemory(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0x20}, encode(t, []string{"jmp", "qword", "ptr", "[", "rax", "]"}))
}

func TestDispatcher_RipRelativeZeroDisplacementPromotion(t *testing.T) {
	// [rbp] with no displacement promotes to an explicit one-byte zero
	// displacement rather than colliding with the RIP-relative mode-00 case.
	bytes := encode(t, []string{"mov", "eax", ",", "dword", "ptr", "[", "rbp", "]"})
	require.Len(t, bytes, 3)
	assert.Equal(t, byte(0x8B), bytes[0])
	assert.Equal(t, byte(0x45), bytes[1]) // mode=01, reg=eax(000) -> 0x45, rm=101 (rbp)
	assert.Equal(t, byte(0x00), bytes[2])
}

func TestDispatcher_SIBRequiredForRspBase(t *testing.T) {
	bytes := encode(t, []string{"mov", "eax", ",", "dword", "ptr", "[", "rsp", "]"})
	require.Len(t, bytes, 3)
	assert.Equal(t, byte(0x8B), bytes[0])
	assert.Equal(t, byte(0x04), bytes[1]) // mode=00, reg=000, rm=100 (SIB follows)
	assert.Equal(t, byte(0x24), bytes[2]) // SIB: scale=00, index=100 (none), base=100 (rsp)
}

func TestDispatcher_DisplacementNarrowsTo8Bits(t *testing.T) {
	bytes := encode(t, []string{"mov", "eax", ",", "dword", "ptr", "[", "rax", "+", "16", "]"})
	require.Len(t, bytes, 3)
	assert.Equal(t, byte(0x40), bytes[1]&0xC0) // mode=01
	assert.Equal(t, byte(0x10), bytes[2])
}

func TestDispatcher_DisplacementStaysAt32BitsWhenOutOfByteRange(t *testing.T) {
	bytes := encode(t, []string{"mov", "eax", ",", "dword", "ptr", "[", "rax", "+", "1000", "]"})
	require.Len(t, bytes, 6)
	assert.Equal(t, byte(0x80), bytes[1]&0xC0) // mode=10
}

func TestDispatcher_Unmatched(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Encode([]string{"mov", "rax"})
	require.Error(t, err)

	_, err = d.Encode([]string{"frobnicate"})
	require.Error(t, err)

	_, err = d.Encode([]string{})
	require.Error(t, err)
}

func TestDispatcher_FormsExposesFullCatalog(t *testing.T) {
	d := NewDispatcher()
	forms := d.Forms()
	assert.NotEmpty(t, forms)

	mnemonics := map[string]bool{}
	for _, f := range forms {
		mnemonics[f.Mnemonic] = true
	}
	for _, want := range []string{"add", "mov", "bswap", "jmp", "call", "push", "pop", "aad", "crc32"} {
		assert.True(t, mnemonics[want], "expected %q to be present in the catalog", want)
	}
}
