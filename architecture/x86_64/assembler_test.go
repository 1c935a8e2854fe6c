package x86_64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keurnel/assembler/architecture/x86_64"
)

func TestAssembler_IsInstruction(t *testing.T) {
	a := x86_64.AssemblerNew("")

	scenarios := []struct {
		name     string
		mnemonic string
		expected bool
	}{
		{"mov lowercase", "mov", true},
		{"MOV uppercase", "MOV", true},
		{"adc", "adc", true},
		{"bswap", "bswap", true},
		{"jmp", "jmp", true},
		{"unknown mnemonic", "frobnicate", false},
		{"empty", "", false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			assert.Equal(t, scenario.expected, a.IsInstruction(scenario.mnemonic))
		})
	}
}

func TestAssembler_IsRegister(t *testing.T) {
	a := x86_64.AssemblerNew("")

	assert.True(t, a.IsRegister("rax"))
	assert.True(t, a.IsRegister("RAX"))
	assert.True(t, a.IsRegister("r8b"))
	assert.False(t, a.IsRegister("notareg"))
}

// TestAssembler_EncodeStatement walks the literal byte scenarios: each one
// tokenizes a single statement the same way the CLI front end does (split on
// commas/whitespace, mnemonic first) and checks the resulting bytes.
func TestAssembler_EncodeStatement(t *testing.T) {
	a := x86_64.AssemblerNew("")

	scenarios := []struct {
		name   string
		tokens []string
		want   []byte
	}{
		{"aaa", []string{"aaa"}, []byte{0x37}},
		{"aad imm8", []string{"aad", "0x0A"}, []byte{0xD5, 0x0A}},
		{"adc al, imm8", []string{"adc", "al", ",", "5"}, []byte{0x14, 0x05}},
		{"adc rax, imm32 accumulator", []string{"adc", "rax", ",", "1"}, []byte{0x48, 0x15, 0x01, 0x00, 0x00, 0x00}},
		{"add eax, ecx", []string{"add", "eax", ",", "ecx"}, []byte{0x01, 0xC8}},
		{"bswap r8", []string{"bswap", "r8"}, []byte{0x49, 0x0F, 0xC8}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			result, err := a.EncodeStatement(scenario.tokens)
			require.NoError(t, err)
			assert.Equal(t, scenario.want, result.Bytes)
		})
	}
}

func TestAssembler_EncodeStatement_Unmatched(t *testing.T) {
	a := x86_64.AssemblerNew("")

	_, err := a.EncodeStatement([]string{"mov", "rax"})
	require.Error(t, err)
}

func TestAssembler_Instructions_ContainsCoreMnemonics(t *testing.T) {
	a := x86_64.AssemblerNew("")
	catalog := a.Instructions()

	for _, mnemonic := range []string{"MOV", "ADD", "SUB", "BSWAP", "JMP", "CALL", "PUSH", "POP"} {
		_, ok := catalog[mnemonic]
		assert.Truef(t, ok, "expected catalog to contain %s", mnemonic)
	}
}
