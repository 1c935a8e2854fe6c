package x86_64

import "github.com/keurnel/assembler/internal/asm"

const (
	// EncodingLegacy represents the legacy encoding of 64 instructions (no
	// VEX/EVEX/XOP prefix); this core only emits legacy encodings.
	EncodingLegacy asm.InstructionEncoding = iota
)
