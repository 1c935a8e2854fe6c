package x86_64

import "github.com/keurnel/assembler/internal/asm"

const (
	// PrefixREX is the REX prefix base (REX.W sets bit 3: 0x48).
	PrefixREX asm.Prefix = 0x40
)
