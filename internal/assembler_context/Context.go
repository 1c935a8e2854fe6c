package assembler_context

import (
	"github.com/keurnel/assembler/internal/asm"
	"github.com/keurnel/assembler/internal/debugcontext"
)

// AssemblerContext carries everything a single encode run needs to share
// across its pipeline stages: the architecture implementation doing the
// encoding work, and the diagnostics sink every stage records into.
type AssemblerContext struct {
	// Architecture - the assembly architecture being used (e.g., x86_64, ...). This field allows the assembler
	// to perform architecture-specific operations, such as validating instructions, registers, addressing modes,
	// and generating machine code according to the rules of the specified architecture.
	Architecture asm.Architecture

	// Debug accumulates diagnostic entries (errors, warnings, info, trace)
	// recorded while processing the current source file.
	Debug *debugcontext.DebugContext
}

// New returns an AssemblerContext wired to architecture and a fresh
// DebugContext rooted at sourcePath.
func New(architecture asm.Architecture, sourcePath string) *AssemblerContext {
	return &AssemblerContext{
		Architecture: architecture,
		Debug:        debugcontext.NewDebugContext(sourcePath),
	}
}
