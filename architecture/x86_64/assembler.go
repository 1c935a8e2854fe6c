package x86_64

import (
	"strings"

	"github.com/keurnel/assembler/architecture/x86_64/encoder"
	"github.com/keurnel/assembler/internal/asm"
)

// Assembler implements asm.Architecture for x86-64, backed by the
// declarative encoding core in the encoder package.
type Assembler struct {
	rawSource  string
	dispatcher *encoder.Dispatcher
	catalog    map[string]asm.Instruction
}

// AssemblerNew returns a new x86-64 assembler over rawSource.
func AssemblerNew(rawSource string) *Assembler {
	dispatcher := encoder.NewDispatcher()
	return &Assembler{
		rawSource:  rawSource,
		dispatcher: dispatcher,
		catalog:    buildCatalog(dispatcher.Forms()),
	}
}

// New is an alias of AssemblerNew kept for callers that expect the shorter
// constructor name used elsewhere in the architecture package family.
func New(rawSource string) *Assembler {
	return AssemblerNew(rawSource)
}

// ArchitectureName returns the name of the architecture.
func (a *Assembler) ArchitectureName() string {
	return "x86_64"
}

// Directives returns the directives this architecture recognizes. This core
// encodes single instruction statements only; it does not interpret
// assembler directives (.section, .global, and the like), so the set is
// empty.
func (a *Assembler) Directives() []string {
	return []string{}
}

// IsDirective reports whether line is a recognized directive. Always false:
// see Directives.
func (a *Assembler) IsDirective(line string) bool {
	return false
}

// Instructions returns the supported instruction catalog, keyed by
// upper-cased mnemonic.
func (a *Assembler) Instructions() map[string]asm.Instruction {
	return a.catalog
}

// IsInstruction reports whether mnemonic names a supported instruction,
// compared case-insensitively.
func (a *Assembler) IsInstruction(line string) bool {
	mnemonic := strings.ToUpper(strings.TrimSpace(line))
	_, ok := a.catalog[mnemonic]
	return ok
}

// RegisterSet returns every register name this architecture recognizes.
func (a *Assembler) RegisterSet() []string {
	names := make([]string, 0, len(RegistersByName))
	for name := range RegistersByName {
		names = append(names, name)
	}
	return names
}

// IsRegister reports whether name (case-insensitive) is a recognized
// register.
func (a *Assembler) IsRegister(name string) bool {
	_, ok := RegistersByName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// OperandTypes returns the supported operand types for the architecture.
func (a *Assembler) OperandTypes() []asm.OperandType {
	return []asm.OperandType{
		OperandNone,
		OperandReg8,
		OperandReg16,
		OperandReg32,
		OperandReg64,
		OperandImm8,
		OperandImm16,
		OperandImm32,
		OperandImm64,
		OperandMem,
		OperandMem8,
		OperandMem16,
		OperandMem32,
		OperandMem64,
		OperandRel8,
		OperandRel32,
		OperandRegMem8,
		OperandRegMem16,
		OperandRegMem32,
		OperandRegMem64,
	}
}

// OperandCounts returns the valid operand counts for the architecture.
func (a *Assembler) OperandCounts() []int {
	return []int{OperandCountOne, OperandCountTwo, OperandCountThree}
}

// IsValidOperandCount reports whether count is a valid operand count.
func (a *Assembler) IsValidOperandCount(count int) bool {
	return count >= OperandCountOne && count <= OperandCountThree
}

// SourceOperandSupportsDestination reports whether sourceType can be paired
// with destType in an instruction operand list. The encoder's Form table
// enforces real per-form operand compatibility at encode time; this
// introspection check only rules out combinations that can never be valid
// (an immediate can never serve as a destination).
func (a *Assembler) SourceOperandSupportsDestination(sourceType, destType asm.OperandType) bool {
	return destType.Type != "immediate"
}

// Is8BitInstruction reports whether instr has any 8-bit operand form.
func (a *Assembler) Is8BitInstruction(instr asm.Instruction) bool {
	for _, form := range instr.Forms {
		for _, operand := range form.Operands {
			if operand.Size == 8 {
				return true
			}
		}
	}
	return false
}

// RawSource returns the raw assembly source code.
func (a *Assembler) RawSource() string {
	return a.rawSource
}

// EncodeStatement encodes one tokenized instruction statement (mnemonic
// followed by its operand tokens) into machine code bytes.
func (a *Assembler) EncodeStatement(tokens []string) (*encoder.Result, error) {
	return a.dispatcher.Encode(tokens)
}
