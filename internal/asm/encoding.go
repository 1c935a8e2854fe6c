package asm

// InstructionEncoding identifies which prefix/encoding scheme an instruction
// form uses (legacy, VEX, EVEX, XOP). Declared here because the concrete
// architecture packages (e.g. x86_64) define the enumerators against this
// type rather than each rolling their own.
type InstructionEncoding int

// Prefix is a single legacy prefix byte value (segment override, operand-size
// override, REP/REPNE, LOCK, REX base, ...).
type Prefix byte
