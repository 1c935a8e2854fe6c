package encoder

func dataMovementForms() []*Form {
	var forms []*Form

	// r/m, reg and reg, r/m.
	forms = append(forms, rmReg("mov", 0x88, 8, false))
	forms = append(forms, rmReg("mov", 0x89, 16, true))
	forms = append(forms, rmReg("mov", 0x89, 32, false))
	forms = append(forms, rmRegW("mov", 0x89, 64))

	forms = append(forms, regRM("mov", 0x8A, 8, false))
	forms = append(forms, regRM("mov", 0x8B, 16, true))
	forms = append(forms, regRM("mov", 0x8B, 32, false))
	forms = append(forms, regRMW("mov", 0x8B, 64))

	// r/m, imm — tried before the wide-immediate r, imm64 shortcut below so
	// the narrower encoding wins whenever the operand fits in 32 bits.
	forms = append(forms, movRMImm(0xC6, 8, false, false))
	forms = append(forms, movRMImm(0xC7, 16, true, false))
	forms = append(forms, movRMImm(0xC7, 32, false, false))
	forms = append(forms, movRMImm(0xC7, 64, false, true))

	// r, imm — opcode-embedded register, including the full 64-bit
	// immediate shortcut, reachable only once the r/m64,imm32 form above has
	// rejected an operand wider than 32 significant bits.
	forms = append(forms, movRegImm(0xB0, 8, false, false, 8))
	forms = append(forms, movRegImm(0xB8, 16, true, false, 16))
	forms = append(forms, movRegImm(0xB8, 32, false, false, 32))
	forms = append(forms, movRegImm(0xB8, 64, false, true, 64))

	forms = append(forms, movzxMovsxForms()...)

	return forms
}

func movRMImm(opcode byte, size int, prefix66, rexW bool) *Form {
	f := newForm("mov", opcode)
	if prefix66 {
		f.legacy(0x66)
	}
	if rexW {
		f.rexW()
	}
	immSize := size
	if size == 64 {
		immSize = 32
	}
	f.Operands = []Slot{rmSlot(size), immSlot(immSize)}
	f.digit(0)
	f.withImm(immSize)
	return f
}

func movRegImm(opcode byte, size int, prefix66, rexW bool, immWidth int) *Form {
	f := newForm("mov", opcode)
	if prefix66 {
		f.legacy(0x66)
	}
	if rexW {
		f.rexW()
	}
	f.Operands = []Slot{opcodeRegSlot(size), immSlot(immWidth)}
	f.OpcodeReg = 0
	f.withImm(immWidth)
	return f
}

func movzxMovsxForms() []*Form {
	type shape struct {
		destSize, srcSize int
	}
	shapes := []shape{{16, 8}, {32, 8}, {64, 8}, {32, 16}, {64, 16}}

	var forms []*Form
	for _, s := range shapes {
		op := byte(0xB6)
		if s.srcSize == 16 {
			op = 0xB7
		}
		forms = append(forms, extendForm("movzx", op, s.destSize, s.srcSize))
	}
	for _, s := range shapes {
		op := byte(0xBE)
		if s.srcSize == 16 {
			op = 0xBF
		}
		forms = append(forms, extendForm("movsx", op, s.destSize, s.srcSize))
	}

	movsxd := newForm("movsxd", 0x63)
	movsxd.rexW()
	movsxd.Operands = []Slot{regSlot(64), rmSlot(32)}
	movsxd.ModRM = true
	movsxd.RegField = 0
	movsxd.RMField = 1
	forms = append(forms, movsxd)

	return forms
}

func extendForm(mnemonic string, opcode byte, destSize, srcSize int) *Form {
	f := newForm(mnemonic, 0x0F, opcode)
	if destSize == 64 {
		f.rexW()
	}
	f.Operands = []Slot{regSlot(destSize), rmSlot(srcSize)}
	f.ModRM = true
	f.RegField = 0
	f.RMField = 1
	return f
}
