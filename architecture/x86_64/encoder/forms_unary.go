package encoder

// unarySizes enumerates the operand-size axis shared by the F6/F7 and FE/FF
// groups.
var unarySizes = []int{8, 16, 32, 64}

func unaryDigitForm(mnemonic string, opcode8, opcodeWide byte, digit byte, size int) *Form {
	opcode := opcode8
	if size != 8 {
		opcode = opcodeWide
	}
	f := newForm(mnemonic, opcode)
	if size == 16 {
		f.legacy(0x66)
	}
	if size == 64 {
		f.rexW()
	}
	f.Operands = []Slot{rmSlot(size)}
	f.digit(digit)
	return f
}

func unaryForms() []*Form {
	var forms []*Form

	// TEST AL/AX/EAX/RAX, imm accumulator shortcuts — tried before the
	// generic F6/F7 /0 form below so the narrower accumulator encoding wins,
	// matching the ordering discipline the ALU families use for their own
	// accumulator shortcuts.
	forms = append(forms, withOperands(newForm("test", 0xA8), fixedReg(regAL), immSlot(8)).withImm(8))
	forms = append(forms, withOperands(newForm("test", 0xA9).legacy(0x66), fixedReg(regAX), immSlot(16)).withImm(16))
	forms = append(forms, withOperands(newForm("test", 0xA9), fixedReg(regEAX), immSlot(32)).withImm(32))
	forms = append(forms, withOperands(newForm("test", 0xA9).rexW(), fixedReg(regRAX), immSlot(32)).withImm(32))

	for _, size := range unarySizes {
		// TEST r/m, imm — digit 0 on the F6/F7 group, the one member of this
		// group that still carries a trailing immediate.
		immSize := size
		if size == 64 {
			immSize = 32
		}
		t := newForm("test", map[bool]byte{true: 0xF6, false: 0xF7}[size == 8])
		if size == 16 {
			t.legacy(0x66)
		}
		if size == 64 {
			t.rexW()
		}
		t.Operands = []Slot{rmSlot(size), immSlot(immSize)}
		t.digit(0)
		t.withImm(immSize)
		forms = append(forms, t)

		forms = append(forms, unaryDigitForm("not", 0xF6, 0xF7, 2, size))
		forms = append(forms, unaryDigitForm("neg", 0xF6, 0xF7, 3, size))
		forms = append(forms, unaryDigitForm("mul", 0xF6, 0xF7, 4, size))
		forms = append(forms, unaryDigitForm("imul", 0xF6, 0xF7, 5, size))
		forms = append(forms, unaryDigitForm("div", 0xF6, 0xF7, 6, size))
		forms = append(forms, unaryDigitForm("idiv", 0xF6, 0xF7, 7, size))

		forms = append(forms, unaryDigitForm("inc", 0xFE, 0xFF, 0, size))
		forms = append(forms, unaryDigitForm("dec", 0xFE, 0xFF, 1, size))
	}

	// TEST r/m, reg.
	forms = append(forms, rmReg("test", 0x84, 8, false))
	forms = append(forms, rmReg("test", 0x85, 16, true))
	forms = append(forms, rmReg("test", 0x85, 32, false))
	forms = append(forms, rmRegW("test", 0x85, 64))

	// Two-operand IMUL: reg *= r/m, sign-extending multiply.
	for _, size := range []int{16, 32, 64} {
		f := newForm("imul", 0x0F, 0xAF)
		if size == 16 {
			f.legacy(0x66)
		}
		if size == 64 {
			f.rexW()
		}
		f.Operands = []Slot{regSlot(size), rmSlot(size)}
		f.ModRM = true
		f.RegField = 0
		f.RMField = 1
		forms = append(forms, f)
	}

	return forms
}
