package encoder

// aluFamily describes one of the eight classic ALU opcode groups that share
// the 0x00/0x08/0x10/.../0x38 opcode-row layout and a single ModR/M
// opcode-extension digit (digit = base >> 3).
type aluFamily struct {
	Mnemonic string
	Base     byte
}

var aluFamilies = []aluFamily{
	{"add", 0x00},
	{"or", 0x08},
	{"adc", 0x10},
	{"sbb", 0x18},
	{"and", 0x20},
	{"sub", 0x28},
	{"xor", 0x30},
	{"cmp", 0x38},
}

func aluForms() []*Form {
	var forms []*Form

	for _, fam := range aluFamilies {
		digit := fam.Base >> 3

		// Accumulator shortcuts, tried before any generic r/m form.
		forms = append(forms, withOperands(newForm(fam.Mnemonic, fam.Base+0x04), fixedReg(regAL), immSlot(8)).withImm(8))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, fam.Base+0x05).legacy(0x66), fixedReg(regAX), immSlot(16)).withImm(16))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, fam.Base+0x05), fixedReg(regEAX), immSlot(32)).withImm(32))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, fam.Base+0x05).rexW(), fixedReg(regRAX), immSlot(32)).withImm(32))

		// r/m, imm (wide-immediate opcode 0x81 family), tried before the
		// sign-extended imm8 shortcut (0x83) for the same size.
		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x80).digit(digit), rmSlot(8), immSlot(8)).withImm(8))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x81).legacy(0x66).digit(digit), rmSlot(16), immSlot(16)).withImm(16))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x81).digit(digit), rmSlot(32), immSlot(32)).withImm(32))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x81).rexW().digit(digit), rmSlot(64), immSlot(32)).withImm(32))

		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x83).legacy(0x66).digit(digit), rmSlot(16), immSlot(8)).withImm(8))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x83).digit(digit), rmSlot(32), immSlot(8)).withImm(8))
		forms = append(forms, withOperands(newForm(fam.Mnemonic, 0x83).rexW().digit(digit), rmSlot(64), immSlot(8)).withImm(8))

		// r/m, reg and reg, r/m.
		forms = append(forms, rmReg(fam.Mnemonic, fam.Base+0x00, 8, false))
		forms = append(forms, rmReg(fam.Mnemonic, fam.Base+0x01, 16, true))
		forms = append(forms, rmReg(fam.Mnemonic, fam.Base+0x01, 32, false))
		forms = append(forms, rmRegW(fam.Mnemonic, fam.Base+0x01, 64))

		forms = append(forms, regRM(fam.Mnemonic, fam.Base+0x02, 8, false))
		forms = append(forms, regRM(fam.Mnemonic, fam.Base+0x03, 16, true))
		forms = append(forms, regRM(fam.Mnemonic, fam.Base+0x03, 32, false))
		forms = append(forms, regRMW(fam.Mnemonic, fam.Base+0x03, 64))
	}

	return forms
}

// rmReg builds the "mnemonic r/m, reg" shape: ModR/M reg field carries the
// second operand, rm field carries the first.
func rmReg(mnemonic string, opcode byte, size int, prefix66 bool) *Form {
	f := newForm(mnemonic, opcode)
	if prefix66 {
		f.legacy(0x66)
	}
	f.Operands = []Slot{rmSlot(size), regSlot(size)}
	f.ModRM = true
	f.RMField = 0
	f.RegField = 1
	return f
}

func rmRegW(mnemonic string, opcode byte, size int) *Form {
	f := rmReg(mnemonic, opcode, size, false)
	f.rexW()
	return f
}

// regRM builds the "mnemonic reg, r/m" shape: the mirror of rmReg.
func regRM(mnemonic string, opcode byte, size int, prefix66 bool) *Form {
	f := newForm(mnemonic, opcode)
	if prefix66 {
		f.legacy(0x66)
	}
	f.Operands = []Slot{regSlot(size), rmSlot(size)}
	f.ModRM = true
	f.RegField = 0
	f.RMField = 1
	return f
}

func regRMW(mnemonic string, opcode byte, size int) *Form {
	f := regRM(mnemonic, opcode, size, false)
	f.rexW()
	return f
}
