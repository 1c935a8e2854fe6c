package encoder

type shiftFamily struct {
	Mnemonic string
	Digit    byte
}

var shiftFamilies = []shiftFamily{
	{"rol", 0},
	{"ror", 1},
	{"rcl", 2},
	{"rcr", 3},
	{"shl", 4},
	{"sal", 4},
	{"shr", 5},
	{"sar", 7},
}

var shiftSizes = []int{8, 16, 32, 64}

func shiftForms() []*Form {
	var forms []*Form

	for _, fam := range shiftFamilies {
		for _, size := range shiftSizes {
			base8 := size == 8

			opcode1 := byte(0xD0)
			opcodeCL := byte(0xD2)
			opcodeImm := byte(0xC0)
			if !base8 {
				opcode1, opcodeCL, opcodeImm = 0xD1, 0xD3, 0xC1
			}

			one := shiftBaseForm(fam.Mnemonic, opcode1, fam.Digit, size)
			one.Operands = []Slot{rmSlot(size), literalImm(1)}
			forms = append(forms, one)

			forms = append(forms, shiftShapeCL(fam.Mnemonic, opcodeCL, fam.Digit, size))
			forms = append(forms, shiftShapeImm(fam.Mnemonic, opcodeImm, fam.Digit, size))
		}
	}

	return forms
}

func shiftBaseForm(mnemonic string, opcode byte, digit byte, size int) *Form {
	f := newForm(mnemonic, opcode)
	f.digit(digit)
	if size == 16 {
		f.legacy(0x66)
	}
	if size == 64 {
		f.rexW()
	}
	return f
}

func shiftShapeCL(mnemonic string, opcode byte, digit byte, size int) *Form {
	f := shiftBaseForm(mnemonic, opcode, digit, size)
	f.Operands = []Slot{rmSlot(size), fixedReg(regCL)}
	return f
}

func shiftShapeImm(mnemonic string, opcode byte, digit byte, size int) *Form {
	f := shiftBaseForm(mnemonic, opcode, digit, size)
	f.Operands = []Slot{rmSlot(size), immSlot(8)}
	f.withImm(8)
	return f
}
