package encoder

// twoByteRegRM builds the common "mnemonic reg, r/m" shape for a 0F xx
// opcode across the 16/32/64-bit operand-size axis, with an optional
// mandatory legacy prefix (F3 for the LZCNT/TZCNT/POPCNT family).
func twoByteRegRM(mnemonic string, mandatory byte, opcode2 byte, sizes []int) []*Form {
	var forms []*Form
	for _, size := range sizes {
		f := newForm(mnemonic, 0x0F, opcode2)
		if mandatory != 0 {
			f.legacy(mandatory)
		}
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

// twoByteRMReg builds the mirror "mnemonic r/m, reg" shape.
func twoByteRMReg(mnemonic string, opcode2 byte, sizes []int) []*Form {
	var forms []*Form
	for _, size := range sizes {
		f := newForm(mnemonic, 0x0F, opcode2)
		if size == 16 {
			f.legacy(0x66)
		}
		if size == 64 {
			f.rexW()
		}
		f.Operands = []Slot{rmSlot(size), regSlot(size)}
		f.ModRM = true
		f.RMField = 0
		f.RegField = 1
		forms = append(forms, f)
	}
	return forms
}

func bitTestForms() []*Form {
	var forms []*Form
	sizes16_32_64 := []int{16, 32, 64}

	// BT/BTC/BTR/BTS, r/m, reg.
	forms = append(forms, twoByteRMReg("bt", 0xA3, sizes16_32_64)...)
	forms = append(forms, twoByteRMReg("bts", 0xAB, sizes16_32_64)...)
	forms = append(forms, twoByteRMReg("btr", 0xB3, sizes16_32_64)...)
	forms = append(forms, twoByteRMReg("btc", 0xBB, sizes16_32_64)...)

	// BT/BTC/BTR/BTS, r/m, imm8 — the 0F BA group distinguished by digit.
	btDigits := []struct {
		Mnemonic string
		Digit    byte
	}{{"bt", 4}, {"bts", 5}, {"btr", 6}, {"btc", 7}}
	for _, bd := range btDigits {
		for _, size := range sizes16_32_64 {
			f := newForm(bd.Mnemonic, 0x0F, 0xBA)
			if size == 16 {
				f.legacy(0x66)
			}
			if size == 64 {
				f.rexW()
			}
			f.Operands = []Slot{rmSlot(size), immSlot(8)}
			f.digit(bd.Digit)
			f.withImm(8)
			forms = append(forms, f)
		}
	}

	forms = append(forms, twoByteRegRM("bsf", 0, 0xBC, sizes16_32_64)...)
	forms = append(forms, twoByteRegRM("bsr", 0, 0xBD, sizes16_32_64)...)
	forms = append(forms, twoByteRegRM("popcnt", 0xF3, 0xB8, sizes16_32_64)...)
	forms = append(forms, twoByteRegRM("lzcnt", 0xF3, 0xBD, sizes16_32_64)...)
	forms = append(forms, twoByteRegRM("tzcnt", 0xF3, 0xBC, sizes16_32_64)...)

	forms = append(forms, xaddCmpxchgForms()...)

	return forms
}

func xaddCmpxchgForms() []*Form {
	var forms []*Form
	sizes := []int{8, 16, 32, 64}
	for _, size := range sizes {
		opcode := byte(0xC0)
		if size != 8 {
			opcode = 0xC1
		}
		f := newForm("xadd", 0x0F, opcode)
		if size == 16 {
			f.legacy(0x66)
		}
		if size == 64 {
			f.rexW()
		}
		f.Operands = []Slot{rmSlot(size), regSlot(size)}
		f.ModRM = true
		f.RMField = 0
		f.RegField = 1
		forms = append(forms, f)

		cmpxchgOp := byte(0xB0)
		if size != 8 {
			cmpxchgOp = 0xB1
		}
		c := newForm("cmpxchg", 0x0F, cmpxchgOp)
		if size == 16 {
			c.legacy(0x66)
		}
		if size == 64 {
			c.rexW()
		}
		c.Operands = []Slot{rmSlot(size), regSlot(size)}
		c.ModRM = true
		c.RMField = 0
		c.RegField = 1
		forms = append(forms, c)
	}
	return forms
}
