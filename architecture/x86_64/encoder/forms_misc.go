package encoder

// rm16Group1 builds the single-operand "mnemonic r/m16" shape shared by the
// system-descriptor-table instructions (LLDT, LTR, VERR, VERW, SLDT, STR,
// SMSW, LMSW).
func rm16Group1(mnemonic string, opcode2 byte, digit byte, size int) *Form {
	f := newForm(mnemonic, 0x0F, opcode2)
	f.Operands = []Slot{rmSlot(size)}
	f.digit(digit)
	return f
}

func miscForms() []*Form {
	var forms []*Form

	// BSWAP: opcode-embedded register, 32- or 64-bit only.
	for _, size := range []int{32, 64} {
		f := newForm("bswap", 0x0F, 0xC8)
		if size == 64 {
			f.rexW()
		}
		f.Operands = []Slot{opcodeRegSlot(size)}
		f.OpcodeReg = 0
		forms = append(forms, f)
	}

	// CALL/JMP, indirect only: r/m64, opcode FF with digit 2 (call) or 4 (jmp).
	callRM := newForm("call", 0xFF)
	callRM.Operands = []Slot{rmSlot(64)}
	callRM.digit(2)
	forms = append(forms, callRM)

	jmpRM := newForm("jmp", 0xFF)
	jmpRM.Operands = []Slot{rmSlot(64)}
	jmpRM.digit(4)
	forms = append(forms, jmpRM)

	// RET / RETF, bare and with an imm16 operand-size/stack-adjust operand.
	forms = append(forms, zeroOperand("ret", 0xC3))
	retImm := newForm("ret", 0xC2)
	retImm.Operands = []Slot{immSlot(16)}
	retImm.withImm(16)
	forms = append(forms, retImm)

	forms = append(forms, zeroOperand("retf", 0xCB))
	retfImm := newForm("retf", 0xCA)
	retfImm.Operands = []Slot{immSlot(16)}
	retfImm.withImm(16)
	forms = append(forms, retfImm)

	// ENTER imm16, imm8 — the one form needing two trailing immediates.
	enter := newForm("enter", 0xC8)
	enter.Operands = []Slot{immSlot(16), immSlot(8)}
	enter.withImmAt(16, 0)
	enter.withImm2At(8, 1)
	forms = append(forms, enter)

	// LOCK is a bare prefix byte, modeled as a zero-operand form the same
	// way XACQUIRE/XRELEASE are below.
	forms = append(forms, zeroOperand("lock", 0xF0))

	// AAD/AAM, each with a single imm8 operand.
	aad := newForm("aad", 0xD5)
	aad.Operands = []Slot{immSlot(8)}
	aad.withImm(8)
	forms = append(forms, aad)

	aam := newForm("aam", 0xD4)
	aam.Operands = []Slot{immSlot(8)}
	aam.withImm(8)
	forms = append(forms, aam)

	// INT imm8 (the general form; INT 3 is covered by the fixed "int3" form).
	intImm := newForm("int", 0xCD)
	intImm.Operands = []Slot{immSlot(8)}
	intImm.withImm(8)
	forms = append(forms, intImm)

	// ARPL r/m16, r16 — privilege-level adjustment, legacy but still a valid
	// encoding form in 64-bit mode's compatibility paths.
	arpl := newForm("arpl", 0x63)
	arpl.Operands = []Slot{rmSlot(16), regSlot(16)}
	arpl.ModRM = true
	arpl.RMField = 0
	arpl.RegField = 1
	forms = append(forms, arpl)

	// System descriptor-table group: LLDT/LTR (/2,/3 on 0F 00), SLDT/STR
	// (/0,/1 on 0F 00), VERR/VERW (/4,/5 on 0F 00), SMSW (/4 on 0F 01), LMSW
	// (/6 on 0F 01).
	forms = append(forms, rm16Group1("sldt", 0x00, 0, 16))
	forms = append(forms, rm16Group1("str", 0x00, 1, 16))
	forms = append(forms, rm16Group1("lldt", 0x00, 2, 16))
	forms = append(forms, rm16Group1("ltr", 0x00, 3, 16))
	forms = append(forms, rm16Group1("verr", 0x00, 4, 16))
	forms = append(forms, rm16Group1("verw", 0x00, 5, 16))
	forms = append(forms, rm16Group1("smsw", 0x01, 4, 16))
	forms = append(forms, rm16Group1("lmsw", 0x01, 6, 16))

	// RDMSR/WRMSR/RDPMC: zero-operand beyond the implicit ECX/EDX:EAX.
	forms = append(forms, zeroOperand("rdmsr", 0x0F, 0x32))
	forms = append(forms, zeroOperand("wrmsr", 0x0F, 0x30))
	forms = append(forms, zeroOperand("rdpmc", 0x0F, 0x33))

	// RDFSBASE/RDGSBASE/WRFSBASE/WRGSBASE: reg64 operand, mandatory F3 prefix,
	// ModR/M digit selects which of the four.
	forms = append(forms, fsGsBaseForm("rdfsbase", 0), fsGsBaseForm("rdgsbase", 1),
		fsGsBaseForm("wrfsbase", 2), fsGsBaseForm("wrgsbase", 3))

	// RDRAND/RDSEED: reg operand, digits 6/7 on 0F C7.
	for _, size := range []int{16, 32, 64} {
		forms = append(forms, rdRandSeedForm("rdrand", 6, size))
		forms = append(forms, rdRandSeedForm("rdseed", 7, size))
	}
	rdpid := newForm("rdpid", 0x0F, 0xC7)
	rdpid.legacy(0xF3)
	rdpid.Operands = []Slot{regSlot(64)}
	rdpid.digit(7)
	forms = append(forms, rdpid)

	// ADCX/ADOX: reg, r/m, mandatory 66/F3 prefix plus the 0F 38 escape.
	forms = append(forms, threeByteRegRM("adcx", 0x66, 0xF6, 32))
	forms = append(forms, threeByteRegRM("adcx", 0x66, 0xF6, 64))
	forms = append(forms, threeByteRegRM("adox", 0xF3, 0xF6, 32))
	forms = append(forms, threeByteRegRM("adox", 0xF3, 0xF6, 64))

	// CRC32: reg32/64 dest, r/m8/32/64 src, mandatory F2 prefix.
	forms = append(forms, crc32Form(8, 32), crc32Form(8, 64), crc32Form(32, 32), crc32Form(64, 64))

	// XABORT imm8, XACQUIRE/XRELEASE as standalone fixed-byte prefixes used
	// here as ordinary zero-operand mnemonics (this core does not model
	// prefix re-attachment to a following instruction).
	xabort := newForm("xabort", 0xC6, 0xF8)
	xabort.Operands = []Slot{immSlot(8)}
	xabort.withImm(8)
	forms = append(forms, xabort)
	forms = append(forms, zeroOperand("xacquire", 0xF2))
	forms = append(forms, zeroOperand("xrelease", 0xF3))

	return forms
}

func fsGsBaseForm(mnemonic string, digit byte) *Form {
	f := newForm(mnemonic, 0x0F, 0xAE)
	f.legacy(0xF3)
	f.Operands = []Slot{regSlot(64)}
	f.digit(digit)
	return f
}

func rdRandSeedForm(mnemonic string, digit byte, size int) *Form {
	f := newForm(mnemonic, 0x0F, 0xC7)
	if size == 16 {
		f.legacy(0x66)
	}
	if size == 64 {
		f.rexW()
	}
	f.Operands = []Slot{regSlot(size)}
	f.digit(digit)
	return f
}

func threeByteRegRM(mnemonic string, mandatory byte, opcode3 byte, size int) *Form {
	f := newForm(mnemonic, 0x0F, 0x38, opcode3)
	f.legacy(mandatory)
	if size == 64 {
		f.rexW()
	}
	f.Operands = []Slot{regSlot(size), rmSlot(size)}
	f.ModRM = true
	f.RegField = 0
	f.RMField = 1
	return f
}

func crc32Form(srcSize, destSize int) *Form {
	opcode3 := byte(0xF0)
	if srcSize != 8 {
		opcode3 = 0xF1
	}
	f := newForm("crc32", 0x0F, 0x38, opcode3)
	f.legacy(0xF2)
	if destSize == 64 {
		f.rexW()
	}
	f.Operands = []Slot{regSlot(destSize), rmSlot(srcSize)}
	f.ModRM = true
	f.RegField = 0
	f.RMField = 1
	return f
}
