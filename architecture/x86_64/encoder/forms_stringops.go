package encoder

// stringOpFamily describes one REP-compatible string instruction across its
// byte/word/dword/qword suffix forms. Each form is zero-operand at the token
// level: the source/destination registers are implicit (rsi/rdi/dx).
type stringOpFamily struct {
	Mnemonic string
	ByteOp   byte
	WideOp   byte
	HasQword bool
}

var stringOpFamilies = []stringOpFamily{
	{"movs", 0xA4, 0xA5, true},
	{"cmps", 0xA6, 0xA7, true},
	{"scas", 0xAE, 0xAF, true},
	{"lods", 0xAC, 0xAD, true},
	{"stos", 0xAA, 0xAB, true},
	{"ins", 0x6C, 0x6D, false},
	{"outs", 0x6E, 0x6F, false},
}

func stringOpForms() []*Form {
	var forms []*Form
	for _, fam := range stringOpFamilies {
		forms = append(forms, zeroOperand(fam.Mnemonic+"b", fam.ByteOp))
		forms = append(forms, zeroOperand(fam.Mnemonic+"w", 0x66, fam.WideOp))
		forms = append(forms, zeroOperand(fam.Mnemonic+"d", fam.WideOp))
		if fam.HasQword {
			forms = append(forms, zeroOperand(fam.Mnemonic+"q", 0x48, fam.WideOp))
		}
	}
	return forms
}
