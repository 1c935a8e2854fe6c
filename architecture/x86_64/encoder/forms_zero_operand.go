package encoder

// zeroOperandForms lists the standalone fixed-byte-sequence instructions:
// the matcher for each is just "mnemonic equals, then end of input" (plus a
// literal "ax" for FSTSW/FNSTSW). Other fixed-byte forms (RET/RETF, LOCK,
// RDMSR/WRMSR/RDPMC, XACQUIRE/XRELEASE, the string ops) are built in
// forms_misc.go and forms_stringops.go.
func zeroOperandForms() []*Form {
	type entry struct {
		mnemonic string
		opcode   []byte
	}
	entries := []entry{
		{"hlt", []byte{0xF4}},
		{"clc", []byte{0xF8}},
		{"cld", []byte{0xFC}},
		{"cli", []byte{0xFA}},
		{"clts", []byte{0x0F, 0x06}},
		{"cmc", []byte{0xF5}},
		{"cpuid", []byte{0x0F, 0xA2}},
		{"cbw", []byte{0x66, 0x98}},
		{"cwde", []byte{0x98}},
		{"cdqe", []byte{0x48, 0x98}},
		{"cwd", []byte{0x66, 0x99}},
		{"cdq", []byte{0x99}},
		{"cqo", []byte{0x48, 0x99}},
		{"daa", []byte{0x27}},
		{"das", []byte{0x2F}},
		{"aaa", []byte{0x37}},
		{"aas", []byte{0x3F}},
		{"syscall", []byte{0x0F, 0x05}},
		{"sysenter", []byte{0x0F, 0x34}},
		{"sysexit", []byte{0x0F, 0x35}},
		{"sysret", []byte{0x0F, 0x07}},
		{"rdtsc", []byte{0x0F, 0x31}},
		{"rdtscp", []byte{0x0F, 0x01, 0xF9}},
		{"invd", []byte{0x0F, 0x08}},
		{"wbinvd", []byte{0x0F, 0x09}},
		{"ud2", []byte{0x0F, 0x0B}},
		{"ud0", []byte{0x0F, 0xFF}},
		{"ud1", []byte{0x0F, 0xB9}},
		{"lahf", []byte{0x9F}},
		{"sahf", []byte{0x9E}},
		{"stc", []byte{0xF9}},
		{"std", []byte{0xFD}},
		{"sti", []byte{0xFB}},
		{"nop", []byte{0x90}},
		{"pause", []byte{0xF3, 0x90}},
		{"swapgs", []byte{0x0F, 0x01, 0xF8}},
		{"rsm", []byte{0x0F, 0xAA}},
		{"wait", []byte{0x9B}},
		{"fwait", []byte{0x9B}},
		{"monitor", []byte{0x0F, 0x01, 0xC8}},
		{"mwait", []byte{0x0F, 0x01, 0xC9}},
		{"xlatb", []byte{0xD7}},
		{"leave", []byte{0xC9}},
		{"int3", []byte{0xCC}},
		{"into", []byte{0xCE}},
		{"iret", []byte{0xCF}},
		{"iretd", []byte{0xCF}},
		{"iretq", []byte{0x48, 0xCF}},
		{"popa", []byte{0x61}},
		{"popad", []byte{0x61}},
		{"pusha", []byte{0x60}},
		{"pushad", []byte{0x60}},
		{"popf", []byte{0x9D}},
		{"popfd", []byte{0x9D}},
		{"popfq", []byte{0x9D}},
		{"pushf", []byte{0x9C}},
		{"pushfd", []byte{0x9C}},
		{"pushfq", []byte{0x9C}},

		// x87 subset.
		{"f2xm1", []byte{0xD9, 0xF0}},
		{"fabs", []byte{0xD9, 0xE1}},
		{"faddp", []byte{0xDE, 0xC1}},
		{"fchs", []byte{0xD9, 0xE0}},
		{"fclex", []byte{0x9B, 0xDB, 0xE2}},
		{"fnclex", []byte{0xDB, 0xE2}},
		{"fcom", []byte{0xD8, 0xD1}},
		{"fcomp", []byte{0xD8, 0xD9}},
		{"fcompp", []byte{0xDE, 0xD9}},
		{"fcos", []byte{0xD9, 0xFF}},
		{"fdecstp", []byte{0xD9, 0xF6}},
		{"fdivp", []byte{0xDE, 0xF9}},
		{"fdivrp", []byte{0xDE, 0xF1}},
		{"fincstp", []byte{0xD9, 0xF7}},
		{"finit", []byte{0x9B, 0xDB, 0xE3}},
		{"fninit", []byte{0xDB, 0xE3}},
		{"fld1", []byte{0xD9, 0xE8}},
		{"fldl2t", []byte{0xD9, 0xE9}},
		{"fldl2e", []byte{0xD9, 0xEA}},
		{"fldpi", []byte{0xD9, 0xEB}},
		{"fldlg2", []byte{0xD9, 0xEC}},
		{"fldln2", []byte{0xD9, 0xED}},
		{"fldz", []byte{0xD9, 0xEE}},
		{"fmulp", []byte{0xDE, 0xC9}},
		{"fnop", []byte{0xD9, 0xD0}},
		{"fpatan", []byte{0xD9, 0xF3}},
		{"fprem", []byte{0xD9, 0xF8}},
		{"fprem1", []byte{0xD9, 0xF5}},
		{"fptan", []byte{0xD9, 0xF2}},
		{"frndint", []byte{0xD9, 0xFC}},
		{"fscale", []byte{0xD9, 0xFD}},
		{"fsin", []byte{0xD9, 0xFE}},
		{"fsincos", []byte{0xD9, 0xFB}},
		{"fsqrt", []byte{0xD9, 0xFA}},
		{"fsubp", []byte{0xDE, 0xE9}},
		{"fsubrp", []byte{0xDE, 0xE1}},
		{"ftst", []byte{0xD9, 0xE4}},
		{"fucom", []byte{0xDD, 0xE1}},
		{"fucomp", []byte{0xDD, 0xE9}},
		{"fucompp", []byte{0xDA, 0xE9}},
		{"fxam", []byte{0xD9, 0xE5}},
		{"fxch", []byte{0xD9, 0xC9}},
		{"fxtract", []byte{0xD9, 0xF4}},
		{"fyl2x", []byte{0xD9, 0xF1}},
		{"fyl2xp1", []byte{0xD9, 0xF9}},
	}

	forms := make([]*Form, 0, len(entries))
	for _, e := range entries {
		forms = append(forms, zeroOperand(e.mnemonic, e.opcode...))
	}

	// FSTSW/FNSTSW take a literal "ax" destination but are otherwise fixed.
	forms = append(forms, withOperands(newForm("fstsw", 0x9B, 0xDF, 0xE0), fixedReg(regAX)))
	forms = append(forms, withOperands(newForm("fnstsw", 0xDF, 0xE0), fixedReg(regAX)))

	return forms
}
