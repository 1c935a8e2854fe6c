package encoder

import "github.com/keurnel/assembler/architecture/x86_64"

func stackForms() []*Form {
	var forms []*Form

	// PUSH: imm8, imm16, imm32, r64 (opcode-embedded), r/m64, segment fs/gs.
	pushImm8 := newForm("push", 0x6A)
	pushImm8.Operands = []Slot{immSlot(8)}
	pushImm8.withImm(8)
	forms = append(forms, pushImm8)

	pushImm16 := newForm("push", 0x68)
	pushImm16.legacy(0x66)
	pushImm16.Operands = []Slot{immSlot(16)}
	pushImm16.withImm(16)
	forms = append(forms, pushImm16)

	pushImm32 := newForm("push", 0x68)
	pushImm32.Operands = []Slot{immSlot(32)}
	pushImm32.withImm(32)
	forms = append(forms, pushImm32)

	pushReg := newForm("push", 0x50)
	pushReg.Operands = []Slot{opcodeRegSlot(64)}
	pushReg.OpcodeReg = 0
	forms = append(forms, pushReg)

	pushRM := newForm("push", 0xFF)
	pushRM.Operands = []Slot{rmSlot(64)}
	pushRM.digit(6)
	forms = append(forms, pushRM)

	forms = append(forms, withOperands(newForm("push", 0x0F, 0xA0), fixedReg(x86_64.FS)))
	forms = append(forms, withOperands(newForm("push", 0x0F, 0xA8), fixedReg(x86_64.GS)))

	// POP: r64 (opcode-embedded), r/m64, segment fs/gs.
	popReg := newForm("pop", 0x58)
	popReg.Operands = []Slot{opcodeRegSlot(64)}
	popReg.OpcodeReg = 0
	forms = append(forms, popReg)

	popRM := newForm("pop", 0x8F)
	popRM.Operands = []Slot{rmSlot(64)}
	popRM.digit(0)
	forms = append(forms, popRM)

	forms = append(forms, withOperands(newForm("pop", 0x0F, 0xA1), fixedReg(x86_64.FS)))
	forms = append(forms, withOperands(newForm("pop", 0x0F, 0xA9), fixedReg(x86_64.GS)))

	// XCHG: accumulator shortcut, then the generic r/m, reg form.
	for _, size := range []int{16, 32, 64} {
		f := newForm("xchg", 0x90)
		if size == 16 {
			f.legacy(0x66)
		}
		if size == 64 {
			f.rexW()
		}
		acc := x86_64.EAX
		switch size {
		case 16:
			acc = x86_64.AX
		case 64:
			acc = x86_64.RAX
		}
		f.Operands = []Slot{fixedReg(acc), opcodeRegSlot(size)}
		f.OpcodeReg = 1
		forms = append(forms, f)
	}
	forms = append(forms, rmReg("xchg", 0x86, 8, false))
	forms = append(forms, rmReg("xchg", 0x87, 16, true))
	forms = append(forms, rmReg("xchg", 0x87, 32, false))
	forms = append(forms, rmRegW("xchg", 0x87, 64))

	return forms
}
