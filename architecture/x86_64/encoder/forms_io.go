package encoder

import "github.com/keurnel/assembler/architecture/x86_64"

func ioForms() []*Form {
	var forms []*Form

	// IN acc, imm8
	forms = append(forms, withOperands(newForm("in", 0xE4), fixedReg(x86_64.AL), immSlot(8)).withImm(8))
	forms = append(forms, withOperands(newForm("in", 0xE5).legacy(0x66), fixedReg(x86_64.AX), immSlot(8)).withImm(8))
	forms = append(forms, withOperands(newForm("in", 0xE5), fixedReg(x86_64.EAX), immSlot(8)).withImm(8))

	// IN acc, dx
	forms = append(forms, withOperands(newForm("in", 0xEC), fixedReg(x86_64.AL), fixedReg(x86_64.DX)))
	forms = append(forms, withOperands(newForm("in", 0xED).legacy(0x66), fixedReg(x86_64.AX), fixedReg(x86_64.DX)))
	forms = append(forms, withOperands(newForm("in", 0xED), fixedReg(x86_64.EAX), fixedReg(x86_64.DX)))

	// OUT imm8, acc
	forms = append(forms, withOperands(newForm("out", 0xE6), immSlot(8), fixedReg(x86_64.AL)).withImmAt(8, 0))
	forms = append(forms, withOperands(newForm("out", 0xE7).legacy(0x66), immSlot(8), fixedReg(x86_64.AX)).withImmAt(8, 0))
	forms = append(forms, withOperands(newForm("out", 0xE7), immSlot(8), fixedReg(x86_64.EAX)).withImmAt(8, 0))

	// OUT dx, acc
	forms = append(forms, withOperands(newForm("out", 0xEE), fixedReg(x86_64.DX), fixedReg(x86_64.AL)))
	forms = append(forms, withOperands(newForm("out", 0xEF).legacy(0x66), fixedReg(x86_64.DX), fixedReg(x86_64.AX)))
	forms = append(forms, withOperands(newForm("out", 0xEF), fixedReg(x86_64.DX), fixedReg(x86_64.EAX)))

	return forms
}
