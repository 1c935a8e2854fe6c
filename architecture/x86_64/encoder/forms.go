package encoder

// allForms concatenates every family's generated Form rows into the single
// ordered catalog the Dispatcher walks. Order between families is not
// significant (mnemonics don't collide across families); order WITHIN a
// family is, and each forms_*.go file is responsible for its own internal
// ordering discipline (accumulator shortcuts before generic r/m forms, wide
// immediate forms before sign-extended-imm8 shortcuts, and so on).
func allForms() []*Form {
	var forms []*Form
	forms = append(forms, aluForms()...)
	forms = append(forms, zeroOperandForms()...)
	forms = append(forms, shiftForms()...)
	forms = append(forms, conditionForms()...)
	forms = append(forms, dataMovementForms()...) // includes movzx/movsx/movsxd
	forms = append(forms, unaryForms()...)
	forms = append(forms, bitTestForms()...) // includes xadd/cmpxchg
	forms = append(forms, stackForms()...)
	forms = append(forms, stringOpForms()...)
	forms = append(forms, ioForms()...)
	forms = append(forms, miscForms()...)
	return forms
}
