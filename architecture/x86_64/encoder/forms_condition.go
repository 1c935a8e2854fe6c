package encoder

// conditionNibbles maps each condition-code aliases group to its shared
// nibble, the low 4 bits of the second opcode byte for both CMOVcc (0F 4x)
// and SETcc (0F 9x).
var conditionNibbles = []struct {
	Nibble  byte
	Aliases []string
}{
	{0x0, []string{"o"}},
	{0x1, []string{"no"}},
	{0x2, []string{"b", "c", "nae"}},
	{0x3, []string{"ae", "nb", "nc"}},
	{0x4, []string{"e", "z"}},
	{0x5, []string{"ne", "nz"}},
	{0x6, []string{"be", "na"}},
	{0x7, []string{"a", "nbe"}},
	{0x8, []string{"s"}},
	{0x9, []string{"ns"}},
	{0xA, []string{"p", "pe"}},
	{0xB, []string{"np"}},
	{0xC, []string{"l", "nge"}},
	{0xD, []string{"ge", "nl"}},
	{0xE, []string{"le", "ng"}},
	{0xF, []string{"g", "nle"}},
}

func cmovFormsAndSetFormsBase(sizes []int) (cmov []*Form, set []*Form) {
	for _, cc := range conditionNibbles {
		for _, alias := range cc.Aliases {
			for _, size := range sizes {
				f := newForm("cmov"+alias, 0x0F, 0x40+cc.Nibble)
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
				cmov = append(cmov, f)
			}

			s := newForm("set"+alias, 0x0F, 0x90+cc.Nibble)
			s.Operands = []Slot{rmSlot(8)}
			s.digit(0)
			set = append(set, s)
		}
	}
	return cmov, set
}

func conditionForms() []*Form {
	cmov, set := cmovFormsAndSetFormsBase([]int{16, 32, 64})
	forms := make([]*Form, 0, len(cmov)+len(set))
	forms = append(forms, cmov...)
	forms = append(forms, set...)
	return forms
}
