package encoder

// Dispatcher holds every instruction form in a fixed, significant order and
// tries them in that order against a token stream, returning the first
// successful encoding. Order matters: see the ordering discipline recorded
// in the forms_*.go files that build the table.
type Dispatcher struct {
	forms []*Form
}

// NewDispatcher builds a dispatcher over the full instruction catalog.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	d.forms = allForms()
	return d
}

// Encode tries every form in order against tokens (a single statement: a
// leading mnemonic token followed by its operand tokens) and returns the
// first successful encoding, or a *DispatchError if none matched.
func (d *Dispatcher) Encode(tokens []string) (*Result, error) {
	if len(tokens) == 0 {
		return nil, &DispatchError{Tokens: tokens}
	}
	mnemonic := tokens[0]
	operandTokens := tokens[1:]

	for _, form := range d.forms {
		if form.Mnemonic != mnemonic {
			continue
		}
		cur := NewCursor(operandTokens)
		rec, ok := form.match(cur)
		if !ok {
			continue
		}
		b := form.build(rec)
		return &Result{Mnemonic: form.Mnemonic, Bytes: b.Bytes}, nil
	}

	return nil, &DispatchError{Mnemonic: mnemonic, Tokens: tokens}
}

// Forms exposes the ordered catalog, mainly for introspection (e.g. the
// architecture-agnostic Instruction listing built on top of this package).
func (d *Dispatcher) Forms() []*Form {
	return d.forms
}
