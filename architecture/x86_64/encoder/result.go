package encoder

import "fmt"

// Result is the output of a successful encode: the emitted bytes plus the
// canonical mnemonic that matched.
type Result struct {
	Mnemonic string
	Bytes    []byte
}

// DispatchError reports that no instruction form matched a statement's
// tokens. It is the only error the dispatcher ever returns.
type DispatchError struct {
	Mnemonic string
	Tokens   []string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("no encoding form matched %q (%d token(s))", e.Mnemonic, len(e.Tokens))
}
