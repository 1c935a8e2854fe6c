// Package encoder implements the x86-64 single-statement encoding core: the
// operand recognizers, the instruction builder, and the per-form dispatcher
// that together turn a token stream for one assembly statement into a
// machine-code byte sequence.
package encoder

// Cursor walks a token stream left to right. Recognizers that need to try an
// alternative on failure take Clone() before attempting a match, so a failed
// attempt never disturbs the caller's position.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor seats a cursor at the start of tokens.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Clone returns an independent copy positioned identically to c. Advancing
// the clone never affects c.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{tokens: c.tokens, pos: c.pos}
}

// Adopt repositions c to match other. Used by the caller of Clone to commit
// a successful attempt back into the parent cursor.
func (c *Cursor) Adopt(other *Cursor) {
	c.pos = other.pos
}

// Next returns the next token and advances the cursor, or ("", false) if the
// stream is exhausted.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Peek returns the next token without advancing, or ("", false) at the end.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// Expect consumes the next token iff it equals tok.
func (c *Cursor) Expect(tok string) bool {
	got, ok := c.Peek()
	if !ok || got != tok {
		return false
	}
	c.pos++
	return true
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Remaining returns the count of unconsumed tokens.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}
