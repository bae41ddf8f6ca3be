package scan

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в списке токенов argv.
type Cursor struct {
	tokens []string
	off    uint32
	// Limit is the exclusive upper bound for off.
	limit uint32
}

// NewCursor creates a cursor over the provided token list. The list is
// never written through the cursor.
func NewCursor(tokens []string) Cursor {
	limit, err := safecast.Conv[uint32](len(tokens))
	if err != nil {
		panic(fmt.Errorf("argv length overflow: %w", err))
	}
	return Cursor{
		tokens: tokens,
		off:    0,
		limit:  limit,
	}
}

// EOF проверяет, достигнут ли конец списка токенов
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Index returns the current position as an argv index.
func (c *Cursor) Index() int {
	return int(c.off)
}

// Peek читает текущий токен, не потребляя его
func (c *Cursor) Peek() (string, bool) {
	if c.EOF() {
		return "", false
	}
	return c.tokens[c.off], true
}

// Bump перемещает курсор на один токен вперед и возвращает прочитанный токен
func (c *Cursor) Bump() (string, bool) {
	if c.EOF() {
		return "", false
	}
	tok := c.tokens[c.off]
	c.off++
	return tok, true
}

// Drain returns a copy of every remaining token and moves the cursor to
// EOF. Used for the verbatim tail after a "--" terminator.
func (c *Cursor) Drain() []string {
	if c.EOF() {
		return nil
	}
	rest := make([]string, c.limit-c.off)
	copy(rest, c.tokens[c.off:c.limit])
	c.off = c.limit
	return rest
}
