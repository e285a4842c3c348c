// Package widget holds the window-independent pieces of the desktop UI.
package widget

import (
	"strings"
	"unicode"
)

// MaxUserLen is the longest GitHub login.
const MaxUserLen = 39

// Prompt is a single-line username input.
type Prompt struct {
	buf []rune
}

// Set replaces the contents.
func (p *Prompt) Set(s string) {
	p.buf = p.buf[:0]
	p.Type([]rune(s))
}

// Value returns the current contents.
func (p *Prompt) Value() string { return string(p.buf) }

// Type appends printable runes up to MaxUserLen.
func (p *Prompt) Type(rs []rune) {
	for _, r := range rs {
		if len(p.buf) >= MaxUserLen {
			return
		}
		if unicode.IsPrint(r) {
			p.buf = append(p.buf, r)
		}
	}
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.buf) > 0 {
		p.buf = p.buf[:len(p.buf)-1]
	}
}

// Submit returns the trimmed contents; blank input is rejected.
func (p *Prompt) Submit() (string, bool) {
	user := strings.TrimSpace(p.Value())
	return user, user != ""
}
