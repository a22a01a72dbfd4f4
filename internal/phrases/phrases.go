// Package phrases expands user-defined macro keys inside note text.
package phrases

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Expander holds a phrase table sorted for longest-match lookup.
type Expander struct {
	keys         []string
	replacements map[string]string
}

// New builds an Expander. Empty keys are ignored.
func New(table map[string]string) *Expander {
	e := &Expander{replacements: make(map[string]string, len(table))}
	for k, v := range table {
		if k == "" {
			continue
		}
		e.keys = append(e.keys, k)
		e.replacements[k] = v
	}
	sort.Slice(e.keys, func(i, j int) bool {
		if len(e.keys[i]) != len(e.keys[j]) {
			return len(e.keys[i]) > len(e.keys[j])
		}
		return e.keys[i] < e.keys[j]
	})
	return e
}

// Len reports how many phrases are defined.
func (e *Expander) Len() int {
	if e == nil {
		return 0
	}
	return len(e.keys)
}

// Expand replaces phrase keys in text in a single left-to-right pass.
// At each position the longest matching key wins; replacement text is
// never scanned again.
func (e *Expander) Expand(text string) string {
	if e.Len() == 0 || text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if key, ok := e.match(text[i:]); ok {
			b.WriteString(e.replacements[key])
			i += len(key)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

func (e *Expander) match(rest string) (string, bool) {
	for _, k := range e.keys {
		if strings.HasPrefix(rest, k) {
			return k, true
		}
	}
	return "", false
}

// Expand is a convenience for one-off expansion with a plain map.
func Expand(text string, table map[string]string) string {
	return New(table).Expand(text)
}
