package template

import "strings"

// segment is either literal text (name == "") or a variable reference whose
// original spelling is kept in text.
type segment struct {
	text string
	name string
}

func lex(content string) []segment {
	var out []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(content); {
		rest := content[i:]
		switch {
		case strings.HasPrefix(rest, `\{{`):
			lit.WriteString("{{")
			i += 3
		case strings.HasPrefix(rest, `\{`):
			lit.WriteString("{")
			i += 2
		case strings.HasPrefix(rest, "{{"):
			if name, width, ok := variableAt(rest, "{{", "}}"); ok {
				flush()
				out = append(out, segment{text: rest[:width], name: name})
				i += width
				continue
			}
			lit.WriteByte('{')
			i++
		case rest[0] == '{':
			if name, width, ok := variableAt(rest, "{", "}"); ok {
				flush()
				out = append(out, segment{text: rest[:width], name: name})
				i += width
				continue
			}
			lit.WriteByte('{')
			i++
		default:
			lit.WriteByte(content[i])
			i++
		}
	}
	flush()
	return out
}

// variableAt reads open + identifier + close at the start of s.
func variableAt(s, open, close string) (string, int, bool) {
	body := s[len(open):]
	n := 0
	for n < len(body) && isIdentByte(body[n]) {
		n++
	}
	if n == 0 || !strings.HasPrefix(body[n:], close) {
		return "", 0, false
	}
	return body[:n], len(open) + n + len(close), true
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
