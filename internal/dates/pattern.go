package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/journey/internal/locale"
)

// Patterns are written with LDML-style tokens:
//
//	YYYY  four-digit year        YY   two-digit year (20YY)
//	MMMM  full month name        MMM  short month name
//	MM/M  month number           DD/D day of month
//	dddd  full weekday name      ddd  short weekday name
//	HH/H  hour 0-23              hh/h hour 1-12 (requires a)
//	mm    minute                 ss   second
//	a     AM/PM marker
//
// Anything else is a literal. A run of letters is read as tokens only when
// the whole run splits into tokens, so "Date" or "Week" stay literal; text
// in single quotes ('at', '' for an apostrophe) or square brackets ([Uke])
// is always literal. strftime-style patterns ("%d.%m.%Y") are translated to
// tokens before compiling.

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear4
	tokYear2
	tokMonthName
	tokMonthShort
	tokMonth
	tokDay
	tokWeekdayName
	tokWeekdayShort
	tokHour24
	tokHour12
	tokMinute
	tokSecond
	tokMeridiem
)

type token struct {
	kind    tokenKind
	literal string
	// bare marks single-letter numeric tokens, which render without padding.
	bare bool
}

// Longest spellings first so "MMMM" wins over "MM".
var tokenSpellings = []struct {
	text string
	kind tokenKind
}{
	{"YYYY", tokYear4},
	{"MMMM", tokMonthName},
	{"dddd", tokWeekdayName},
	{"MMM", tokMonthShort},
	{"ddd", tokWeekdayShort},
	{"YY", tokYear2},
	{"MM", tokMonth},
	{"DD", tokDay},
	{"HH", tokHour24},
	{"hh", tokHour12},
	{"mm", tokMinute},
	{"ss", tokSecond},
	{"M", tokMonth},
	{"D", tokDay},
	{"H", tokHour24},
	{"h", tokHour12},
	{"a", tokMeridiem},
}

var strftimeTokens = map[byte]string{
	'Y': "YYYY",
	'y': "YY",
	'm': "MM",
	'd': "DD",
	'e': "D",
	'B': "MMMM",
	'b': "MMM",
	'A': "dddd",
	'a': "ddd",
	'H': "HH",
	'I': "hh",
	'M': "mm",
	'S': "ss",
	'p': "a",
}

// pattern is a compiled token sequence.
type pattern struct {
	source string
	tokens []token
}

func (p pattern) has(kinds ...tokenKind) bool {
	for _, t := range p.tokens {
		for _, k := range kinds {
			if t.kind == k {
				return true
			}
		}
	}
	return false
}

func (p pattern) isTwelveHour() bool {
	return p.has(tokHour12, tokMeridiem)
}

func compilePattern(source string) (pattern, error) {
	src := source
	if strings.Contains(src, "%") {
		translated, err := translateStrftime(src)
		if err != nil {
			return pattern{}, err
		}
		src = translated
	}

	var tokens []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\'':
			text, n, err := quotedLiteral(src[i:])
			if err != nil {
				return pattern{}, fmt.Errorf("pattern %q: %w", source, err)
			}
			lit.WriteString(text)
			i += n
		case c == '[':
			end := strings.IndexByte(src[i+1:], ']')
			if end < 0 {
				return pattern{}, fmt.Errorf("pattern %q: unterminated [", source)
			}
			lit.WriteString(src[i+1 : i+1+end])
			i += end + 2
		case isLetter(c):
			j := i
			for j < len(src) && isLetter(src[j]) {
				j++
			}
			run := src[i:j]
			if toks, ok := splitTokens(run); ok {
				flush()
				tokens = append(tokens, toks...)
			} else {
				lit.WriteString(run)
			}
			i = j
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	p := pattern{source: source, tokens: tokens}
	if p.has(tokHour12) && !p.has(tokMeridiem) {
		return pattern{}, fmt.Errorf("pattern %q uses a 12-hour field without an AM/PM marker", source)
	}
	return p, nil
}

// splitTokens reads a run of letters as a token sequence, longest spelling
// first. It fails if any part of the run is not a token.
func splitTokens(run string) ([]token, bool) {
	var out []token
outer:
	for i := 0; i < len(run); {
		for _, sp := range tokenSpellings {
			if strings.HasPrefix(run[i:], sp.text) {
				out = append(out, token{kind: sp.kind, bare: len(sp.text) == 1})
				i += len(sp.text)
				continue outer
			}
		}
		return nil, false
	}
	return out, true
}

// quotedLiteral reads a single-quoted literal at the start of s and returns
// its text and the number of bytes consumed. ” is an apostrophe.
func quotedLiteral(s string) (string, int, error) {
	if strings.HasPrefix(s, "''") {
		return "'", 2, nil
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated quote")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// translateStrftime rewrites %-directives as tokens and quotes the text
// between them so letters there are never read as tokens.
func translateStrftime(src string) (string, error) {
	var b, lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			b.WriteString("'" + strings.ReplaceAll(lit.String(), "'", "''") + "'")
			lit.Reset()
		}
	}
	for i := 0; i < len(src); i++ {
		if src[i] != '%' {
			lit.WriteByte(src[i])
			continue
		}
		if i+1 >= len(src) {
			return "", fmt.Errorf("pattern %q ends with a dangling %%", src)
		}
		if src[i+1] == '%' {
			lit.WriteByte('%')
			i++
			continue
		}
		tok, ok := strftimeTokens[src[i+1]]
		if !ok {
			return "", fmt.Errorf("pattern %q: unsupported directive %%%c", src, src[i+1])
		}
		flush()
		b.WriteString(tok)
		i++
	}
	flush()
	return b.String(), nil
}

// fields holds whatever a pattern extracted from its input.
type fields struct {
	year, month, day       int
	hour, minute, second   int
	hasYear, hasMonth      bool
	hasDay, hasHour        bool
	hasMinute, meridiemSet bool
	pm                     bool
}

// match consumes the whole input or fails.
func (p pattern) match(input string, prof *locale.Profile) (fields, bool) {
	var f fields
	pos := 0
	for _, t := range p.tokens {
		rest := input[pos:]
		switch t.kind {
		case tokLiteral:
			if !strings.HasPrefix(rest, t.literal) {
				return f, false
			}
			pos += len(t.literal)
		case tokYear4:
			n, w, ok := digits(rest, 4, 4)
			if !ok {
				return f, false
			}
			f.year, f.hasYear = n, true
			pos += w
		case tokYear2:
			n, w, ok := digits(rest, 2, 2)
			if !ok {
				return f, false
			}
			f.year, f.hasYear = 2000+n, true
			pos += w
		case tokMonth:
			n, w, ok := digits(rest, 1, 2)
			if !ok {
				return f, false
			}
			f.month, f.hasMonth = n, true
			pos += w
		case tokMonthName, tokMonthShort:
			idx, w, ok := matchName(rest, monthTable(prof, t.kind == tokMonthShort))
			if !ok {
				return f, false
			}
			f.month, f.hasMonth = idx+1, true
			pos += w
		case tokDay:
			n, w, ok := digits(rest, 1, 2)
			if !ok {
				return f, false
			}
			f.day, f.hasDay = n, true
			pos += w
		case tokWeekdayName, tokWeekdayShort:
			// Accepted for readability only; the calendar date decides the weekday.
			_, w, ok := matchName(rest, weekdayTable(prof, t.kind == tokWeekdayShort))
			if !ok {
				return f, false
			}
			pos += w
		case tokHour24, tokHour12:
			n, w, ok := digits(rest, 1, 2)
			if !ok {
				return f, false
			}
			if t.kind == tokHour24 && n > 23 {
				return f, false
			}
			if t.kind == tokHour12 && (n < 1 || n > 12) {
				return f, false
			}
			f.hour, f.hasHour = n, true
			pos += w
		case tokMinute:
			n, w, ok := digits(rest, 2, 2)
			if !ok || n > 59 {
				return f, false
			}
			f.minute, f.hasMinute = n, true
			pos += w
		case tokSecond:
			n, w, ok := digits(rest, 2, 2)
			if !ok || n > 59 {
				return f, false
			}
			f.second = n
			pos += w
		case tokMeridiem:
			if len(rest) < 2 {
				return f, false
			}
			switch strings.ToUpper(rest[:2]) {
			case "AM":
				f.pm = false
			case "PM":
				f.pm = true
			default:
				return f, false
			}
			f.meridiemSet = true
			pos += 2
		}
	}
	if pos != len(input) {
		return f, false
	}
	if f.meridiemSet {
		f.hour %= 12
		if f.pm {
			f.hour += 12
		}
	}
	return f, true
}

// render formats t using the pattern's tokens.
func (p pattern) render(t time.Time, prof *locale.Profile) string {
	var b strings.Builder
	for _, tok := range p.tokens {
		switch tok.kind {
		case tokLiteral:
			b.WriteString(tok.literal)
		case tokYear4:
			fmt.Fprintf(&b, "%04d", t.Year())
		case tokYear2:
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case tokMonth:
			writeNumber(&b, int(t.Month()), tok.bare)
		case tokMonthName:
			b.WriteString(prof.MonthName(t.Month(), false))
		case tokMonthShort:
			b.WriteString(prof.MonthName(t.Month(), true))
		case tokDay:
			writeNumber(&b, t.Day(), tok.bare)
		case tokWeekdayName:
			b.WriteString(prof.WeekdayName(t.Weekday(), false))
		case tokWeekdayShort:
			b.WriteString(prof.WeekdayName(t.Weekday(), true))
		case tokHour24:
			writeNumber(&b, t.Hour(), tok.bare)
		case tokHour12:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			writeNumber(&b, h, tok.bare)
		case tokMinute:
			fmt.Fprintf(&b, "%02d", t.Minute())
		case tokSecond:
			fmt.Fprintf(&b, "%02d", t.Second())
		case tokMeridiem:
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		}
	}
	return b.String()
}

func writeNumber(b *strings.Builder, n int, bare bool) {
	if bare {
		b.WriteString(strconv.Itoa(n))
		return
	}
	fmt.Fprintf(b, "%02d", n)
}

// digits reads between minWidth and maxWidth ASCII digits, greedily.
func digits(s string, minWidth, maxWidth int) (int, int, bool) {
	w := 0
	for w < len(s) && w < maxWidth && s[w] >= '0' && s[w] <= '9' {
		w++
	}
	if w < minWidth {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[:w])
	if err != nil {
		return 0, 0, false
	}
	return n, w, true
}

// matchName finds the longest name that prefixes s, case-insensitively.
func matchName(s string, names []string) (int, int, bool) {
	best, bestLen := -1, 0
	for i, name := range names {
		if len(name) <= bestLen || len(s) < len(name) {
			continue
		}
		if strings.EqualFold(s[:len(name)], name) {
			best, bestLen = i, len(name)
		}
	}
	return best, bestLen, best >= 0
}

func monthTable(prof *locale.Profile, short bool) []string {
	if short {
		return prof.Months.Short
	}
	return prof.Months.Full
}

func weekdayTable(prof *locale.Profile, short bool) []string {
	if short {
		return prof.Weekdays.Short
	}
	return prof.Weekdays.Full
}
