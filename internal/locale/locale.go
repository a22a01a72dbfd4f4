// Package locale holds the per-locale tables used to parse and render dates:
// candidate date/time patterns, weekday and month names, and the labels used
// for table-mode journal headers.
//
// Profiles are looked up through a registry keyed by language, so adding a
// locale is a matter of registering data rather than adding branches.
package locale

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ISODatePattern is the unambiguous numeric date pattern every profile tries first.
const ISODatePattern = "YYYY-MM-DD"

// DefaultKey is the registry key of the fallback profile.
const DefaultKey = "default"

// TableHeader holds the translated column labels for table-mode journals.
type TableHeader struct {
	Time    string `yaml:"time" json:"time"`
	Content string `yaml:"content" json:"content"`
}

// Names is a set of full and abbreviated names in capitalized form.
// Lowercase variants are derived when the profile is registered.
type Names struct {
	Full  []string
	Short []string

	fullLower  []string
	shortLower []string
}

// Profile describes how one locale writes dates and times.
type Profile struct {
	// Key is the registry key (e.g. "en", "no", "default").
	Key string

	// DatePatterns are tried in order when parsing a date.
	DatePatterns []string

	// TimePatterns are tried when parsing a time. 24-hour patterns are always
	// attempted before 12-hour ones regardless of their order here.
	TimePatterns []string

	TableHeader TableHeader

	// Weekdays is indexed by time.Weekday (Sunday first).
	Weekdays Names

	// Months is indexed by time.Month - 1.
	Months Names

	tag language.Tag
}

// WeekdayName returns the capitalized weekday name.
func (p *Profile) WeekdayName(d time.Weekday, short bool) string {
	if short {
		return p.Weekdays.Short[d]
	}
	return p.Weekdays.Full[d]
}

// LowerWeekdayName returns the lowercase weekday name.
func (p *Profile) LowerWeekdayName(d time.Weekday, short bool) string {
	if short {
		return p.Weekdays.shortLower[d]
	}
	return p.Weekdays.fullLower[d]
}

// MonthName returns the capitalized month name.
func (p *Profile) MonthName(m time.Month, short bool) string {
	if short {
		return p.Months.Short[m-1]
	}
	return p.Months.Full[m-1]
}

// LowerMonthName returns the lowercase month name.
func (p *Profile) LowerMonthName(m time.Month, short bool) string {
	if short {
		return p.Months.shortLower[m-1]
	}
	return p.Months.fullLower[m-1]
}

// Tag returns the language tag the profile was registered with.
func (p *Profile) Tag() language.Tag {
	return p.tag
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Profile{}
)

// Register validates p, derives its lowercase name tables and makes it
// available under its key and every alias.
//
// The ISO date pattern is moved to (or inserted at) the front of the date
// patterns, since it is unambiguous across locales.
func Register(p *Profile, aliases ...string) error {
	if p == nil || strings.TrimSpace(p.Key) == "" {
		return fmt.Errorf("locale profile requires a key")
	}
	if len(p.TimePatterns) == 0 {
		return fmt.Errorf("locale %s: time patterns must not be empty", p.Key)
	}
	if len(p.Weekdays.Full) != 7 || len(p.Weekdays.Short) != 7 {
		return fmt.Errorf("locale %s: weekday tables need 7 entries", p.Key)
	}
	if len(p.Months.Full) != 12 || len(p.Months.Short) != 12 {
		return fmt.Errorf("locale %s: month tables need 12 entries", p.Key)
	}

	p.DatePatterns = isoFirst(p.DatePatterns)

	if p.Key == DefaultKey {
		p.tag = language.Und
	} else if tag, err := language.Parse(p.Key); err == nil {
		p.tag = tag
	} else {
		return fmt.Errorf("locale %s: %w", p.Key, err)
	}

	lower := cases.Lower(p.tag)
	p.Weekdays.fullLower = mapStrings(p.Weekdays.Full, lower.String)
	p.Weekdays.shortLower = mapStrings(p.Weekdays.Short, lower.String)
	p.Months.fullLower = mapStrings(p.Months.Full, lower.String)
	p.Months.shortLower = mapStrings(p.Months.Short, lower.String)

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(p.Key)] = p
	for _, alias := range aliases {
		registry[strings.ToLower(alias)] = p
	}
	return nil
}

// MustRegister is Register for package-level tables; it panics on invalid data.
func MustRegister(p *Profile, aliases ...string) {
	if err := Register(p, aliases...); err != nil {
		panic(err)
	}
}

// Lookup returns the profile for a locale tag such as "en-US", "nb_NO.UTF-8"
// or "no". Unknown or unparseable tags resolve to the default profile.
func Lookup(tag string) *Profile {
	registryMu.RLock()
	defer registryMu.RUnlock()

	normalized := Normalize(tag)
	if p, ok := registry[normalized]; ok {
		return p
	}

	if parsed, err := language.Parse(normalized); err == nil {
		base, _ := parsed.Base()
		if p, ok := registry[base.String()]; ok {
			return p
		}
	}

	// language.Parse rejects some POSIX-ish values; fall back to the prefix.
	if prefix, _, ok := strings.Cut(normalized, "-"); ok {
		if p, ok := registry[prefix]; ok {
			return p
		}
	}

	return registry[DefaultKey]
}

// Default returns the fallback profile.
func Default() *Profile {
	return Lookup(DefaultKey)
}

// Normalize turns environment-style locale values into BCP 47-ish tags:
// "en_US.UTF-8" -> "en-us", "nb_NO@euro" -> "nb-no".
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	return strings.ToLower(tag)
}

func isoFirst(patterns []string) []string {
	out := make([]string, 0, len(patterns)+1)
	out = append(out, ISODatePattern)
	for _, p := range patterns {
		if p != ISODatePattern {
			out = append(out, p)
		}
	}
	return out
}

func mapStrings(in []string, fn func(string) string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fn(s)
	}
	return out
}
