package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{tag: "en-US", want: "en"},
		{tag: "en_GB.UTF-8", want: "en"},
		{tag: "EN", want: "en"},
		{tag: "nb-NO", want: "no"},
		{tag: "nn_NO.UTF-8", want: "no"},
		{tag: "no", want: "no"},
		{tag: "de-DE", want: DefaultKey},
		{tag: "C", want: DefaultKey},
		{tag: "", want: DefaultKey},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.tag).Key)
		})
	}
}

func TestEveryProfileTriesISOFirst(t *testing.T) {
	for _, tag := range []string{"en", "no", DefaultKey} {
		p := Lookup(tag)
		require.NotEmpty(t, p.DatePatterns, tag)
		assert.Equal(t, ISODatePattern, p.DatePatterns[0], tag)
		assert.NotEmpty(t, p.TimePatterns, tag)
	}
}

func TestRegisterMovesISOToFront(t *testing.T) {
	p := &Profile{
		Key:          "x-test",
		DatePatterns: []string{"DD/MM/YYYY", ISODatePattern},
		TimePatterns: []string{"HH:mm"},
		Weekdays:     englishWeekdays,
		Months:       englishMonths,
	}
	require.NoError(t, Register(p))
	assert.Equal(t, []string{ISODatePattern, "DD/MM/YYYY"}, p.DatePatterns)
}

func TestRegisterRejectsIncompleteTables(t *testing.T) {
	err := Register(&Profile{
		Key:          "x-broken",
		TimePatterns: []string{"HH:mm"},
		Weekdays:     Names{Full: []string{"Mon"}, Short: []string{"M"}},
		Months:       englishMonths,
	})
	assert.Error(t, err)

	err = Register(&Profile{Key: "x-notimes", Weekdays: englishWeekdays, Months: englishMonths})
	assert.Error(t, err)
}

func TestNameTables(t *testing.T) {
	no := Lookup("nb")
	assert.Equal(t, "Lørdag", no.WeekdayName(time.Saturday, false))
	assert.Equal(t, "lørdag", no.LowerWeekdayName(time.Saturday, false))
	assert.Equal(t, "Okt", no.MonthName(time.October, true))
	assert.Equal(t, "oktober", no.LowerMonthName(time.October, false))

	en := Lookup("en")
	assert.Equal(t, "Wednesday", en.WeekdayName(time.Wednesday, false))
	assert.Equal(t, "wed", en.LowerWeekdayName(time.Wednesday, true))
	assert.Equal(t, "December", en.MonthName(time.December, false))
	assert.Equal(t, "dec", en.LowerMonthName(time.December, true))
}
