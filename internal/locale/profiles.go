package locale

var (
	englishWeekdays = Names{
		Full:  []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		Short: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}
	englishMonths = Names{
		Full: []string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		Short: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}

	// Both families are always listed; ParseTime orders 24-hour first.
	commonTimePatterns = []string{
		"HH:mm",
		"HH:mm:ss",
		"h:mm a",
		"h:mm:ss a",
		"h:mma",
		"h:mm:ssa",
	}
)

func init() {
	MustRegister(&Profile{
		Key: "en",
		DatePatterns: []string{
			ISODatePattern,
			"MM/DD/YYYY",
			"MM-DD-YYYY",
			"MMMM D, YYYY",
			"MMM D, YYYY",
		},
		TimePatterns: commonTimePatterns,
		TableHeader:  TableHeader{Time: "Time", Content: "Content"},
		Weekdays:     englishWeekdays,
		Months:       englishMonths,
	})

	MustRegister(&Profile{
		Key: "no",
		DatePatterns: []string{
			ISODatePattern,
			"DD.MM.YYYY",
			"DD/MM/YYYY",
			"DD-MM-YYYY",
			"D. MMMM YYYY",
			"D. MMM YYYY",
		},
		TimePatterns: commonTimePatterns,
		TableHeader:  TableHeader{Time: "Tid", Content: "Innhold"},
		Weekdays: Names{
			Full:  []string{"Søndag", "Mandag", "Tirsdag", "Onsdag", "Torsdag", "Fredag", "Lørdag"},
			Short: []string{"Søn", "Man", "Tir", "Ons", "Tor", "Fre", "Lør"},
		},
		Months: Names{
			Full: []string{"Januar", "Februar", "Mars", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Desember"},
			Short: []string{"Jan", "Feb", "Mar", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Des"},
		},
	}, "nb", "nn")

	MustRegister(&Profile{
		Key: DefaultKey,
		DatePatterns: []string{
			ISODatePattern,
			"MM/DD/YYYY",
			"DD/MM/YYYY",
		},
		TimePatterns: commonTimePatterns,
		TableHeader:  TableHeader{Time: "Time", Content: "Content"},
		Weekdays:     englishWeekdays,
		Months:       englishMonths,
	})
}
