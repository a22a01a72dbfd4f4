package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/vault"
)

// selectedMoment resolves --date/--relative and --time against the vault's
// locale and format overrides. Flags override the vault's settings.
func selectedMoment(cmd *cobra.Command, v *vault.Vault) (dates.Moment, error) {
	current := now()
	prof := v.Config.Profile()

	dateOverride := v.Config.DateOverride()
	if p := strings.TrimSpace(dateFormatFlag); p != "" {
		dateOverride = dates.ForceDatePattern(p)
	}

	timeOverride, err := v.Config.TimeOverride()
	if err != nil {
		return dates.Moment{}, err
	}
	if cmd.Flags().Changed("time-format") {
		timeOverride, err = dates.ParseTimeOverride(timeFormatFlag)
		if err != nil {
			return dates.Moment{}, err
		}
	}

	day := current
	switch {
	case cmd.Flags().Changed("relative"):
		day = dates.RelativeDate(current, relativeFlag)
	default:
		day, err = dates.ResolveDateArg(dateFlag, current, prof, dateOverride)
		if err != nil {
			return dates.Moment{}, err
		}
	}

	var tod *dates.TimeOfDay
	if strings.TrimSpace(timeFlag) != "" {
		parsed, err := dates.ParseTime(timeFlag, prof, timeOverride)
		if err != nil {
			return dates.Moment{}, err
		}
		tod = &parsed
	}

	return dates.Combine(day, tod, current), nil
}

// displayDate renders the selected day the way the vault writes dates.
func displayDate(v *vault.Vault, m dates.Moment) string {
	pattern, _ := v.Config.DateOverride().Pattern()
	return dates.FormatDate(m.Date(), pattern, v.Config.Profile())
}
