package stats

import (
	"fmt"

	"github.com/limbo/dailyos/pkg/entity"
)

// Duration is a minute count split into whole hours and the remaining minutes.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func SplitMinutes(total int) Duration {
	return Duration{
		Hours:   total / 60,
		Minutes: total % 60,
	}
}

// String renders "2h 5m", or "45m" when there are no whole hours.
func (d Duration) String() string {
	if d.Hours > 0 {
		return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
	}
	return fmt.Sprintf("%dm", d.Minutes)
}

func (d Duration) Total() int {
	return d.Hours*60 + d.Minutes
}

func FormatMinutes(total int) string {
	return SplitMinutes(total).String()
}

var periodNouns = map[entity.ChoreFrequency]string{
	entity.ChoreDaily:   "day",
	entity.ChoreWeekly:  "week",
	entity.ChoreMonthly: "month",
}

// FormatPerPeriod renders a chore estimate such as "1h 0m per week".
// Unknown frequencies fall back to the bare duration.
func FormatPerPeriod(minutes int, frequency entity.ChoreFrequency) string {
	noun, ok := periodNouns[frequency]
	if !ok {
		return FormatMinutes(minutes)
	}
	return FormatMinutes(minutes) + " per " + noun
}
