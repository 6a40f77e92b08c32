package date

import "time"

// Season is one of the four meteorological seasons of the northern hemisphere.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// SeasonOf maps a month to its season: March to May is spring, June to
// August summer, September to November autumn, December to February winter.
func SeasonOf(m time.Month) Season {
	switch m {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Autumn
	default:
		return Winter
	}
}

// CurrentSeason returns the season of the current month.
func CurrentSeason() Season {
	return SeasonOf(now().Month())
}
