package dates

import "time"

// Day is the wire format for treatment and note dates.
const Day = "2006-01-02"

func FormatDay(t time.Time) string {
	return t.Format(Day)
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse(Day, s)
}

func Today() string {
	return FormatDay(time.Now())
}
