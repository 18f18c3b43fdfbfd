package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Day formats accepted by ToDay.
const (
	DayFormatLong = "long"
	DayFormatDate = "date"
	DayFormatTime = "time"
	DayFormatFrom = "from"
	DayFormatTo   = "to"
)

const (
	layoutLong = "2006-01-02 15:04"
	layoutDate = "2006-01-02"
	layoutTime = "15:04:05"
	layoutFull = "2006-01-02 15:04:05"
)

// Time units accepted by TimeIn.
const (
	UnitYear        = "y"
	UnitMonth       = "M"
	UnitDay         = "d"
	UnitHour        = "h"
	UnitMinute      = "m"
	UnitSecond      = "s"
	UnitMillisecond = "ms"
)

// ToDuration returns the humanized duration, e.g. "3 hours".
func ToDuration(d time.Duration) string {
	var start time.Time
	return strings.TrimSpace(humanize.RelTime(start, start.Add(d), "", ""))
}

// TimeIn reports whether the current time is past the t moved by the amount of the unit.
func TimeIn(t time.Time, amount int, unit string) (bool, error) {
	return timeIn(t, amount, unit, time.Now())
}

func timeIn(t time.Time, amount int, unit string, now time.Time) (bool, error) {
	var deadline time.Time
	switch unit {
	case UnitYear:
		deadline = t.AddDate(amount, 0, 0)
	case UnitMonth:
		deadline = t.AddDate(0, amount, 0)
	case UnitDay:
		deadline = t.AddDate(0, 0, amount)
	case UnitHour:
		deadline = t.Add(time.Duration(amount) * time.Hour)
	case UnitMinute:
		deadline = t.Add(time.Duration(amount) * time.Minute)
	case UnitSecond:
		deadline = t.Add(time.Duration(amount) * time.Second)
	case UnitMillisecond:
		deadline = t.Add(time.Duration(amount) * time.Millisecond)
	default:
		return false, errors.Errorf("unsupported time unit:%s", unit)
	}

	return now.Unix() > deadline.Unix(), nil
}

// ToDay formats the time with one of the day formats. Unknown formats produce the full timestamp.
func ToDay(t time.Time, dayFormat string) string {
	return toDay(t, dayFormat, time.Now())
}

func toDay(t time.Time, dayFormat string, now time.Time) string {
	switch dayFormat {
	case DayFormatLong:
		return t.Format(layoutLong)
	case DayFormatDate:
		return t.Format(layoutDate)
	case DayFormatTime:
		return t.Format(layoutTime)
	case DayFormatFrom:
		return humanize.RelTime(t, now, "ago", "from now")
	case DayFormatTo:
		return humanize.RelTime(now, t, "ago", "from now")
	default:
		return t.Format(layoutFull)
	}
}
