package calendar

import "time"

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	// USGS is the US government securities (SIFMA) calendar.
	USGS   CalendarID = "USGS"
	TARGET CalendarID = "TARGET"
	GBLO   CalendarID = "GBLO"
	JPN    CalendarID = "JPN"
	// NONE treats every weekday as a business day.
	NONE CalendarID = "NONE"
)

// TARGET, GBLO and JPN are weekend-only until their holiday data is loaded.
var targetHolidays = map[string]struct{}{}
var gbloHolidays = map[string]struct{}{}
var jpnHolidays = map[string]struct{}{}
var usgsHolidays = map[string]struct{}{}

func init() {
	usgsHolidays = make(map[string]struct{}, len(usgsHolidayList))
	for _, h := range usgsHolidayList {
		usgsHolidays[h] = struct{}{}
	}
}

func isHoliday(cal CalendarID, t time.Time) bool {
	key := t.Format("2006-01-02")
	switch cal {
	case USGS:
		_, ok := usgsHolidays[key]
		return ok
	case TARGET:
		_, ok := targetHolidays[key]
		return ok
	case GBLO:
		_, ok := gbloHolidays[key]
		return ok
	case JPN:
		_, ok := jpnHolidays[key]
		return ok
	default:
		return false
	}
}

// IsBusinessDay checks weekends and holiday sets.
func IsBusinessDay(cal CalendarID, t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// AdjustFollowing applies the Following convention.
func AdjustFollowing(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AdjustPreceding applies the Preceding convention.
func AdjustPreceding(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// AdjustModifiedFollowing rolls forward but stays within the original month.
func AdjustModifiedFollowing(cal CalendarID, t time.Time) time.Time {
	origMonth := t.Month()
	t = AdjustFollowing(cal, t)
	if t.Month() != origMonth {
		t = AdjustPreceding(cal, t.AddDate(0, 0, -1))
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal CalendarID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func LastBusinessDayOfMonth(cal CalendarID, t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return AddBusinessDays(cal, nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func IsEndOfMonth(cal CalendarID, t time.Time) bool {
	return t.Equal(LastBusinessDayOfMonth(cal, t))
}
