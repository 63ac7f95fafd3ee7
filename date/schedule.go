package date

import (
	"fmt"
	"time"

	"github.com/meenmo/filib/calendar"
	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/utils"
)

// RollRule selects the direction schedule dates are generated in.
type RollRule string

const (
	RollForward  RollRule = "FORWARD"
	RollBackward RollRule = "BACKWARD"
)

// Adjust rolls t under a business-day convention on the given calendar.
func Adjust(cal calendar.CalendarID, conv market.BusinessDayConvention, t time.Time) time.Time {
	switch conv {
	case market.Following:
		return calendar.AdjustFollowing(cal, t)
	case market.ModifiedFollowing:
		return calendar.AdjustModifiedFollowing(cal, t)
	case market.Preceding:
		return calendar.AdjustPreceding(cal, t)
	default:
		return t
	}
}

// Advance moves t by a period and rolls the result under conv.
func Advance(cal calendar.CalendarID, t time.Time, p Period, conv market.BusinessDayConvention) time.Time {
	return Adjust(cal, conv, p.AddTo(t))
}

// AccrualFraction computes the accrual fraction between two dates after
// rolling both under the supplied conventions.
func AccrualFraction(start, end time.Time, basis market.AccrualBasis, conv market.BusinessDayConvention, holiday market.HolidayConvention) float64 {
	cal := holiday.Calendar()
	s := Adjust(cal, conv, start)
	e := Adjust(cal, conv, end)
	return utils.YearFraction(s, e, string(basis))
}

// FixingPosition indicates when the floating rate for a period is observed.
type FixingPosition string

const (
	// FixingInArrears observes at the period end. The zero value defaults here.
	FixingInArrears FixingPosition = "IN_ARREARS"
	FixingInAdvance FixingPosition = "IN_ADVANCE"
)

// ScheduleRow is one accrual period with its payment and fixing dates.
type ScheduleRow struct {
	Start   time.Time
	End     time.Time
	Payment time.Time
	Fixing  time.Time
}

// ScheduleSpec describes how to generate accrual periods between two dates.
//
// Zero-valued convention fields fall back to the defaults applied by
// MakeSchedule: Following rolls on the USGS calendar, backward generation,
// zero payment offset, payment conventions mirroring the accrual side.
type ScheduleSpec struct {
	Start         time.Time
	End           time.Time
	AccrualPeriod Period

	BusinessDayConvention market.BusinessDayConvention
	HolidayConvention     market.HolidayConvention
	AccrualBasis          market.AccrualBasis

	Rule       RollRule
	EndOfMonth bool

	FixingPosition FixingPosition
	FixingOffset   Period

	PaymentOffset                Period
	PaymentBusinessDayConvention market.BusinessDayConvention
	PaymentHolidayConvention     market.HolidayConvention
}

func (s ScheduleSpec) withDefaults() ScheduleSpec {
	if s.BusinessDayConvention == "" {
		s.BusinessDayConvention = market.Following
	}
	if s.HolidayConvention == "" {
		s.HolidayConvention = market.HolidayUSGS
	}
	if s.Rule == "" {
		s.Rule = RollBackward
	}
	if s.FixingPosition == "" {
		s.FixingPosition = FixingInArrears
	}
	if s.PaymentBusinessDayConvention == "" {
		s.PaymentBusinessDayConvention = s.BusinessDayConvention
	}
	if s.PaymentHolidayConvention == "" {
		s.PaymentHolidayConvention = s.HolidayConvention
	}
	return s
}

// MakeSchedule builds ordered accrual periods between Start and End.
//
// An empty date range yields zero rows. End before Start is an error, as is
// a zero accrual period over a non-empty range.
func MakeSchedule(spec ScheduleSpec) ([]ScheduleRow, error) {
	spec = spec.withDefaults()

	if spec.End.Before(spec.Start) {
		return nil, fmt.Errorf("MakeSchedule: end %s before start %s",
			utils.FormatDate(spec.End), utils.FormatDate(spec.Start))
	}
	if spec.Start.Equal(spec.End) {
		return nil, nil
	}
	if spec.AccrualPeriod.IsZero() {
		return nil, fmt.Errorf("MakeSchedule: zero accrual period over non-empty range")
	}
	if spec.AccrualPeriod.Months < 0 || spec.AccrualPeriod.Days < 0 {
		return nil, fmt.Errorf("MakeSchedule: negative accrual period %s", spec.AccrualPeriod)
	}

	var unadjusted []time.Time
	if spec.Rule == RollForward {
		unadjusted = rollForward(spec)
	} else {
		unadjusted = rollBackward(spec)
	}
	if len(unadjusted) < 2 {
		return nil, nil
	}

	cal := spec.HolidayConvention.Calendar()
	payCal := spec.PaymentHolidayConvention.Calendar()

	rows := make([]ScheduleRow, 0, len(unadjusted)-1)
	for i := 0; i < len(unadjusted)-1; i++ {
		start := Adjust(cal, spec.BusinessDayConvention, unadjusted[i])
		end := Adjust(cal, spec.BusinessDayConvention, unadjusted[i+1])
		payment := end
		if !spec.PaymentOffset.IsZero() {
			payment = spec.PaymentOffset.AddTo(end)
		}
		payment = Adjust(payCal, spec.PaymentBusinessDayConvention, payment)

		fixingAnchor := start
		if spec.FixingPosition == FixingInArrears {
			fixingAnchor = end
		}
		fixing := Adjust(cal, market.Preceding, spec.FixingOffset.Negated().AddTo(fixingAnchor))

		rows = append(rows, ScheduleRow{Start: start, End: end, Payment: payment, Fixing: fixing})
	}
	return rows, nil
}

// rollForward generates unadjusted period boundaries from Start toward End.
func rollForward(spec ScheduleSpec) []time.Time {
	dates := []time.Time{spec.Start}
	current := spec.Start
	for {
		next := stepDate(current, spec.AccrualPeriod, spec.EndOfMonth)
		if next.After(spec.End) {
			// Close with a back stub unless the last boundary already hit End.
			if dates[len(dates)-1].Before(spec.End) {
				dates = append(dates, spec.End)
			}
			break
		}
		dates = append(dates, next)
		if next.Equal(spec.End) {
			break
		}
		current = next
	}
	return dates
}

// rollBackward generates unadjusted period boundaries from End toward Start,
// suppressing a front stub shorter than a week.
func rollBackward(spec ScheduleSpec) []time.Time {
	var dates []time.Time
	current := spec.End
	for current.After(spec.Start) {
		dates = append([]time.Time{current}, dates...)
		current = stepDate(current, spec.AccrualPeriod.Negated(), spec.EndOfMonth)
	}

	if len(dates) > 0 {
		diff := int(utils.Days(spec.Start, dates[0]))
		if diff > 0 && diff <= 7 {
			dates = dates[1:]
		}
	}
	return append([]time.Time{spec.Start}, dates...)
}

func stepDate(t time.Time, p Period, endOfMonth bool) time.Time {
	next := p.AddTo(t)
	if endOfMonth && p.Months != 0 {
		// Pin month-based rolls to month end when the seed date is at month end.
		if t.Day() == daysInMonth(t.Year(), t.Month()) {
			next = time.Date(next.Year(), next.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		}
	}
	return next
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
