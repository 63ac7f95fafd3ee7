package date

import (
	"fmt"
	"time"

	"github.com/meenmo/filib/calendar"
	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/utils"
)

// TermOrDate holds either an explicit termination date or a tenor
// to be resolved against a fixing calendar.
type TermOrDate struct {
	date   time.Time
	term   Period
	isTerm bool
}

// OnDate wraps an explicit date.
func OnDate(t time.Time) TermOrDate {
	return TermOrDate{date: t}
}

// OnTerm wraps a tenor.
func OnTerm(p Period) TermOrDate {
	return TermOrDate{term: p, isTerm: true}
}

// ParseTermOrDate accepts either an ISO-8601 date or a tenor string.
func ParseTermOrDate(s string) (TermOrDate, error) {
	if d, err := utils.ParseDate(s); err == nil {
		return OnDate(d), nil
	}
	p, err := ParsePeriod(s)
	if err != nil {
		return TermOrDate{}, fmt.Errorf("ParseTermOrDate: %q is neither a date nor a tenor", s)
	}
	return OnTerm(p), nil
}

// IsTerm reports whether the value is tenor-based.
func (td TermOrDate) IsTerm() bool {
	return td.isTerm
}

// Date returns the explicit date. Zero when the value is tenor-based.
func (td TermOrDate) Date() time.Time {
	return td.date
}

// Term returns the tenor. Zero when the value is date-based.
func (td TermOrDate) Term() Period {
	return td.term
}

// Resolve returns the explicit date, or advances effective by the tenor
// on cal under conv when tenor-based.
func (td TermOrDate) Resolve(effective time.Time, cal calendar.CalendarID, conv market.BusinessDayConvention) time.Time {
	if !td.isTerm {
		return td.date
	}
	return Advance(cal, effective, td.term, conv)
}

func (td TermOrDate) String() string {
	if td.isTerm {
		return td.term.String()
	}
	return utils.FormatDate(td.date)
}
