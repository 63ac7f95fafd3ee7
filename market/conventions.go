package market

import (
	"fmt"
	"strings"

	"github.com/meenmo/filib/calendar"
)

// AccrualBasis is a day count convention used to compute accrual fractions.
type AccrualBasis string

const (
	Act360  AccrualBasis = "ACT/360"
	Act365F AccrualBasis = "ACT/365F"
	ActAct  AccrualBasis = "ACT/ACT"
	Dc30360 AccrualBasis = "30/360"
	DcE360  AccrualBasis = "30E/360"
)

// ParseAccrualBasis validates a day count string.
func ParseAccrualBasis(s string) (AccrualBasis, error) {
	switch b := AccrualBasis(strings.ToUpper(strings.TrimSpace(s))); b {
	case Act360, Act365F, ActAct, Dc30360, DcE360:
		return b, nil
	default:
		return "", fmt.Errorf("ParseAccrualBasis: unknown basis %q", s)
	}
}

// BusinessDayConvention is a rule for rolling dates off non-business days.
type BusinessDayConvention string

const (
	Following         BusinessDayConvention = "F"
	ModifiedFollowing BusinessDayConvention = "MF"
	Preceding         BusinessDayConvention = "P"
	Unadjusted        BusinessDayConvention = "NONE"
)

// ParseBusinessDayConvention validates a roll convention string.
func ParseBusinessDayConvention(s string) (BusinessDayConvention, error) {
	switch c := BusinessDayConvention(strings.ToUpper(strings.TrimSpace(s))); c {
	case Following, ModifiedFollowing, Preceding, Unadjusted:
		return c, nil
	default:
		return "", fmt.Errorf("ParseBusinessDayConvention: unknown convention %q", s)
	}
}

// HolidayConvention names the holiday calendar governing date rolls.
type HolidayConvention string

const (
	HolidayUSGS   HolidayConvention = "USGS"
	HolidayTARGET HolidayConvention = "TARGET"
	HolidayGBLO   HolidayConvention = "GBLO"
	HolidayJPN    HolidayConvention = "JPN"
	HolidayNone   HolidayConvention = "NONE"
)

// Calendar maps the holiday convention onto its calendar.
func (h HolidayConvention) Calendar() calendar.CalendarID {
	switch h {
	case HolidayUSGS:
		return calendar.USGS
	case HolidayTARGET:
		return calendar.TARGET
	case HolidayGBLO:
		return calendar.GBLO
	case HolidayJPN:
		return calendar.JPN
	default:
		return calendar.NONE
	}
}

// CompoundingMethod is the rule for combining daily index fixings over a period.
type CompoundingMethod string

const (
	Compound CompoundingMethod = "COMPOUND"
	Average  CompoundingMethod = "AVERAGE"
)

// ParseCompoundingMethod validates a compounding method string.
func ParseCompoundingMethod(s string) (CompoundingMethod, error) {
	switch m := CompoundingMethod(strings.ToUpper(strings.TrimSpace(s))); m {
	case Compound, Average:
		return m, nil
	default:
		return "", fmt.Errorf("ParseCompoundingMethod: unknown method %q", s)
	}
}
