package product

import (
	"fmt"
	"time"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
)

// InterestRateStreamParams describes a schedule-driven sequence of cashflow
// units. At least one of FixedRate and FloatIndex must be supplied.
//
// Zero-valued optional fields take defaults: Following rolls on the USGS
// calendar, COMPOUND compounding, zero payment offset, fixing in arrears,
// backward schedule generation, payment conventions mirroring the accrual
// side.
type InterestRateStreamParams struct {
	EffectiveDate   time.Time
	TerminationDate time.Time
	AccrualPeriod   date.Period
	Notional        float64
	Currency        market.Currency
	AccrualBasis    market.AccrualBasis

	BusinessDayConvention market.BusinessDayConvention
	HolidayConvention     market.HolidayConvention

	// FixedRate, when set, emits one FixedAccrued unit per period.
	FixedRate *float64
	// FloatIndex, when non-empty, emits one OvernightIndexCashflow unit per period.
	FloatIndex string

	OISCompounding market.CompoundingMethod
	OISSpread      float64

	FixingPosition date.FixingPosition
	FixingOffset   date.Period

	PaymentOffset                date.Period
	PaymentBusinessDayConvention market.BusinessDayConvention
	PaymentHolidayConvention     market.HolidayConvention

	Rule       date.RollRule
	EndOfMonth bool
}

// InterestRateStream is a portfolio built from one schedule traversal:
// per period one fixed and/or one floating unit, each with weight 1, in
// chronological order.
type InterestRateStream struct {
	Portfolio
}

// NewInterestRateStream builds the stream. The registry is consulted only
// when FloatIndex is set; an empty schedule yields an empty stream.
func NewInterestRateStream(reg *market.IndexRegistry, p InterestRateStreamParams) (*InterestRateStream, error) {
	if p.FixedRate == nil && p.FloatIndex == "" {
		return nil, fmt.Errorf("%w: neither fixed rate nor floating index supplied", ErrConfiguration)
	}

	rows, err := date.MakeSchedule(date.ScheduleSpec{
		Start:                        p.EffectiveDate,
		End:                          p.TerminationDate,
		AccrualPeriod:                p.AccrualPeriod,
		BusinessDayConvention:        p.BusinessDayConvention,
		HolidayConvention:            p.HolidayConvention,
		AccrualBasis:                 p.AccrualBasis,
		Rule:                         p.Rule,
		EndOfMonth:                   p.EndOfMonth,
		FixingPosition:               p.FixingPosition,
		FixingOffset:                 p.FixingOffset,
		PaymentOffset:                p.PaymentOffset,
		PaymentBusinessDayConvention: p.PaymentBusinessDayConvention,
		PaymentHolidayConvention:     p.PaymentHolidayConvention,
	})
	if err != nil {
		return nil, err
	}

	var products []Product
	var weights []float64

	for _, row := range rows {
		if p.FixedRate != nil {
			// The unit notional carries the rate; FixedAccrued then scales
			// it by the accrual fraction, yielding the coupon amount.
			fixed, err := NewFixedAccrued(FixedAccruedParams{
				EffectiveDate:         row.Start,
				TerminationDate:       row.End,
				Currency:              p.Currency,
				Notional:              p.Notional * (*p.FixedRate),
				AccrualBasis:          p.AccrualBasis,
				PaymentDate:           row.Payment,
				BusinessDayConvention: p.BusinessDayConvention,
				HolidayConvention:     p.HolidayConvention,
			})
			if err != nil {
				return nil, err
			}
			products = append(products, fixed)
			weights = append(weights, 1)
		}

		if p.FloatIndex != "" {
			floating, err := NewOvernightIndexCashflow(reg, OvernightIndexCashflowParams{
				EffectiveDate: row.Start,
				Termination:   date.OnDate(row.End),
				Index:         p.FloatIndex,
				Spread:        p.OISSpread,
				Notional:      p.Notional,
				Compounding:   p.OISCompounding,
				PaymentDate:   row.Payment,
			})
			if err != nil {
				return nil, err
			}
			products = append(products, floating)
			weights = append(weights, 1)
		}
	}

	pf, err := NewPortfolio(products, weights)
	if err != nil {
		return nil, err
	}
	return &InterestRateStream{Portfolio: *pf}, nil
}

// NumCashflows returns the number of cashflow units in the stream.
func (s *InterestRateStream) NumCashflows() int {
	return s.NumElements()
}

// Cashflow returns the i-th cashflow unit.
func (s *InterestRateStream) Cashflow(i int) (Product, error) {
	p, _, err := s.Element(i)
	return p, err
}
