package product

import (
	"fmt"
	"time"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/utils"
)

const (
	fixedAccruedVersion = 1
	fixedAccruedType    = "PRODUCT_FIXED_ACCRUED"
)

// FixedAccruedParams describes a fixed accrued cashflow.
//
// Zero-valued optional fields take defaults: payment on the termination
// date, Following rolls on the USGS calendar.
type FixedAccruedParams struct {
	EffectiveDate   time.Time
	TerminationDate time.Time
	Currency        market.Currency
	Notional        float64
	AccrualBasis    market.AccrualBasis

	PaymentDate           time.Time
	BusinessDayConvention market.BusinessDayConvention
	HolidayConvention     market.HolidayConvention
}

// FixedAccrued is a notional amount accrued over a date span under a
// day-count basis. The accrued amount is computed once at construction.
type FixedAccrued struct {
	baseProduct
	accrualBasis          market.AccrualBasis
	businessDayConvention market.BusinessDayConvention
	holidayConvention     market.HolidayConvention
	paymentDate           time.Time
	accrued               float64
}

// NewFixedAccrued constructs a fixed accrued cashflow over
// [EffectiveDate, TerminationDate].
func NewFixedAccrued(p FixedAccruedParams) (*FixedAccrued, error) {
	if p.TerminationDate.Before(p.EffectiveDate) {
		return nil, fmt.Errorf("%w: termination %s before effective %s", ErrConfiguration,
			utils.FormatDate(p.TerminationDate), utils.FormatDate(p.EffectiveDate))
	}
	if p.BusinessDayConvention == "" {
		p.BusinessDayConvention = market.Following
	}
	if p.HolidayConvention == "" {
		p.HolidayConvention = market.HolidayUSGS
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = p.TerminationDate
	}

	accrued := p.Notional * date.AccrualFraction(
		p.EffectiveDate, p.TerminationDate, p.AccrualBasis,
		p.BusinessDayConvention, p.HolidayConvention)

	return &FixedAccrued{
		baseProduct:           newBaseProduct(p.EffectiveDate, p.TerminationDate, p.Notional, p.Currency),
		accrualBasis:          p.AccrualBasis,
		businessDayConvention: p.BusinessDayConvention,
		holidayConvention:     p.HolidayConvention,
		paymentDate:           p.PaymentDate,
		accrued:               accrued,
	}, nil
}

func (p *FixedAccrued) Version() int        { return fixedAccruedVersion }
func (p *FixedAccrued) ProductType() string { return fixedAccruedType }

func (p *FixedAccrued) EffectiveDate() time.Time   { return p.firstDate }
func (p *FixedAccrued) TerminationDate() time.Time { return p.lastDate }
func (p *FixedAccrued) PaymentDate() time.Time     { return p.paymentDate }

func (p *FixedAccrued) AccrualBasis() market.AccrualBasis { return p.accrualBasis }

func (p *FixedAccrued) BusinessDayConvention() market.BusinessDayConvention {
	return p.businessDayConvention
}

func (p *FixedAccrued) HolidayConvention() market.HolidayConvention {
	return p.holidayConvention
}

// Accrued is the notional scaled by the accrual fraction of the span.
func (p *FixedAccrued) Accrued() float64 { return p.accrued }

func (p *FixedAccrued) Accept(v Visitor) (any, error) {
	return v.VisitFixedAccrued(p)
}
