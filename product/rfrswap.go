package product

import (
	"time"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
)

const (
	rfrSwapVersion = 1
	rfrSwapType    = "PRODUCT_RFR_SWAP"
)

// RFRSwapParams describes a fixed-vs-overnight swap.
//
// Zero-valued optional fields take defaults: the floating leg accrual
// period falls back to AccrualPeriod, rolls are Following on the USGS
// calendar, compounding is COMPOUND.
type RFRSwapParams struct {
	EffectiveDate time.Time
	Termination   date.TermOrDate
	PaymentOffset date.Period
	Index         string
	FixedRate     float64
	PayOrReceive  PayOrReceive
	Notional      float64
	AccrualPeriod date.Period
	AccrualBasis  market.AccrualBasis

	FloatingLegAccrualPeriod date.Period
	PayBusinessDayConvention market.BusinessDayConvention
	PayHolidayConvention     market.HolidayConvention
	Spread                   float64
	Compounding              market.CompoundingMethod
}

// RFRSwap composes a fixed and a floating InterestRateStream over the same
// span. Paying fixed gives the fixed leg positive-signed notional and the
// floating leg the negated value; receiving flips both.
type RFRSwap struct {
	baseProduct
	indexName   string
	index       market.OvernightIndex
	termination date.TermOrDate

	fixedRate     float64
	spread        float64
	payOrReceive  PayOrReceive
	paymentOffset date.Period
	accrualBasis  market.AccrualBasis
	compounding   market.CompoundingMethod

	accrualPeriod            date.Period
	floatingLegAccrualPeriod date.Period
	payBusinessDayConvention market.BusinessDayConvention
	payHolidayConvention     market.HolidayConvention

	fixedLeg    *InterestRateStream
	floatingLeg *InterestRateStream
}

// NewRFRSwap resolves the floating index and termination, then builds both
// legs. A term-based termination is resolved on the index's fixing calendar
// under the index's roll convention.
func NewRFRSwap(reg *market.IndexRegistry, p RFRSwapParams) (*RFRSwap, error) {
	ix, err := reg.Get(p.Index)
	if err != nil {
		return nil, err
	}
	if p.PayBusinessDayConvention == "" {
		p.PayBusinessDayConvention = market.Following
	}
	if p.PayHolidayConvention == "" {
		p.PayHolidayConvention = market.HolidayUSGS
	}
	if p.Compounding == "" {
		p.Compounding = market.Compound
	}
	if p.FloatingLegAccrualPeriod.IsZero() {
		p.FloatingLegAccrualPeriod = p.AccrualPeriod
	}

	termination := p.Termination.Resolve(p.EffectiveDate, ix.FixingCalendar, ix.BusinessDayConvention)

	fixedLegSign := 1.0
	if p.PayOrReceive != Pay {
		fixedLegSign = -1.0
	}

	floatingLeg, err := NewInterestRateStream(reg, InterestRateStreamParams{
		EffectiveDate:                p.EffectiveDate,
		TerminationDate:              termination,
		AccrualPeriod:                p.FloatingLegAccrualPeriod,
		Notional:                     p.Notional * -fixedLegSign,
		Currency:                     ix.Currency,
		AccrualBasis:                 p.AccrualBasis,
		BusinessDayConvention:        p.PayBusinessDayConvention,
		HolidayConvention:            p.PayHolidayConvention,
		FloatIndex:                   p.Index,
		OISCompounding:               p.Compounding,
		OISSpread:                    p.Spread,
		PaymentOffset:                p.PaymentOffset,
		PaymentBusinessDayConvention: p.PayBusinessDayConvention,
		PaymentHolidayConvention:     p.PayHolidayConvention,
	})
	if err != nil {
		return nil, err
	}

	fixedRate := p.FixedRate
	fixedLeg, err := NewInterestRateStream(reg, InterestRateStreamParams{
		EffectiveDate:                p.EffectiveDate,
		TerminationDate:              termination,
		AccrualPeriod:                p.AccrualPeriod,
		Notional:                     p.Notional * fixedLegSign,
		Currency:                     ix.Currency,
		AccrualBasis:                 p.AccrualBasis,
		BusinessDayConvention:        p.PayBusinessDayConvention,
		HolidayConvention:            p.PayHolidayConvention,
		FixedRate:                    &fixedRate,
		PaymentOffset:                p.PaymentOffset,
		PaymentBusinessDayConvention: p.PayBusinessDayConvention,
		PaymentHolidayConvention:     p.PayHolidayConvention,
	})
	if err != nil {
		return nil, err
	}

	return &RFRSwap{
		baseProduct:              newBaseProduct(p.EffectiveDate, termination, p.Notional, ix.Currency),
		indexName:                p.Index,
		index:                    ix,
		termination:              p.Termination,
		fixedRate:                p.FixedRate,
		spread:                   p.Spread,
		payOrReceive:             p.PayOrReceive,
		paymentOffset:            p.PaymentOffset,
		accrualBasis:             p.AccrualBasis,
		compounding:              p.Compounding,
		accrualPeriod:            p.AccrualPeriod,
		floatingLegAccrualPeriod: p.FloatingLegAccrualPeriod,
		payBusinessDayConvention: p.PayBusinessDayConvention,
		payHolidayConvention:     p.PayHolidayConvention,
		fixedLeg:                 fixedLeg,
		floatingLeg:              floatingLeg,
	}, nil
}

func (p *RFRSwap) Version() int        { return rfrSwapVersion }
func (p *RFRSwap) ProductType() string { return rfrSwapType }

func (p *RFRSwap) EffectiveDate() time.Time   { return p.firstDate }
func (p *RFRSwap) TerminationDate() time.Time { return p.lastDate }

func (p *RFRSwap) IndexName() string            { return p.indexName }
func (p *RFRSwap) Index() market.OvernightIndex { return p.index }
func (p *RFRSwap) FixedRate() float64           { return p.fixedRate }
func (p *RFRSwap) Spread() float64              { return p.spread }
func (p *RFRSwap) PayOrReceive() PayOrReceive   { return p.payOrReceive }
func (p *RFRSwap) PaymentOffset() date.Period   { return p.paymentOffset }

func (p *RFRSwap) AccrualBasis() market.AccrualBasis           { return p.accrualBasis }
func (p *RFRSwap) CompoundingMethod() market.CompoundingMethod { return p.compounding }
func (p *RFRSwap) AccrualPeriod() date.Period                  { return p.accrualPeriod }
func (p *RFRSwap) FloatingLegAccrualPeriod() date.Period       { return p.floatingLegAccrualPeriod }

func (p *RFRSwap) PayBusinessDayConvention() market.BusinessDayConvention {
	return p.payBusinessDayConvention
}

func (p *RFRSwap) PayHolidayConvention() market.HolidayConvention {
	return p.payHolidayConvention
}

// FixedLeg returns the fixed-rate stream.
func (p *RFRSwap) FixedLeg() *InterestRateStream { return p.fixedLeg }

// FloatingLeg returns the overnight-index stream.
func (p *RFRSwap) FloatingLeg() *InterestRateStream { return p.floatingLeg }

// FixedLegCashflow returns the i-th fixed leg unit.
func (p *RFRSwap) FixedLegCashflow(i int) (Product, error) {
	return p.fixedLeg.Cashflow(i)
}

// FloatingLegCashflow returns the i-th floating leg unit.
func (p *RFRSwap) FloatingLegCashflow(i int) (Product, error) {
	return p.floatingLeg.Cashflow(i)
}

func (p *RFRSwap) Accept(v Visitor) (any, error) {
	return v.VisitRFRSwap(p)
}
