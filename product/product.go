// Package product models fixed-income instruments as compositions of atomic
// cashflow-bearing units. Every entity is constructed exactly once from
// validated inputs and is read-only thereafter; changing a composition means
// rebuilding it.
package product

import (
	"time"

	"github.com/meenmo/filib/market"
)

// LongOrShort encodes the direction implied by the sign of a notional.
type LongOrShort string

const (
	Long  LongOrShort = "LONG"
	Short LongOrShort = "SHORT"
)

func longOrShortOf(notional float64) LongOrShort {
	if notional >= 0 {
		return Long
	}
	return Short
}

// PayOrReceive is the contractual direction of the fixed leg of a swap.
type PayOrReceive string

const (
	Pay     PayOrReceive = "PAY"
	Receive PayOrReceive = "RECEIVE"
)

// Product is the atomic priceable unit: a fixed date span, a signed
// notional, a currency, and the visitor export hook.
type Product interface {
	FirstDate() time.Time
	LastDate() time.Time
	Notional() float64
	Currency() market.Currency
	LongOrShort() LongOrShort
	Version() int
	ProductType() string

	// Accept dispatches to exactly one type-specific visitor handler and
	// returns its result unchanged.
	Accept(v Visitor) (any, error)
}

// Visitor is the capability contract external valuation and reporting code
// implements: one handler per functional product variant. Adding a variant
// means adding a handler here, which every implementation must then supply.
type Visitor interface {
	VisitBulletCashflow(p *BulletCashflow) (any, error)
	VisitFixedAccrued(p *FixedAccrued) (any, error)
	VisitOvernightIndexCashflow(p *OvernightIndexCashflow) (any, error)
	VisitRFRSwap(p *RFRSwap) (any, error)
}

// baseProduct carries the fields common to every variant. All derived
// values are computed eagerly at construction.
type baseProduct struct {
	firstDate   time.Time
	lastDate    time.Time
	notional    float64
	currency    market.Currency
	longOrShort LongOrShort
}

func newBaseProduct(first, last time.Time, notional float64, ccy market.Currency) baseProduct {
	return baseProduct{
		firstDate:   first,
		lastDate:    last,
		notional:    notional,
		currency:    ccy,
		longOrShort: longOrShortOf(notional),
	}
}

func (b baseProduct) FirstDate() time.Time      { return b.firstDate }
func (b baseProduct) LastDate() time.Time       { return b.lastDate }
func (b baseProduct) Notional() float64         { return b.notional }
func (b baseProduct) Currency() market.Currency { return b.currency }
func (b baseProduct) LongOrShort() LongOrShort  { return b.longOrShort }
