package product

import (
	"time"

	"github.com/meenmo/filib/date"
)

const (
	rfrFutureVersion = 1
	rfrFutureType    = "PRODUCT_RFR_FUTURE"
)

// RFRFuture is a placeholder for an overnight-rate futures contract.
// It is excluded from the functional contract: construction records the
// terms but Accept reports ErrNotImplemented.
type RFRFuture struct {
	baseProduct
	termination      date.TermOrDate
	futureConvention string
	strike           float64
}

// NewRFRFuture records the contract terms without resolving them.
func NewRFRFuture(effectiveDate time.Time, termination date.TermOrDate, futureConvention string, amount, strike float64) *RFRFuture {
	last := effectiveDate
	if !termination.IsTerm() {
		last = termination.Date()
	}
	return &RFRFuture{
		baseProduct:      newBaseProduct(effectiveDate, last, amount, ""),
		termination:      termination,
		futureConvention: futureConvention,
		strike:           strike,
	}
}

func (p *RFRFuture) Version() int        { return rfrFutureVersion }
func (p *RFRFuture) ProductType() string { return rfrFutureType }

func (p *RFRFuture) FutureConvention() string { return p.futureConvention }
func (p *RFRFuture) Strike() float64          { return p.strike }

func (p *RFRFuture) Accept(v Visitor) (any, error) {
	return nil, ErrNotImplemented
}
