package product

import (
	"time"

	"github.com/meenmo/filib/market"
)

const (
	bulletCashflowVersion = 1
	bulletCashflowType    = "PRODUCT_BULLET_CASHFLOW"
)

// BulletCashflow is a single payment of a notional amount on one date.
type BulletCashflow struct {
	baseProduct
	paymentDate time.Time
}

// NewBulletCashflow constructs a single-date cashflow. A zero paymentDate
// defaults to the termination date.
func NewBulletCashflow(terminationDate time.Time, ccy market.Currency, notional float64, paymentDate time.Time) *BulletCashflow {
	if paymentDate.IsZero() {
		paymentDate = terminationDate
	}
	return &BulletCashflow{
		baseProduct: newBaseProduct(terminationDate, terminationDate, notional, ccy),
		paymentDate: paymentDate,
	}
}

func (p *BulletCashflow) Version() int        { return bulletCashflowVersion }
func (p *BulletCashflow) ProductType() string { return bulletCashflowType }

func (p *BulletCashflow) TerminationDate() time.Time { return p.lastDate }
func (p *BulletCashflow) PaymentDate() time.Time     { return p.paymentDate }

func (p *BulletCashflow) Accept(v Visitor) (any, error) {
	return v.VisitBulletCashflow(p)
}
