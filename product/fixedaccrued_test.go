package product_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/product"
)

func TestBulletCashflow_Defaults(t *testing.T) {
	t.Parallel()

	term := mustDate(t, "2024-07-01")
	p := product.NewBulletCashflow(term, market.EUR, 1000, time.Time{})

	if !p.FirstDate().Equal(term) || !p.LastDate().Equal(term) {
		t.Fatalf("span mismatch: %s -> %s",
			p.FirstDate().Format("2006-01-02"), p.LastDate().Format("2006-01-02"))
	}
	if !p.PaymentDate().Equal(term) {
		t.Fatalf("payment should default to termination, got %s", p.PaymentDate().Format("2006-01-02"))
	}
	if p.LongOrShort() != product.Long {
		t.Fatalf("expected LONG, got %s", p.LongOrShort())
	}

	short := product.NewBulletCashflow(term, market.EUR, -1000, term)
	if short.LongOrShort() != product.Short {
		t.Fatalf("expected SHORT, got %s", short.LongOrShort())
	}
}

func TestFixedAccrued_EagerAccrued(t *testing.T) {
	t.Parallel()

	p, err := product.NewFixedAccrued(product.FixedAccruedParams{
		EffectiveDate:     mustDate(t, "2024-01-01"),
		TerminationDate:   mustDate(t, "2024-07-01"),
		Currency:          market.USD,
		Notional:          1_000_000,
		AccrualBasis:      market.Act360,
		HolidayConvention: market.HolidayNone,
	})
	if err != nil {
		t.Fatalf("NewFixedAccrued error: %v", err)
	}

	want := 1_000_000 * 182.0 / 360.0
	if math.Abs(p.Accrued()-want) > 1e-9 {
		t.Fatalf("accrued mismatch: got %.6f want %.6f", p.Accrued(), want)
	}
	if !p.PaymentDate().Equal(p.TerminationDate()) {
		t.Fatalf("payment should default to termination")
	}
	if p.BusinessDayConvention() != market.Following {
		t.Fatalf("expected Following default, got %s", p.BusinessDayConvention())
	}
}

func TestFixedAccrued_ReversedSpan(t *testing.T) {
	t.Parallel()

	_, err := product.NewFixedAccrued(product.FixedAccruedParams{
		EffectiveDate:   mustDate(t, "2024-07-01"),
		TerminationDate: mustDate(t, "2024-01-01"),
		Currency:        market.USD,
		Notional:        1000,
		AccrualBasis:    market.Act360,
	})
	if !errors.Is(err, product.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
