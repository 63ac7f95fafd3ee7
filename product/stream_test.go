package product_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/product"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", s, err)
	}
	return d
}

func floatPtr(f float64) *float64 { return &f }

func TestInterestRateStream_FixedOnly(t *testing.T) {
	t.Parallel()

	stream, err := product.NewInterestRateStream(market.DefaultIndexRegistry(), product.InterestRateStreamParams{
		EffectiveDate:     mustDate(t, "2024-01-01"),
		TerminationDate:   mustDate(t, "2024-07-01"),
		AccrualPeriod:     date.MustPeriod("3M"),
		Notional:          1_000_000,
		Currency:          market.USD,
		AccrualBasis:      market.Act360,
		HolidayConvention: market.HolidayNone,
		FixedRate:         floatPtr(0.05),
	})
	if err != nil {
		t.Fatalf("NewInterestRateStream error: %v", err)
	}
	if stream.NumCashflows() != 2 {
		t.Fatalf("expected 2 cashflows, got %d", stream.NumCashflows())
	}

	wantBounds := []string{"2024-01-01", "2024-04-01", "2024-07-01"}
	var prevStart time.Time
	for i := 0; i < stream.NumCashflows(); i++ {
		p, w, err := stream.Element(i)
		if err != nil {
			t.Fatalf("Element(%d) error: %v", i, err)
		}
		if w != 1 {
			t.Fatalf("Element(%d) weight mismatch: got %v", i, w)
		}
		fixed, ok := p.(*product.FixedAccrued)
		if !ok {
			t.Fatalf("Element(%d) is %T, want *FixedAccrued", i, p)
		}
		if fixed.EffectiveDate().Format("2006-01-02") != wantBounds[i] {
			t.Fatalf("Element(%d) start mismatch: got %s", i, fixed.EffectiveDate().Format("2006-01-02"))
		}
		if fixed.TerminationDate().Format("2006-01-02") != wantBounds[i+1] {
			t.Fatalf("Element(%d) end mismatch: got %s", i, fixed.TerminationDate().Format("2006-01-02"))
		}
		if i > 0 && !prevStart.Before(fixed.EffectiveDate()) {
			t.Fatalf("cashflows not in ascending start order")
		}
		prevStart = fixed.EffectiveDate()

		// Unit notional carries the rate; accrued scales by the fraction.
		if math.Abs(fixed.Notional()-50_000) > 1e-9 {
			t.Fatalf("Element(%d) notional mismatch: got %v", i, fixed.Notional())
		}
	}

	first, err := stream.Cashflow(0)
	if err != nil {
		t.Fatalf("Cashflow(0) error: %v", err)
	}
	accrued := first.(*product.FixedAccrued).Accrued()
	want := 50_000 * 91.0 / 360.0
	if math.Abs(accrued-want) > 1e-9 {
		t.Fatalf("accrued mismatch: got %.6f want %.6f", accrued, want)
	}
}

func TestInterestRateStream_FixedAndFloatPaired(t *testing.T) {
	t.Parallel()

	stream, err := product.NewInterestRateStream(market.DefaultIndexRegistry(), product.InterestRateStreamParams{
		EffectiveDate:     mustDate(t, "2024-01-02"),
		TerminationDate:   mustDate(t, "2025-01-02"),
		AccrualPeriod:     date.MustPeriod("3M"),
		Notional:          500_000,
		Currency:          market.USD,
		AccrualBasis:      market.Act360,
		HolidayConvention: market.HolidayNone,
		FixedRate:         floatPtr(0.04),
		FloatIndex:        "SOFR",
	})
	if err != nil {
		t.Fatalf("NewInterestRateStream error: %v", err)
	}
	if stream.NumCashflows() != 8 {
		t.Fatalf("expected 2x4 cashflows, got %d", stream.NumCashflows())
	}

	// Pairs per row: FixedAccrued then OvernightIndexCashflow over the same span.
	for i := 0; i < stream.NumCashflows(); i += 2 {
		fixed, err := stream.Cashflow(i)
		if err != nil {
			t.Fatalf("Cashflow(%d) error: %v", i, err)
		}
		floating, err := stream.Cashflow(i + 1)
		if err != nil {
			t.Fatalf("Cashflow(%d) error: %v", i+1, err)
		}
		if _, ok := fixed.(*product.FixedAccrued); !ok {
			t.Fatalf("Cashflow(%d) is %T, want *FixedAccrued", i, fixed)
		}
		oi, ok := floating.(*product.OvernightIndexCashflow)
		if !ok {
			t.Fatalf("Cashflow(%d) is %T, want *OvernightIndexCashflow", i+1, floating)
		}
		if !fixed.FirstDate().Equal(oi.FirstDate()) {
			t.Fatalf("pair %d spans diverge: %s vs %s", i/2,
				fixed.FirstDate().Format("2006-01-02"), oi.FirstDate().Format("2006-01-02"))
		}
		if math.Abs(oi.Notional()-500_000) > 1e-9 {
			t.Fatalf("floating notional mismatch: got %v", oi.Notional())
		}
	}
}

func TestInterestRateStream_NeitherRateNorIndex(t *testing.T) {
	t.Parallel()

	_, err := product.NewInterestRateStream(market.DefaultIndexRegistry(), product.InterestRateStreamParams{
		EffectiveDate:   mustDate(t, "2024-01-01"),
		TerminationDate: mustDate(t, "2024-07-01"),
		AccrualPeriod:   date.MustPeriod("3M"),
		Notional:        1_000_000,
		Currency:        market.USD,
		AccrualBasis:    market.Act360,
	})
	if !errors.Is(err, product.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestInterestRateStream_EmptySchedule(t *testing.T) {
	t.Parallel()

	d := mustDate(t, "2024-01-02")
	stream, err := product.NewInterestRateStream(market.DefaultIndexRegistry(), product.InterestRateStreamParams{
		EffectiveDate:   d,
		TerminationDate: d,
		Notional:        1_000_000,
		Currency:        market.USD,
		AccrualBasis:    market.Act360,
		FixedRate:       floatPtr(0.05),
	})
	if err != nil {
		t.Fatalf("NewInterestRateStream error: %v", err)
	}
	if stream.NumCashflows() != 0 {
		t.Fatalf("expected empty stream, got %d cashflows", stream.NumCashflows())
	}
}

func TestInterestRateStream_UnknownIndexPropagates(t *testing.T) {
	t.Parallel()

	_, err := product.NewInterestRateStream(market.DefaultIndexRegistry(), product.InterestRateStreamParams{
		EffectiveDate:     mustDate(t, "2024-01-01"),
		TerminationDate:   mustDate(t, "2024-07-01"),
		AccrualPeriod:     date.MustPeriod("3M"),
		Notional:          1_000_000,
		Currency:          market.USD,
		AccrualBasis:      market.Act360,
		HolidayConvention: market.HolidayNone,
		FloatIndex:        "NOT_AN_INDEX",
	})
	if !errors.Is(err, market.ErrUnknownIndex) {
		t.Fatalf("expected ErrUnknownIndex, got %v", err)
	}
}
