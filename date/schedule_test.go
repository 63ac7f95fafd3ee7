package date_test

import (
	"testing"
	"time"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", s, err)
	}
	return d
}

func TestMakeSchedule_TwoQuarterlyPeriods(t *testing.T) {
	t.Parallel()

	rows, err := date.MakeSchedule(date.ScheduleSpec{
		Start:             mustDate(t, "2024-01-01"),
		End:               mustDate(t, "2024-07-01"),
		AccrualPeriod:     date.MustPeriod("3M"),
		HolidayConvention: market.HolidayNone,
	})
	if err != nil {
		t.Fatalf("MakeSchedule error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	wantBounds := []string{"2024-01-01", "2024-04-01", "2024-07-01"}
	for i, row := range rows {
		if row.Start.Format("2006-01-02") != wantBounds[i] {
			t.Fatalf("row %d start mismatch: got %s", i, row.Start.Format("2006-01-02"))
		}
		if row.End.Format("2006-01-02") != wantBounds[i+1] {
			t.Fatalf("row %d end mismatch: got %s", i, row.End.Format("2006-01-02"))
		}
		if !row.Payment.Equal(row.End) {
			t.Fatalf("row %d payment mismatch: got %s", i, row.Payment.Format("2006-01-02"))
		}
	}
}

func TestMakeSchedule_EmptyRange(t *testing.T) {
	t.Parallel()

	d := mustDate(t, "2024-01-01")
	rows, err := date.MakeSchedule(date.ScheduleSpec{Start: d, End: d})
	if err != nil {
		t.Fatalf("MakeSchedule error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty schedule, got %d rows", len(rows))
	}
}

func TestMakeSchedule_EndBeforeStart(t *testing.T) {
	t.Parallel()

	_, err := date.MakeSchedule(date.ScheduleSpec{
		Start:         mustDate(t, "2024-07-01"),
		End:           mustDate(t, "2024-01-01"),
		AccrualPeriod: date.MustPeriod("3M"),
	})
	if err == nil {
		t.Fatalf("expected error for reversed range")
	}
}

func TestMakeSchedule_BackwardSuppressesShortFrontStub(t *testing.T) {
	t.Parallel()

	// Backward roll from 2024-07-03 puts the first boundary 2 days after
	// the start; the stub is folded into a long first period.
	rows, err := date.MakeSchedule(date.ScheduleSpec{
		Start:             mustDate(t, "2024-01-01"),
		End:               mustDate(t, "2024-07-03"),
		AccrualPeriod:     date.MustPeriod("3M"),
		HolidayConvention: market.HolidayNone,
		Rule:              date.RollBackward,
	})
	if err != nil {
		t.Fatalf("MakeSchedule error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].End.Format("2006-01-02") != "2024-04-03" {
		t.Fatalf("first period end mismatch: got %s", rows[0].End.Format("2006-01-02"))
	}
}

func TestMakeSchedule_ForwardBackStub(t *testing.T) {
	t.Parallel()

	rows, err := date.MakeSchedule(date.ScheduleSpec{
		Start:             mustDate(t, "2024-01-01"),
		End:               mustDate(t, "2024-08-01"),
		AccrualPeriod:     date.MustPeriod("3M"),
		HolidayConvention: market.HolidayNone,
		Rule:              date.RollForward,
	})
	if err != nil {
		t.Fatalf("MakeSchedule error: %v", err)
	}
	// 3 periods: two regular quarters plus a 1M back stub.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	last := rows[len(rows)-1]
	if last.Start.Format("2006-01-02") != "2024-07-01" || last.End.Format("2006-01-02") != "2024-08-01" {
		t.Fatalf("back stub mismatch: got %s -> %s",
			last.Start.Format("2006-01-02"), last.End.Format("2006-01-02"))
	}
}

func TestMakeSchedule_PaymentOffsetAndConventions(t *testing.T) {
	t.Parallel()

	// Period ends Friday 2025-07-04 week: end 2025-07-03 (Thu), payment
	// offset 2D lands on Saturday and rolls to Monday 07-07 on USGS.
	rows, err := date.MakeSchedule(date.ScheduleSpec{
		Start:                    mustDate(t, "2025-04-03"),
		End:                      mustDate(t, "2025-07-03"),
		AccrualPeriod:            date.MustPeriod("3M"),
		HolidayConvention:        market.HolidayNone,
		PaymentOffset:            date.MustPeriod("2D"),
		PaymentHolidayConvention: market.HolidayUSGS,
	})
	if err != nil {
		t.Fatalf("MakeSchedule error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Payment.Format("2006-01-02") != "2025-07-07" {
		t.Fatalf("payment mismatch: got %s", rows[0].Payment.Format("2006-01-02"))
	}
}

func TestAccrualFraction(t *testing.T) {
	t.Parallel()

	got := date.AccrualFraction(
		mustDate(t, "2024-01-01"), mustDate(t, "2024-04-01"),
		market.Act360, market.Following, market.HolidayNone)
	want := 91.0 / 360.0
	if diff := got - want; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("AccrualFraction mismatch: got %.12f want %.12f", got, want)
	}
}

func TestAdvance_TenorWithRoll(t *testing.T) {
	t.Parallel()

	// 2025-01-04 + 6M = Friday 2025-07-04 (USGS holiday), Following -> 07-07.
	got := date.Advance(market.HolidayUSGS.Calendar(),
		mustDate(t, "2025-01-04"), date.MustPeriod("6M"), market.Following)
	if got.Format("2006-01-02") != "2025-07-07" {
		t.Fatalf("Advance mismatch: got %s", got.Format("2006-01-02"))
	}
}
