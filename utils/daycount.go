package utils

import "time"

// YearFraction computes the year fraction between two dates under a day count convention.
// Supported conventions: ACT/360, ACT/365F, ACT/ACT, 30E/360, 30/360
func YearFraction(start, end time.Time, convention string) float64 {
	switch convention {
	case "ACT/360":
		return Days(start, end) / 360.0
	case "ACT/365F", "ACT/365":
		return Days(start, end) / 365.0
	case "ACT/ACT":
		// ISDA: split the span at year boundaries, denominate each piece by its own year length.
		if end.Before(start) {
			return -YearFraction(end, start, convention)
		}
		frac := 0.0
		for y := start.Year(); y <= end.Year(); y++ {
			yStart := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
			yEnd := time.Date(y+1, 1, 1, 0, 0, 0, 0, time.UTC)
			lo, hi := yStart, yEnd
			if start.After(lo) {
				lo = start
			}
			if end.Before(hi) {
				hi = end
			}
			if hi.After(lo) {
				frac += Days(lo, hi) / Days(yStart, yEnd)
			}
		}
		return frac
	case "30E/360", "30/360":
		// 30E/360 ISDA (Eurobond basis); D1 and D2 are capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return Days(start, end) / 365.0
	}
}
