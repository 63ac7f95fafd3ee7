// Package marketdata supplies daily overnight-index fixings to valuation
// code. The product core itself never reads fixings; feeds are consumed by
// the pricing layers built on top of it.
package marketdata

import "time"

// FixingFeed supplies daily fixings for a named overnight index.
type FixingFeed interface {
	FixingOn(index string, date time.Time) (float64, bool)
}

// MapFixingFeed is a static map-backed implementation for development/testing.
// Keys are "<INDEX>|<YYYY-MM-DD>".
type MapFixingFeed struct {
	fixings map[string]float64
}

// NewMapFixingFeed builds a feed from per-index date-to-rate maps.
func NewMapFixingFeed(fixings map[string]map[string]float64) *MapFixingFeed {
	flat := make(map[string]float64)
	for index, byDate := range fixings {
		for d, rate := range byDate {
			flat[index+"|"+d] = rate
		}
	}
	return &MapFixingFeed{fixings: flat}
}

func (m *MapFixingFeed) FixingOn(index string, date time.Time) (float64, bool) {
	val, ok := m.fixings[index+"|"+date.Format("2006-01-02")]
	return val, ok
}
