package market

import (
	"errors"
	"fmt"

	"github.com/meenmo/filib/calendar"
)

// ErrUnknownIndex is returned when a named index is not present in a registry.
var ErrUnknownIndex = errors.New("unknown index")

// OvernightIndex describes a daily-fixed reference rate and its conventions.
type OvernightIndex struct {
	Name                  string
	Currency              Currency
	FixingCalendar        calendar.CalendarID
	BusinessDayConvention BusinessDayConvention
	AccrualBasis          AccrualBasis
	FixingLagDays         int
}

// IndexRegistry resolves index names to their metadata.
//
// A registry is immutable after construction; concurrent reads during
// product construction are safe without locking.
type IndexRegistry struct {
	indices map[string]OvernightIndex
}

// NewIndexRegistry builds a registry from the given index definitions.
func NewIndexRegistry(indices ...OvernightIndex) *IndexRegistry {
	m := make(map[string]OvernightIndex, len(indices))
	for _, ix := range indices {
		m[ix.Name] = ix
	}
	return &IndexRegistry{indices: m}
}

// WithIndex returns a copy of the registry extended with ix.
func (r *IndexRegistry) WithIndex(ix OvernightIndex) *IndexRegistry {
	m := make(map[string]OvernightIndex, len(r.indices)+1)
	for k, v := range r.indices {
		m[k] = v
	}
	m[ix.Name] = ix
	return &IndexRegistry{indices: m}
}

// Get resolves an index by name.
func (r *IndexRegistry) Get(name string) (OvernightIndex, error) {
	ix, ok := r.indices[name]
	if !ok {
		return OvernightIndex{}, fmt.Errorf("%w: %q", ErrUnknownIndex, name)
	}
	return ix, nil
}

// Built-in overnight index definitions matching standard market conventions.
var (
	SOFR = OvernightIndex{
		Name:                  "SOFR",
		Currency:              USD,
		FixingCalendar:        calendar.USGS,
		BusinessDayConvention: Following,
		AccrualBasis:          Act360,
		FixingLagDays:         0,
	}

	ESTR = OvernightIndex{
		Name:                  "ESTR",
		Currency:              EUR,
		FixingCalendar:        calendar.TARGET,
		BusinessDayConvention: Following,
		AccrualBasis:          Act360,
		FixingLagDays:         0,
	}

	SONIA = OvernightIndex{
		Name:                  "SONIA",
		Currency:              GBP,
		FixingCalendar:        calendar.GBLO,
		BusinessDayConvention: Following,
		AccrualBasis:          Act365F,
		FixingLagDays:         0,
	}

	TONAR = OvernightIndex{
		Name:                  "TONAR",
		Currency:              JPY,
		FixingCalendar:        calendar.JPN,
		BusinessDayConvention: Following,
		AccrualBasis:          Act365F,
		FixingLagDays:         2,
	}
)

// DefaultIndexRegistry returns a registry with the built-in overnight indices.
func DefaultIndexRegistry() *IndexRegistry {
	return NewIndexRegistry(SOFR, ESTR, SONIA, TONAR)
}
