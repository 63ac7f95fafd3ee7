package product

import "fmt"

// Portfolio is an ordered, weighted collection of products. The pairs are
// exclusively owned by the portfolio and never mutated after construction.
type Portfolio struct {
	products []Product
	weights  []float64
}

// NewPortfolio copies the given pairs into a portfolio. The two slices must
// have equal length.
func NewPortfolio(products []Product, weights []float64) (*Portfolio, error) {
	if len(products) != len(weights) {
		return nil, fmt.Errorf("%w: %d products vs %d weights", ErrConfiguration,
			len(products), len(weights))
	}
	p := make([]Product, len(products))
	w := make([]float64, len(weights))
	copy(p, products)
	copy(w, weights)
	return &Portfolio{products: p, weights: w}, nil
}

// NumElements returns the number of (product, weight) pairs.
func (pf *Portfolio) NumElements() int {
	return len(pf.products)
}

// Element returns the i-th (product, weight) pair.
func (pf *Portfolio) Element(i int) (Product, float64, error) {
	if i < 0 || i >= len(pf.products) {
		return nil, 0, fmt.Errorf("%w: element %d of %d", ErrBounds, i, len(pf.products))
	}
	return pf.products[i], pf.weights[i], nil
}
