package product

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meenmo/filib/date"
	"github.com/meenmo/filib/market"
	"github.com/meenmo/filib/utils"
)

const (
	overnightIndexCashflowVersion = 1
	overnightIndexCashflowType    = "PRODUCT_OVERNIGHT_INDEX_CASHFLOW"
)

// Canonical serialization keys for OvernightIndexCashflow.
const (
	KeyVersion           = "VERSION"
	KeyType              = "TYPE"
	KeyEffectiveDate     = "EFFECTIVE_DATE"
	KeyTerminationDate   = "TERMINATION_DATE"
	KeyPaymentDate       = "PAYMENT_DATE"
	KeyOnIndex           = "ON_INDEX"
	KeySpread            = "SPREAD"
	KeyCompoundingMethod = "COMPOUNDING_METHOD"
	KeyNotional          = "NOTIONAL"
)

// OvernightIndexCashflowParams describes a compounded overnight index
// cashflow. Termination may be an explicit date or a tenor resolved on the
// index's fixing calendar. Zero-valued optional fields take defaults:
// COMPOUND compounding, payment on the resolved termination date.
type OvernightIndexCashflowParams struct {
	EffectiveDate time.Time
	Termination   date.TermOrDate
	Index         string
	Spread        float64
	Notional      float64

	Compounding market.CompoundingMethod
	PaymentDate time.Time
}

// OvernightIndexCashflow is the floating leg unit: daily fixings of an
// overnight index compounded over the accrual span. Its currency is derived
// from the resolved index, never supplied by the caller.
type OvernightIndexCashflow struct {
	baseProduct
	indexName   string
	index       market.OvernightIndex
	compounding market.CompoundingMethod
	spread      float64
	paymentDate time.Time
}

// NewOvernightIndexCashflow resolves the index through reg and constructs
// the cashflow. An unresolvable index name fails construction.
func NewOvernightIndexCashflow(reg *market.IndexRegistry, p OvernightIndexCashflowParams) (*OvernightIndexCashflow, error) {
	ix, err := reg.Get(p.Index)
	if err != nil {
		return nil, err
	}
	if p.Compounding == "" {
		p.Compounding = market.Compound
	}

	termination := p.Termination.Resolve(p.EffectiveDate, ix.FixingCalendar, ix.BusinessDayConvention)
	if termination.Before(p.EffectiveDate) {
		return nil, fmt.Errorf("%w: termination %s before effective %s", ErrConfiguration,
			utils.FormatDate(termination), utils.FormatDate(p.EffectiveDate))
	}
	paymentDate := p.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = termination
	}

	return &OvernightIndexCashflow{
		baseProduct: newBaseProduct(p.EffectiveDate, termination, p.Notional, ix.Currency),
		indexName:   p.Index,
		index:       ix,
		compounding: p.Compounding,
		spread:      p.Spread,
		paymentDate: paymentDate,
	}, nil
}

func (p *OvernightIndexCashflow) Version() int        { return overnightIndexCashflowVersion }
func (p *OvernightIndexCashflow) ProductType() string { return overnightIndexCashflowType }

func (p *OvernightIndexCashflow) EffectiveDate() time.Time   { return p.firstDate }
func (p *OvernightIndexCashflow) TerminationDate() time.Time { return p.lastDate }
func (p *OvernightIndexCashflow) PaymentDate() time.Time     { return p.paymentDate }

func (p *OvernightIndexCashflow) IndexName() string            { return p.indexName }
func (p *OvernightIndexCashflow) Index() market.OvernightIndex { return p.index }
func (p *OvernightIndexCashflow) Spread() float64              { return p.spread }

func (p *OvernightIndexCashflow) CompoundingMethod() market.CompoundingMethod {
	return p.compounding
}

func (p *OvernightIndexCashflow) Accept(v Visitor) (any, error) {
	return v.VisitOvernightIndexCashflow(p)
}

// Serialize produces the canonical representation. Dates are ISO-8601
// strings; the compounding method is upper-cased.
func (p *OvernightIndexCashflow) Serialize() map[string]any {
	return map[string]any{
		KeyVersion:           overnightIndexCashflowVersion,
		KeyType:              overnightIndexCashflowType,
		KeyEffectiveDate:     utils.FormatDate(p.firstDate),
		KeyTerminationDate:   utils.FormatDate(p.lastDate),
		KeyPaymentDate:       utils.FormatDate(p.paymentDate),
		KeyOnIndex:           p.indexName,
		KeySpread:            p.spread,
		KeyCompoundingMethod: strings.ToUpper(string(p.compounding)),
		KeyNotional:          p.notional,
	}
}

// MarshalJSON renders the canonical representation as JSON.
func (p *OvernightIndexCashflow) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Serialize())
}

// DeserializeOvernightIndexCashflow reconstructs a cashflow from its
// canonical representation. The round trip
// Deserialize(x.Serialize()).Serialize() reproduces x.Serialize().
func DeserializeOvernightIndexCashflow(reg *market.IndexRegistry, content map[string]any) (*OvernightIndexCashflow, error) {
	typ, err := stringField(content, KeyType)
	if err != nil {
		return nil, err
	}
	if typ != overnightIndexCashflowType {
		return nil, fmt.Errorf("%w: unexpected type %q", ErrParsing, typ)
	}

	effective, err := dateField(content, KeyEffectiveDate)
	if err != nil {
		return nil, err
	}
	termination, err := dateField(content, KeyTerminationDate)
	if err != nil {
		return nil, err
	}
	payment, err := dateField(content, KeyPaymentDate)
	if err != nil {
		return nil, err
	}
	indexName, err := stringField(content, KeyOnIndex)
	if err != nil {
		return nil, err
	}
	spread, err := floatField(content, KeySpread)
	if err != nil {
		return nil, err
	}
	notional, err := floatField(content, KeyNotional)
	if err != nil {
		return nil, err
	}
	compoundingStr, err := stringField(content, KeyCompoundingMethod)
	if err != nil {
		return nil, err
	}
	compounding, err := market.ParseCompoundingMethod(compoundingStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsing, err)
	}

	return NewOvernightIndexCashflow(reg, OvernightIndexCashflowParams{
		EffectiveDate: effective,
		Termination:   date.OnDate(termination),
		Index:         indexName,
		Spread:        spread,
		Notional:      notional,
		Compounding:   compounding,
		PaymentDate:   payment,
	})
}

func stringField(content map[string]any, key string) (string, error) {
	raw, ok := content[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %s", ErrParsing, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %s is not a string", ErrParsing, key)
	}
	return s, nil
}

func dateField(content map[string]any, key string) (time.Time, error) {
	s, err := stringField(content, key)
	if err != nil {
		return time.Time{}, err
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: key %s: %v", ErrParsing, key, err)
	}
	return d, nil
}

func floatField(content map[string]any, key string) (float64, error) {
	raw, ok := content[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing key %s", ErrParsing, key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: key %s: %v", ErrParsing, key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: key %s is not numeric", ErrParsing, key)
	}
}
