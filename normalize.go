package qfxconvert

import (
	"github.com/shopspring/decimal"
)

// Kind classifies a field value for normalization.
type Kind int

const (
	// KindScalar passes through unchanged (text, integer, real, boolean).
	KindScalar Kind = iota
	// KindTemporal renders as an ISO-8601 string.
	KindTemporal
	// KindDecimal converts to float64.
	KindDecimal
	// KindIdentifierPair derives <name>_uniqueid and <name>_uniqueidtype.
	KindIdentifierPair
	// KindOpaque is a composite value with no flat rendering, it emits
	// nothing. The drop is deliberate, not a fallthrough.
	KindOpaque
)

// Value is one attribute value tagged with its normalization class.
// Values are classified at the parse boundary, the normalizer only
// switches on the tag.
type Value struct {
	Kind   Kind
	scalar interface{}
	raw    string
	amount *decimal.Decimal
	id     string
	idType string
}

// Text returns a scalar text Value. Empty text is an absent field.
func Text(s string) Value {
	return Value{Kind: KindScalar, scalar: s}
}

// Integer returns a scalar integer Value.
func Integer(i int) Value {
	return Value{Kind: KindScalar, scalar: i}
}

// Bool returns a scalar boolean Value.
func Bool(b bool) Value {
	return Value{Kind: KindScalar, scalar: b}
}

// Real returns a scalar floating point Value.
func Real(f float64) Value {
	return Value{Kind: KindScalar, scalar: f}
}

// Temporal returns a Value holding a raw OFX date string.
func Temporal(s string) Value {
	return Value{Kind: KindTemporal, raw: s}
}

// Amount returns a Value holding a fixed-point currency amount.
func Amount(d decimal.Decimal) Value {
	return Value{Kind: KindDecimal, amount: &d}
}

// OptionalAmount returns a Value holding a currency amount that may be
// absent. A nil amount normalizes to nothing.
func OptionalAmount(d *decimal.Decimal) Value {
	return Value{Kind: KindDecimal, amount: d}
}

// Identifier returns a Value holding a security identifier pair.
func Identifier(id, idType string) Value {
	return Value{Kind: KindIdentifierPair, id: id, idType: idType}
}

// Opaque returns a Value for composite attributes with no flat rendering.
func Opaque() Value {
	return Value{Kind: KindOpaque}
}

// Field is one named attribute of a transaction or position.
type Field struct {
	Name  string
	Value Value
}

// FieldProvider enumerates the data carrying fields of an entity in order.
// Absent fields normalize to nothing, so providers list every field they
// model unconditionally.
type FieldProvider interface {
	Fields() []Field
}

// Cell is one named flat value in a record.
type Cell struct {
	Name  string
	Value interface{}
}

// NormalizeField converts one named field value into zero or more flat
// cells. Temporal values render as ISO-8601 (date only when the source had
// no time-of-day), decimals convert to float64 (lossy, CSV and JSON have no
// fixed-point type), scalars pass through, identifier pairs derive up to
// two string cells and opaque values emit nothing. Unnormalizable values
// are omitted, never an error.
func NormalizeField(name string, v Value) []Cell {
	switch v.Kind {
	case KindTemporal:
		t, hasTime, err := parseOFXDate(v.raw, nil)
		if err != nil {
			return nil
		}
		layout := "2006-01-02"
		if hasTime {
			layout = "2006-01-02T15:04:05Z07:00"
		}
		return []Cell{{Name: name, Value: t.Format(layout)}}
	case KindDecimal:
		if v.amount == nil {
			return nil
		}
		return []Cell{{Name: name, Value: v.amount.InexactFloat64()}}
	case KindScalar:
		if s, ok := v.scalar.(string); ok && s == "" {
			return nil
		}
		return []Cell{{Name: name, Value: v.scalar}}
	case KindIdentifierPair:
		cells := make([]Cell, 0, 2)
		if v.id != "" {
			cells = append(cells, Cell{Name: name + "_uniqueid", Value: v.id})
		}
		if v.idType != "" {
			cells = append(cells, Cell{Name: name + "_uniqueidtype", Value: v.idType})
		}
		return cells
	default:
		return nil
	}
}
