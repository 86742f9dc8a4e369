package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// dateLayoutLength is the length of the YYYY-MM-DD prefix of bank dates.
// The bank appends a timezone suffix ("2023-01-02+0100") that is discarded.
const dateLayoutLength = 10

type valueKind int

const (
	kindNull valueKind = iota
	kindString
	kindNumber
	kindBool
	kindComposite
)

// columnValue is the scalar carried by one column. The bank does not fix its
// JSON type, so it is classified once and converted by the as* methods.
type columnValue struct {
	kind   valueKind
	text   string
	number json.Number
	flag   bool
}

func decodeColumnValue(raw json.RawMessage) (columnValue, error) {
	if len(raw) == 0 {
		return columnValue{kind: kindNull}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return columnValue{}, fmt.Errorf("decode column value: %w", err)
	}

	switch x := v.(type) {
	case nil:
		return columnValue{kind: kindNull}, nil
	case string:
		return columnValue{kind: kindString, text: x}, nil
	case json.Number:
		return columnValue{kind: kindNumber, number: x}, nil
	case bool:
		return columnValue{kind: kindBool, flag: x}, nil
	default:
		return columnValue{kind: kindComposite}, nil
	}
}

// asString renders scalars as text. Null, arrays and objects have no text form.
func (v columnValue) asString() (string, bool) {
	switch v.kind {
	case kindString:
		return v.text, true
	case kindNumber:
		return canonicalNumber(v.number), true
	case kindBool:
		return strconv.FormatBool(v.flag), true
	default:
		return "", false
	}
}

// optionalString treats an empty string the same as a missing column
func (v columnValue) optionalString() *string {
	s, ok := v.asString()
	if !ok || s == "" {
		return nil
	}
	return &s
}

// asDecimal accepts numeric literals sent either as JSON numbers or strings
func (v columnValue) asDecimal() (decimal.Decimal, error) {
	var literal string
	switch v.kind {
	case kindString:
		literal = v.text
	case kindNumber:
		literal = v.number.String()
	default:
		return decimal.Decimal{}, fmt.Errorf("expected a numeric literal, got %s", v.kind)
	}

	d, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", literal, err)
	}
	return d, nil
}

// asInt64 accepts only values exactly representable as a 64-bit integer
func (v columnValue) asInt64() (int64, bool) {
	var literal string
	switch v.kind {
	case kindNumber:
		literal = v.number.String()
	case kindString:
		literal = v.text
	default:
		return 0, false
	}

	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (v columnValue) asDate() (civil.Date, bool) {
	s, ok := v.asString()
	if !ok {
		return civil.Date{}, false
	}
	return parseDatePrefix(s)
}

// parseDatePrefix parses the first 10 bytes of s as YYYY-MM-DD
func parseDatePrefix(s string) (civil.Date, bool) {
	if len(s) < dateLayoutLength {
		return civil.Date{}, false
	}

	d, err := civil.ParseDate(s[:dateLayoutLength])
	if err != nil {
		return civil.Date{}, false
	}
	return d, true
}

// canonicalNumber renders integers without a fraction and everything else in
// shortest decimal form, so 10001 and "10001" produce the same text.
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if d, err := decimal.NewFromString(n.String()); err == nil {
		return d.String()
	}
	return n.String()
}

func (k valueKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindString:
		return "string"
	case kindNumber:
		return "number"
	case kindBool:
		return "boolean"
	default:
		return "composite"
	}
}
