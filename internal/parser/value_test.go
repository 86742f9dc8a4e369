package parser

import (
	"encoding/json"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, raw string) columnValue {
	t.Helper()
	v, err := decodeColumnValue(json.RawMessage(raw))
	require.NoError(t, err)
	return v
}

func TestColumnValue_AsString(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"string", `"abc"`, "abc", true},
		{"integer", `10001`, "10001", true},
		{"float", `50.250`, "50.25", true},
		{"bool", `true`, "true", true},
		{"null", `null`, "", false},
		{"array", `[1,2]`, "", false},
		{"object", `{"a":1}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeRaw(t, tt.raw).asString()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnValue_NumberAndStringAgree(t *testing.T) {
	fromNumber, _ := decodeRaw(t, `123456789`).asString()
	fromString, _ := decodeRaw(t, `"123456789"`).asString()
	assert.Equal(t, fromString, fromNumber)
}

func TestColumnValue_OptionalString(t *testing.T) {
	assert.Nil(t, decodeRaw(t, `""`).optionalString())
	assert.Nil(t, decodeRaw(t, `null`).optionalString())
	require.NotNil(t, decodeRaw(t, `"x"`).optionalString())
	assert.Equal(t, "0", *decodeRaw(t, `0`).optionalString())
}

func TestColumnValue_AsInt64(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{`77`, 77, true},
		{`"77"`, 77, true},
		{`-3`, -3, true},
		{`77.0`, 0, false},
		{`"abc"`, 0, false},
		{`99999999999999999999`, 0, false},
		{`true`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := decodeRaw(t, tt.raw).asInt64()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnValue_AsDecimal(t *testing.T) {
	d, err := decodeRaw(t, `"-0.10"`).asDecimal()
	require.NoError(t, err)
	assert.Equal(t, "-0.1", d.String())

	d, err = decodeRaw(t, `1e3`).asDecimal()
	require.NoError(t, err)
	assert.Equal(t, "1000", d.String())

	_, err = decodeRaw(t, `""`).asDecimal()
	assert.Error(t, err)

	_, err = decodeRaw(t, `false`).asDecimal()
	assert.Error(t, err)
}

func TestParseDatePrefix(t *testing.T) {
	tests := []struct {
		in     string
		want   civil.Date
		wantOK bool
	}{
		{"2023-01-02+0000", civil.Date{Year: 2023, Month: 1, Day: 2}, true},
		{"2023-12-31", civil.Date{Year: 2023, Month: 12, Day: 31}, true},
		{"2023-02-30+0100", civil.Date{}, false},
		{"2023-1-2", civil.Date{}, false},
		{"", civil.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDatePrefix(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeColumnValue_MissingValue(t *testing.T) {
	v, err := decodeColumnValue(nil)
	require.NoError(t, err)
	assert.Equal(t, kindNull, v.kind)
}
