package dto

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------- Top-Level Response ----------

type FioResponse struct {
	AccountStatement *FioAccountStatement `json:"accountStatement"`
}

type FioAccountStatement struct {
	Info            *FioStatementInfo   `json:"info"`
	TransactionList *FioTransactionList `json:"transactionList"`
}

// ---------- Info ----------

// FioStatementInfo mirrors the "info" object. Dates stay textual here because
// the bank appends a timezone suffix that the parser strips.
type FioStatementInfo struct {
	AccountID      *string          `json:"accountId"`
	BankID         *string          `json:"bankId"`
	Currency       *string          `json:"currency"`
	IBAN           *string          `json:"iban"`
	BIC            *string          `json:"bic"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
	ClosingBalance *decimal.Decimal `json:"closingBalance"`
	DateStart      *string          `json:"dateStart"`
	DateEnd        *string          `json:"dateEnd"`
	YearList       *int32           `json:"yearList"`
	IDList         *int32           `json:"idList"`
	IDFrom         *int64           `json:"idFrom"`
	IDTo           *int64           `json:"idTo"`
	IDLastDownload *int64           `json:"idLastDownload"`
}

// ---------- Transactions ----------

type FioTransactionList struct {
	Transaction []FioTransactionRow `json:"transaction"`
}

// FioTransactionRow maps "column<N>" keys to their undecoded JSON. Only the
// columns the parser knows are ever unmarshalled, so unknown keys of any
// shape pass through untouched. A null entry is the same as a missing one.
type FioTransactionRow map[string]json.RawMessage

// FioColumnCell is the part of a column wrapper the parser reads. Other
// wrapper fields ("name", "id") are informational and never decoded.
type FioColumnCell struct {
	Value json.RawMessage `json:"value"`
}

// FioColumnValue is a column as the bank renders it, label and id included.
// The JSON type of Value is not fixed by the schema.
type FioColumnValue struct {
	Value json.RawMessage `json:"value"`
	Name  string          `json:"name,omitempty"`
	ID    int             `json:"id"`
}

// FioColumnRow is a transaction row being rendered. Nil entries render as null.
type FioColumnRow map[string]*FioColumnValue

// Encode converts the row to its wire form
func (r FioColumnRow) Encode() (FioTransactionRow, error) {
	row := make(FioTransactionRow, len(r))
	for key, cell := range r {
		if cell == nil {
			row[key] = nil
			continue
		}
		raw, err := json.Marshal(cell)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", key, err)
		}
		row[key] = raw
	}
	return row, nil
}

// ColumnKey returns the row key of a numeric column
func ColumnKey(id int) string {
	return fmt.Sprintf("column%d", id)
}

// NewFioColumnValue encodes v as a column value
func NewFioColumnValue(id int, name string, v any) (*FioColumnValue, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal column%d: %w", id, err)
	}
	return &FioColumnValue{Value: raw, Name: name, ID: id}, nil
}

// Column ids of a transaction row, as assigned by the bank
const (
	ColumnDate               = 0
	ColumnAmount             = 1
	ColumnCounterAccount     = 2
	ColumnBankCode           = 3
	ColumnConstantSymbol     = 4
	ColumnVariableSymbol     = 5
	ColumnSpecificSymbol     = 6
	ColumnUserIdentification = 7
	ColumnType               = 8
	ColumnExecutor           = 9
	ColumnCounterAccountName = 10
	ColumnBankName           = 12
	ColumnCurrency           = 14
	ColumnRemittanceInfo     = 16
	ColumnOrderID            = 17
	ColumnSpecification      = 18
	ColumnID                 = 22
	ColumnComment            = 25
	ColumnBIC                = 26
	ColumnPayerReference     = 27
)

// ColumnNames are the labels the bank sends alongside each column value
var ColumnNames = map[int]string{
	ColumnDate:               "Datum",
	ColumnAmount:             "Objem",
	ColumnCounterAccount:     "Protiúčet",
	ColumnBankCode:           "Kód banky",
	ColumnConstantSymbol:     "KS",
	ColumnVariableSymbol:     "VS",
	ColumnSpecificSymbol:     "SS",
	ColumnUserIdentification: "Uživatelská identifikace",
	ColumnType:               "Typ",
	ColumnExecutor:           "Provedl",
	ColumnCounterAccountName: "Název protiúčtu",
	ColumnBankName:           "Název banky",
	ColumnCurrency:           "Měna",
	ColumnRemittanceInfo:     "Zpráva pro příjemce",
	ColumnOrderID:            "ID pokynu",
	ColumnSpecification:      "Upřesnění",
	ColumnID:                 "ID pohybu",
	ColumnComment:            "Komentář",
	ColumnBIC:                "BIC",
	ColumnPayerReference:     "Reference plátce",
}
