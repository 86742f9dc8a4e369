package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// AccountInfo is the account metadata attached to a statement or report.
// Everything except the currency depends on the report type and may be nil.
type AccountInfo struct {
	AccountID      *string          `json:"account_id,omitempty"`
	BankID         *string          `json:"bank_id,omitempty"`
	Currency       string           `json:"currency"`
	IBAN           *string          `json:"iban,omitempty"`
	BIC            *string          `json:"bic,omitempty"`
	OpeningBalance *decimal.Decimal `json:"opening_balance,omitempty"`
	ClosingBalance *decimal.Decimal `json:"closing_balance,omitempty"`
	DateStart      *civil.Date      `json:"date_start,omitempty"`
	DateEnd        *civil.Date      `json:"date_end,omitempty"`
	YearList       *int32           `json:"year_list,omitempty"`
	IDList         *int32           `json:"id_list,omitempty"`
	IDFrom         *int64           `json:"id_from,omitempty"`
	IDTo           *int64           `json:"id_to,omitempty"`
	IDLastDownload *int64           `json:"id_last_download,omitempty"`
}
