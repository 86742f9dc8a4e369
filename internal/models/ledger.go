package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// LedgerEntry is a movement held by the mock bank server. Its ID is the
// movement id the server reports in column 22.
type LedgerEntry struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Token              string          `gorm:"type:varchar(64);not null;index" json:"-"`
	BookedOn           time.Time       `gorm:"not null;index" json:"booked_on"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency           string          `gorm:"type:varchar(3);not null" json:"currency"`
	CounterAccount     string          `gorm:"type:varchar(34)" json:"counter_account,omitempty"`
	CounterAccountName string          `gorm:"type:varchar(255)" json:"counter_account_name,omitempty"`
	CounterBankCode    string          `gorm:"type:varchar(11)" json:"counter_bank_code,omitempty"`
	CounterBankName    string          `gorm:"type:varchar(255)" json:"counter_bank_name,omitempty"`
	ConstantSymbol     string          `gorm:"type:varchar(4)" json:"constant_symbol,omitempty"`
	VariableSymbol     string          `gorm:"type:varchar(10)" json:"variable_symbol,omitempty"`
	SpecificSymbol     string          `gorm:"type:varchar(10)" json:"specific_symbol,omitempty"`
	UserIdentification string          `gorm:"type:text" json:"user_identification,omitempty"`
	RemittanceInfo     string          `gorm:"type:text" json:"remittance_info,omitempty"`
	Type               string          `gorm:"type:varchar(100)" json:"type,omitempty"`
	Executor           string          `gorm:"type:varchar(100)" json:"executor,omitempty"`
	Specification      string          `gorm:"type:varchar(255)" json:"specification,omitempty"`
	Comment            string          `gorm:"type:text" json:"comment,omitempty"`
	BIC                string          `gorm:"type:varchar(11)" json:"bic,omitempty"`
	OrderID            *int64          `json:"order_id,omitempty"`
	PayerReference     string          `gorm:"type:varchar(35)" json:"payer_reference,omitempty"`
	StatementYear      int             `gorm:"not null;index:idx_ledger_statement" json:"statement_year"`
	StatementID        int             `gorm:"not null;index:idx_ledger_statement" json:"statement_id"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Date returns the booking date without a time component
func (e *LedgerEntry) Date() civil.Date {
	return civil.DateOf(e.BookedOn)
}

// MockAccount is the per-token account state of the mock bank server
type MockAccount struct {
	Token          string          `gorm:"primaryKey;type:varchar(64)" json:"-"`
	AccountID      string          `gorm:"type:varchar(16);not null" json:"account_id"`
	BankID         string          `gorm:"type:varchar(4);not null" json:"bank_id"`
	Currency       string          `gorm:"type:varchar(3);not null" json:"currency"`
	IBAN           string          `gorm:"type:varchar(34)" json:"iban"`
	BIC            string          `gorm:"type:varchar(11)" json:"bic"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	LastDownloadID int64           `gorm:"not null;default:0" json:"last_download_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
