package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction represents one movement on the account as reported by the bank.
// Optional fields are nil when the bank omitted the column or sent it empty.
type Transaction struct {
	ID       string          `json:"id"`
	Date     civil.Date      `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`

	CounterAccountID   *string `json:"counter_account_id,omitempty"`
	CounterAccountName *string `json:"counter_account_name,omitempty"`
	CounterBankID      *string `json:"counter_bank_id,omitempty"`
	CounterBankName    *string `json:"counter_bank_name,omitempty"`

	// Czech payment reference codes
	ConstantSymbol *string `json:"constant_symbol,omitempty"`
	VariableSymbol *string `json:"variable_symbol,omitempty"`
	SpecificSymbol *string `json:"specific_symbol,omitempty"`

	UserIdentification *string `json:"user_identification,omitempty"`
	RemittanceInfo     *string `json:"remittance_info,omitempty"`
	Type               *string `json:"type,omitempty"`
	Executor           *string `json:"executor,omitempty"`
	Specification      *string `json:"specification,omitempty"`
	Comment            *string `json:"comment,omitempty"`
	BIC                *string `json:"bic,omitempty"`
	OrderID            *int64  `json:"order_id,omitempty"`
	PayerReference     *string `json:"payer_reference,omitempty"`
}

// IsCredit returns true for incoming movements
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// CounterParty formats the counter account as "account/bank" when both are known
func (t *Transaction) CounterParty() string {
	if t.CounterAccountID == nil {
		return ""
	}
	if t.CounterBankID == nil {
		return *t.CounterAccountID
	}
	return *t.CounterAccountID + "/" + *t.CounterBankID
}
