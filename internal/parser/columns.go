package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"fioapi/internal/dto"
	"fioapi/internal/models"
)

// columnSetter copies one column value onto a transaction
type columnSetter func(txn *models.Transaction, v columnValue) error

type column struct {
	id       int
	required bool
	set      columnSetter
}

// transactionColumns is the complete mapping from bank column ids to
// transaction fields. Columns not listed here are ignored.
var transactionColumns = []column{
	{id: dto.ColumnID, required: true, set: setID},
	{id: dto.ColumnDate, required: true, set: setDate},
	{id: dto.ColumnAmount, required: true, set: setAmount},
	{id: dto.ColumnCurrency, required: true, set: setCurrency},
	{id: dto.ColumnCounterAccount, set: optionalString(func(t *models.Transaction) **string { return &t.CounterAccountID })},
	{id: dto.ColumnCounterAccountName, set: optionalString(func(t *models.Transaction) **string { return &t.CounterAccountName })},
	{id: dto.ColumnBankCode, set: optionalString(func(t *models.Transaction) **string { return &t.CounterBankID })},
	{id: dto.ColumnBankName, set: optionalString(func(t *models.Transaction) **string { return &t.CounterBankName })},
	{id: dto.ColumnConstantSymbol, set: optionalString(func(t *models.Transaction) **string { return &t.ConstantSymbol })},
	{id: dto.ColumnVariableSymbol, set: optionalString(func(t *models.Transaction) **string { return &t.VariableSymbol })},
	{id: dto.ColumnSpecificSymbol, set: optionalString(func(t *models.Transaction) **string { return &t.SpecificSymbol })},
	{id: dto.ColumnUserIdentification, set: optionalString(func(t *models.Transaction) **string { return &t.UserIdentification })},
	{id: dto.ColumnRemittanceInfo, set: optionalString(func(t *models.Transaction) **string { return &t.RemittanceInfo })},
	{id: dto.ColumnType, set: optionalString(func(t *models.Transaction) **string { return &t.Type })},
	{id: dto.ColumnExecutor, set: optionalString(func(t *models.Transaction) **string { return &t.Executor })},
	{id: dto.ColumnSpecification, set: optionalString(func(t *models.Transaction) **string { return &t.Specification })},
	{id: dto.ColumnComment, set: optionalString(func(t *models.Transaction) **string { return &t.Comment })},
	{id: dto.ColumnBIC, set: optionalString(func(t *models.Transaction) **string { return &t.BIC })},
	{id: dto.ColumnOrderID, set: setOrderID},
	{id: dto.ColumnPayerReference, set: optionalString(func(t *models.Transaction) **string { return &t.PayerReference })},
}

var errMissingColumn = errors.New("mandatory column missing")

func setID(txn *models.Transaction, v columnValue) error {
	s, ok := v.asString()
	if !ok || s == "" {
		return fmt.Errorf("transaction id: expected a non-empty scalar, got %s", v.kind)
	}
	txn.ID = s
	return nil
}

func setDate(txn *models.Transaction, v columnValue) error {
	d, ok := v.asDate()
	if !ok {
		return fmt.Errorf("date: expected YYYY-MM-DD, got %s", v.kind)
	}
	txn.Date = d
	return nil
}

func setAmount(txn *models.Transaction, v columnValue) error {
	d, err := v.asDecimal()
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	txn.Amount = d
	return nil
}

func setCurrency(txn *models.Transaction, v columnValue) error {
	s, ok := v.asString()
	if !ok || s == "" {
		return fmt.Errorf("currency: expected a non-empty string, got %s", v.kind)
	}
	txn.Currency = s
	return nil
}

func setOrderID(txn *models.Transaction, v columnValue) error {
	if n, ok := v.asInt64(); ok {
		txn.OrderID = &n
	}
	return nil
}

func optionalString(field func(*models.Transaction) **string) columnSetter {
	return func(txn *models.Transaction, v columnValue) error {
		*field(txn) = v.optionalString()
		return nil
	}
}

// decodeCell unwraps {"value": ...}. A missing or null cell is null.
func decodeCell(raw json.RawMessage) (columnValue, error) {
	if len(raw) == 0 {
		return columnValue{kind: kindNull}, nil
	}

	var cell dto.FioColumnCell
	if err := json.Unmarshal(raw, &cell); err != nil {
		return columnValue{}, fmt.Errorf("decode column: %w", err)
	}
	return decodeColumnValue(cell.Value)
}

// decodeRow applies the column table to one row
func decodeRow(row dto.FioTransactionRow) (models.Transaction, error) {
	var txn models.Transaction

	for _, col := range transactionColumns {
		key := dto.ColumnKey(col.id)

		v, err := decodeCell(row[key])
		if err != nil {
			return models.Transaction{}, fmt.Errorf("%s: %w", key, err)
		}

		if v.kind == kindNull {
			if col.required {
				return models.Transaction{}, fmt.Errorf("%s: %w", key, errMissingColumn)
			}
			continue
		}

		if err := col.set(&txn, v); err != nil {
			return models.Transaction{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	return txn, nil
}
