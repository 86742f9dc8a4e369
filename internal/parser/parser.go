// Package parser decodes the bank's JSON statement envelope into domain models.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"

	"fioapi/internal/dto"
	apperrors "fioapi/internal/errors"
	"fioapi/internal/models"
)

var (
	errMissingStatement    = errors.New("missing accountStatement")
	errMissingInfo         = errors.New("missing accountStatement.info")
	errMissingTransactions = errors.New("missing accountStatement.transactionList.transaction")
	errMissingCurrency     = errors.New("missing info.currency")
)

// ParseAccountInfo extracts the account metadata from a JSON statement
func ParseAccountInfo(data []byte) (*models.AccountInfo, error) {
	stmt, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}

	info, err := convertInfo(stmt.Info)
	if err != nil {
		return nil, apperrors.NewInvalidResponse(err)
	}

	slog.Debug("account info parsed", "currency", info.Currency)
	return info, nil
}

// ParseTransactions extracts the movements from a JSON statement in the order
// the bank listed them. A single malformed row fails the whole parse.
func ParseTransactions(data []byte) ([]models.Transaction, error) {
	stmt, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}

	txns, err := convertTransactions(stmt.TransactionList)
	if err != nil {
		return nil, apperrors.NewInvalidResponse(err)
	}

	slog.Debug("transactions parsed", "count", len(txns))
	return txns, nil
}

// ParseStatement decodes info and movements from a single document
func ParseStatement(data []byte) (*models.Statement, error) {
	stmt, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}

	info, err := convertInfo(stmt.Info)
	if err != nil {
		return nil, apperrors.NewInvalidResponse(err)
	}

	txns, err := convertTransactions(stmt.TransactionList)
	if err != nil {
		return nil, apperrors.NewInvalidResponse(err)
	}

	slog.Debug("statement parsed", "currency", info.Currency, "count", len(txns))
	return &models.Statement{Info: *info, Transactions: txns}, nil
}

func decodeEnvelope(data []byte) (*dto.FioAccountStatement, error) {
	var resp dto.FioResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		slog.Debug("failed to decode statement envelope", "error", err)
		return nil, apperrors.NewInvalidResponse(err)
	}
	if resp.AccountStatement == nil {
		return nil, apperrors.NewInvalidResponse(errMissingStatement)
	}
	if resp.AccountStatement.Info == nil {
		return nil, apperrors.NewInvalidResponse(errMissingInfo)
	}
	return resp.AccountStatement, nil
}

func convertInfo(in *dto.FioStatementInfo) (*models.AccountInfo, error) {
	if in.Currency == nil || *in.Currency == "" {
		return nil, errMissingCurrency
	}

	dateStart, err := optionalDate("dateStart", in.DateStart)
	if err != nil {
		return nil, err
	}
	dateEnd, err := optionalDate("dateEnd", in.DateEnd)
	if err != nil {
		return nil, err
	}

	return &models.AccountInfo{
		AccountID:      emptyToNil(in.AccountID),
		BankID:         emptyToNil(in.BankID),
		Currency:       *in.Currency,
		IBAN:           emptyToNil(in.IBAN),
		BIC:            emptyToNil(in.BIC),
		OpeningBalance: in.OpeningBalance,
		ClosingBalance: in.ClosingBalance,
		DateStart:      dateStart,
		DateEnd:        dateEnd,
		YearList:       in.YearList,
		IDList:         in.IDList,
		IDFrom:         in.IDFrom,
		IDTo:           in.IDTo,
		IDLastDownload: in.IDLastDownload,
	}, nil
}

func convertTransactions(list *dto.FioTransactionList) ([]models.Transaction, error) {
	if list == nil || list.Transaction == nil {
		return nil, errMissingTransactions
	}

	txns := make([]models.Transaction, 0, len(list.Transaction))
	for i, row := range list.Transaction {
		txn, err := decodeRow(row)
		if err != nil {
			slog.Debug("transaction row rejected", "index", i, "error", err)
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// optionalDate treats empty as absent and anything else that is not a
// YYYY-MM-DD prefix as malformed
func optionalDate(field string, s *string) (*civil.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, ok := parseDatePrefix(*s)
	if !ok {
		return nil, fmt.Errorf("info.%s: invalid date %q", field, *s)
	}
	return &d, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
