package services

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"fioapi/internal/models"
)

// FioServiceInterface is the client of the bank's REST API. Every Fetch and
// Set operation sends exactly one GET request.
type FioServiceInterface interface {
	// FetchTransactionsForPeriod returns the raw report of movements booked between from and to, inclusive
	FetchTransactionsForPeriod(ctx context.Context, from, to civil.Date, format models.TransactionReportFormat) (string, error)

	// FetchTransactionsSinceLastDownload returns movements after the server-side marker and advances it
	FetchTransactionsSinceLastDownload(ctx context.Context, format models.TransactionReportFormat) (string, error)

	// FetchAccountStatement returns an official statement. PDF is returned as bytes.
	FetchAccountStatement(ctx context.Context, year int, statementID int64, format models.AccountStatementFormat) (*models.StatementData, error)

	FetchLastStatementInfo(ctx context.Context) (*models.LastStatementInfo, error)
	SetLastDownloadedTransactionID(ctx context.Context, id int64) error
	SetLastUnsuccessfulDownloadDate(ctx context.Context, date civil.Date) error

	// Parsed variants of the JSON report endpoints
	FetchStatementForPeriod(ctx context.Context, from, to civil.Date) (*models.Statement, error)
	FetchStatementSinceLastDownload(ctx context.Context) (*models.Statement, error)

	ParseAccountInfo(data string) (*models.AccountInfo, error)
	ParseTransactions(data string) ([]models.Transaction, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

// RequestLoggerInterface emits structured events for outgoing requests.
// URLs passed to it are already redacted.
type RequestLoggerInterface interface {
	LogRequestStarted(ctx context.Context, endpoint, url string)
	LogRequestCompleted(ctx context.Context, endpoint string, status, size int, duration time.Duration)
	LogRequestFailed(ctx context.Context, endpoint string, err error, duration time.Duration)
	LogTransactionsParsed(ctx context.Context, count int)
	LogParseFailed(ctx context.Context, target string, err error)
}

// LedgerGeneratorInterface produces realistic account movements for the mock server
type LedgerGeneratorInterface interface {
	GenerateAccount(token string) *models.MockAccount
	GenerateEntries(token string, from, to civil.Date, count int) []*models.LedgerEntry
	GenerateEntry(token string, day civil.Date) *models.LedgerEntry
}
