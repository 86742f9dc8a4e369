package repositories

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"fioapi/internal/models"
)

// LedgerRepositoryInterface defines the storage of the mock bank server.
// All queries are scoped to the account owning the token.
type LedgerRepositoryInterface interface {
	CreateAccount(account *models.MockAccount) error
	GetAccount(token string) (*models.MockAccount, error)
	ListTokens() ([]string, error)

	AddEntries(entries []*models.LedgerEntry) error
	GetByDateRange(token string, from, to civil.Date) ([]models.LedgerEntry, error)
	GetAfterID(token string, afterID int64) ([]models.LedgerEntry, error)
	GetByStatement(token string, year, statementID int) ([]models.LedgerEntry, error)

	// GetLastStatement returns the newest statement that has at least one movement
	GetLastStatement(token string) (year, statementID int, err error)

	// SetLastDownloadID moves the download marker to id
	SetLastDownloadID(token string, id int64) error

	// SetLastDownloadDate moves the download marker to the last movement booked before date
	SetLastDownloadDate(token string, date civil.Date) (int64, error)

	// BalanceBefore is the opening balance plus every movement booked before date
	BalanceBefore(token string, date civil.Date) (decimal.Decimal, error)

	// BalanceUpToID is the opening balance plus every movement with an id up to id
	BalanceUpToID(token string, id int64) (decimal.Decimal, error)
}
