package repositories

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fioapi/internal/models"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrStatementNotFound = errors.New("statement not found")
)

// ledgerRepository implements LedgerRepositoryInterface on gorm
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{
		db: db,
	}
}

// CreateAccount stores the account behind a token
func (r *ledgerRepository) CreateAccount(account *models.MockAccount) error {
	var count int64
	if err := r.db.Model(&models.MockAccount{}).Where("token = ?", account.Token).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if count > 0 {
		return ErrAccountExists
	}

	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccount retrieves the account owning token
func (r *ledgerRepository) GetAccount(token string) (*models.MockAccount, error) {
	var account models.MockAccount
	if err := r.db.Where("token = ?", token).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListTokens returns all known tokens
func (r *ledgerRepository) ListTokens() ([]string, error) {
	var tokens []string
	if err := r.db.Model(&models.MockAccount{}).Order("token").Pluck("token", &tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// AddEntries stores movements in one batch. IDs are assigned in slice order.
func (r *ledgerRepository) AddEntries(entries []*models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(entries, 100).Error; err != nil {
		return fmt.Errorf("failed to add ledger entries: %w", err)
	}
	return nil
}

// GetByDateRange returns movements booked on days from..to inclusive
func (r *ledgerRepository) GetByDateRange(token string, from, to civil.Date) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.
		Where("token = ? AND booked_on >= ? AND booked_on < ?", token, startOfDay(from), startOfDay(to.AddDays(1))).
		Order("booked_on ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entries by date range: %w", err)
	}
	return entries, nil
}

// GetAfterID returns movements with an id greater than afterID
func (r *ledgerRepository) GetAfterID(token string, afterID int64) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.
		Where("token = ? AND id > ?", token, afterID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entries after id: %w", err)
	}
	return entries, nil
}

// GetByStatement returns the movements of one statement
func (r *ledgerRepository) GetByStatement(token string, year, statementID int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.
		Where("token = ? AND statement_year = ? AND statement_id = ?", token, year, statementID).
		Order("booked_on ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get statement entries: %w", err)
	}
	return entries, nil
}

func (r *ledgerRepository) GetLastStatement(token string) (int, int, error) {
	var entry models.LedgerEntry
	err := r.db.
		Where("token = ?", token).
		Order("statement_year DESC, statement_id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrStatementNotFound
		}
		return 0, 0, fmt.Errorf("failed to get last statement: %w", err)
	}
	return entry.StatementYear, entry.StatementID, nil
}

func (r *ledgerRepository) SetLastDownloadID(token string, id int64) error {
	result := r.db.Model(&models.MockAccount{}).Where("token = ?", token).Update("last_download_id", id)
	if result.Error != nil {
		return fmt.Errorf("failed to set last download id: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *ledgerRepository) SetLastDownloadDate(token string, date civil.Date) (int64, error) {
	var id int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []int64
		err := tx.Model(&models.LedgerEntry{}).
			Where("token = ? AND booked_on < ?", token, startOfDay(date)).
			Order("id DESC").
			Limit(1).
			Pluck("id", &ids).Error
		if err != nil {
			return fmt.Errorf("failed to find last entry before date: %w", err)
		}
		if len(ids) > 0 {
			id = ids[0]
		}

		return NewLedgerRepository(tx).SetLastDownloadID(token, id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ledgerRepository) BalanceBefore(token string, date civil.Date) (decimal.Decimal, error) {
	return r.balance(token, "booked_on < ?", startOfDay(date))
}

func (r *ledgerRepository) BalanceUpToID(token string, id int64) (decimal.Decimal, error) {
	return r.balance(token, "id <= ?", id)
}

// balance sums amounts in Go so the result does not depend on how the
// driver represents decimal columns
func (r *ledgerRepository) balance(token, cond string, arg any) (decimal.Decimal, error) {
	account, err := r.GetAccount(token)
	if err != nil {
		return decimal.Zero, err
	}

	var amounts []decimal.Decimal
	err = r.db.Model(&models.LedgerEntry{}).
		Where("token = ?", token).
		Where(cond, arg).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger entries: %w", err)
	}

	total := account.OpeningBalance
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}

func startOfDay(d civil.Date) time.Time {
	return d.In(time.UTC)
}
