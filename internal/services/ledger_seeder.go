package services

import (
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"

	"fioapi/internal/models"
	"fioapi/internal/repositories"
)

// movementsPerDay is the average density of seeded history
const movementsPerDay = 2

// LedgerSeeder fills the mock bank store with generated accounts and movements
type LedgerSeeder struct {
	repo      repositories.LedgerRepositoryInterface
	generator LedgerGeneratorInterface
	logger    *slog.Logger
}

// NewLedgerSeeder creates a new seeder
func NewLedgerSeeder(repo repositories.LedgerRepositoryInterface, generator LedgerGeneratorInterface, logger *slog.Logger) *LedgerSeeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerSeeder{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

// EnsureAccount returns the account of token, creating it when missing.
// created reports whether a new account was stored.
func (s *LedgerSeeder) EnsureAccount(token string) (account *models.MockAccount, created bool, err error) {
	account, err = s.repo.GetAccount(token)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, false, err
	}

	account = s.generator.GenerateAccount(token)
	if err := s.repo.CreateAccount(account); err != nil {
		return nil, false, fmt.Errorf("failed to create mock account: %w", err)
	}
	return account, true, nil
}

// AddMovements books count generated movements between from and to
func (s *LedgerSeeder) AddMovements(token string, from, to civil.Date, count int) (int, error) {
	entries := s.generator.GenerateEntries(token, from, to, count)
	if err := s.repo.AddEntries(entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Seed creates an account per token. New accounts get days of history
// ending the day before today; existing accounts are left alone.
func (s *LedgerSeeder) Seed(tokens []string, days int, today civil.Date) error {
	for i, token := range tokens {
		_, created, err := s.EnsureAccount(token)
		if err != nil {
			return err
		}
		if !created || days <= 0 {
			continue
		}

		count, err := s.AddMovements(token, today.AddDays(-days), today.AddDays(-1), days*movementsPerDay)
		if err != nil {
			return err
		}

		// Tokens are secrets, only their position is logged
		s.logger.Info("mock account seeded",
			"event_type", "account_seeded",
			"account_index", i,
			"movements", count,
		)
	}
	return nil
}
