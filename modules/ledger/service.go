// Package ledger gates paid operations behind a non-negative credit balance.
// The balance is a single persisted integer; deduct is check-then-act under
// one mutex so no other mutation can interleave.
package ledger

import (
	"context"
	"log"
	"strconv"
	"sync"

	"adstudio-server/modules/common/apperr"
	"adstudio-server/modules/common/config"
	"adstudio-server/modules/common/kvstore"
)

const creditsKey = "adstudio:credits"

type Service struct {
	mu      sync.Mutex
	store   kvstore.Store
	journal *Journal
}

// NewService - ledger over the persisted balance key. journal may be nil.
func NewService(store kvstore.Store, journal *Journal) *Service {
	return &Service{
		store:   store,
		journal: journal,
	}
}

// GetBalance - current balance; a never-written or unreadable store yields
// the starting balance for a first-time user, so reads cannot fail
func (s *Service) GetBalance(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance(ctx)
}

// Purchase - top up the balance. Always succeeds for a positive amount.
func (s *Service) Purchase(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, apperr.NewValidation("Purchase amount must be positive.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.balance(ctx)
	newBalance := current + amount
	if err := s.save(ctx, newBalance); err != nil {
		return 0, err
	}

	log.Printf("💰 Credits purchased: %d → %d (+%d)", current, newBalance, amount)
	s.record("PURCHASE", amount, newBalance, "Credit purchase")
	return newBalance, nil
}

// Deduct - subtract amount from the balance as a single logical unit. Fails
// with InsufficientCreditsError and no mutation when the balance is too low.
func (s *Service) Deduct(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, apperr.NewValidation("Deduction amount must be positive.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.balance(ctx)
	if current < amount {
		return 0, &apperr.InsufficientCreditsError{Needed: amount, Have: current}
	}

	newBalance := current - amount
	if err := s.save(ctx, newBalance); err != nil {
		return 0, err
	}

	log.Printf("💰 Credits deducted: %d → %d (-%d)", current, newBalance, amount)
	s.record("DEDUCT", -amount, newBalance, "Ad generation")
	return newBalance, nil
}

// balance - read the persisted balance; callers hold s.mu
func (s *Service) balance(ctx context.Context) int {
	starting := config.GetConfig().StartingCredits

	raw, err := s.store.Get(ctx, creditsKey)
	if err == kvstore.ErrNotFound {
		return starting
	}
	if err != nil {
		// Read failures degrade to the default rather than blocking the user
		log.Printf("⚠️  Failed to read credit balance, using default %d: %v", starting, err)
		return starting
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		log.Printf("⚠️  Corrupt credit balance %q, using default %d", raw, starting)
		return starting
	}
	return value
}

func (s *Service) save(ctx context.Context, balance int) error {
	if err := s.store.Set(ctx, creditsKey, strconv.Itoa(balance)); err != nil {
		log.Printf("❌ Failed to persist credit balance: %v", err)
		return &apperr.StorageError{Op: "save your credit balance", Err: err}
	}
	return nil
}

func (s *Service) record(txType string, amount, balanceAfter int, description string) {
	if s.journal == nil {
		return
	}
	s.journal.Record(txType, amount, balanceAfter, description)
}
