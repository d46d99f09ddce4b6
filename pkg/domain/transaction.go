package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/gvbank/teller/pkg/money"
)

// Transaction records one successful transfer between two accounts.
// Records are append-only and never read back by this system. The ID is
// for logging only; the transaction file stores date, accounts and amount.
type Transaction struct {
	ID     uuid.UUID
	Date   time.Time
	From   int64
	To     int64
	Amount money.Money
}

// NewTransaction creates a transfer record stamped with the current time.
func NewTransaction(from, to int64, amount money.Money) *Transaction {
	return &Transaction{
		ID:     uuid.New(),
		Date:   time.Now(),
		From:   from,
		To:     to,
		Amount: amount,
	}
}
