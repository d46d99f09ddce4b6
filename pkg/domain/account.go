// Package domain defines the teller's core types and business rules:
// accounts, transactions and the validation applied to every mutation.
// It has no knowledge of files, mail or terminals.
package domain

import (
	"fmt"

	"github.com/gvbank/teller/pkg/money"
)

// PIN bounds. A PIN is stored and compared as a plain 4-digit number, the
// same way the ledger file stores it. This is a documented weakness, not
// one this system is allowed to fix.
const (
	MinPIN = 1000
	MaxPIN = 9999
)

// MinOperationAmount is the smallest deposit or transfer the teller accepts.
var MinOperationAmount = money.Must(1)

// Account represents one ledger record.
//
// Invariants:
//   - Number is unique across the ledger.
//   - Balance is never negative as a result of any operation here.
//   - PIN is always within [MinPIN, MaxPIN].
type Account struct {
	Number  int64       `validate:"required,gt=0"`
	Name    string      `validate:"required"`
	Email   string      `validate:"required,email"`
	Balance money.Money `validate:"-"`
	PIN     int         `validate:"min=1000,max=9999"`
}

// ValidateDeposit checks that amount is an acceptable deposit.
// There is no upper bound.
func (a *Account) ValidateDeposit(amount money.Money) error {
	if amount.LessThan(MinOperationAmount) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateTransfer checks that amount can leave this account.
func (a *Account) ValidateTransfer(amount money.Money) error {
	if amount.LessThan(MinOperationAmount) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidatePIN checks that pin is a 4-digit number.
func ValidatePIN(pin int) error {
	if pin < MinPIN || pin > MaxPIN {
		return ErrInvalidPIN
	}
	return nil
}

// Credit adds amount to the balance. Callers validate first.
func (a *Account) Credit(amount money.Money) error {
	balance, err := a.Balance.Add(amount)
	if err != nil {
		return fmt.Errorf("credit account %d: %w", a.Number, err)
	}
	a.Balance = balance
	return nil
}

// Debit removes amount from the balance. Callers validate first; a debit
// below zero still fails rather than corrupting the record.
func (a *Account) Debit(amount money.Money) error {
	balance, err := a.Balance.Sub(amount)
	if err != nil {
		return ErrInsufficientFunds
	}
	a.Balance = balance
	return nil
}

// SetPIN overwrites the PIN after range validation.
func (a *Account) SetPIN(pin int) error {
	if err := ValidatePIN(pin); err != nil {
		return err
	}
	a.PIN = pin
	return nil
}
