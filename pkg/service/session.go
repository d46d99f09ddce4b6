package service

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/money"
)

// State is the dashboard controller state. A session starts Idle, moves to
// an Awaiting state while one prompt is outstanding, returns to Idle when
// the operation completes or aborts, and ends LoggedOut, which is terminal.
type State int

const (
	// StateIdle means no operation is in progress.
	StateIdle State = iota
	// StateAwaitingAmount means a deposit or transfer amount prompt is outstanding.
	StateAwaitingAmount
	// StateAwaitingRecipient means a transfer recipient prompt is outstanding.
	StateAwaitingRecipient
	// StateAwaitingPIN means a new-PIN prompt is outstanding.
	StateAwaitingPIN
	// StateLoggedOut is terminal.
	StateLoggedOut
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAmount:
		return "awaiting-amount"
	case StateAwaitingRecipient:
		return "awaiting-recipient"
	case StateAwaitingPIN:
		return "awaiting-pin"
	default:
		return "logged-out"
	}
}

// Prompter is the interactive surface of the dashboard. Every method
// returns a validated value or ok=false for cancellation; cancellation
// aborts the current operation with no state change.
type Prompter interface {
	Amount(label string) (amount money.Money, ok bool)
	AccountNumber(label string) (number int64, ok bool)
	PIN(label string) (pin int, ok bool)
}

// Session is the authenticated context permitting deposit, transfer and
// PIN change until logout. It is an explicit object owned by the caller;
// there is no ambient current-session global.
type Session struct {
	ID      uuid.UUID
	Account int64
	Name    string

	state    State
	accounts *AccountService
	logger   *slog.Logger
}

// NewSession opens a session for an authenticated account.
func NewSession(acc *domain.Account, accounts *AccountService, logger *slog.Logger) *Session {
	return &Session{
		ID:       uuid.New(),
		Account:  acc.Number,
		Name:     acc.Name,
		state:    StateIdle,
		accounts: accounts,
		logger:   logger,
	}
}

// State returns the current controller state.
func (s *Session) State() State { return s.state }

// Balance returns the session account's current balance.
func (s *Session) Balance() (money.Money, error) {
	if s.state == StateLoggedOut {
		return money.Zero(), domain.ErrSessionClosed
	}
	return s.accounts.Balance(s.Account)
}

// Deposit prompts for an amount and credits the account.
func (s *Session) Deposit(prompt Prompter) (money.Money, error) {
	if s.state == StateLoggedOut {
		return money.Zero(), domain.ErrSessionClosed
	}
	s.state = StateAwaitingAmount
	defer s.idle()

	amount, ok := prompt.Amount("Enter amount to deposit (₹)")
	if !ok {
		return money.Zero(), domain.ErrCanceled
	}
	return s.accounts.Deposit(s.Account, amount)
}

// Transfer prompts for a recipient and an amount and moves the funds.
func (s *Session) Transfer(prompt Prompter) (money.Money, error) {
	if s.state == StateLoggedOut {
		return money.Zero(), domain.ErrSessionClosed
	}
	s.state = StateAwaitingRecipient
	defer s.idle()

	recipient, ok := prompt.AccountNumber("Enter recipient's account number")
	if !ok {
		return money.Zero(), domain.ErrCanceled
	}

	s.state = StateAwaitingAmount
	amount, ok := prompt.Amount("Enter amount to transfer (₹)")
	if !ok {
		return money.Zero(), domain.ErrCanceled
	}
	return s.accounts.Transfer(s.Account, recipient, amount)
}

// ChangePIN prompts for a new 4-digit PIN and overwrites the stored one.
func (s *Session) ChangePIN(prompt Prompter) error {
	if s.state == StateLoggedOut {
		return domain.ErrSessionClosed
	}
	s.state = StateAwaitingPIN
	defer s.idle()

	pin, ok := prompt.PIN("Enter new 4-digit PIN")
	if !ok {
		return domain.ErrCanceled
	}
	return s.accounts.ChangePIN(s.Account, pin)
}

// Logout ends the session. Terminal: every later operation fails with
// domain.ErrSessionClosed. The caller returns to the login screen.
func (s *Session) Logout() {
	s.state = StateLoggedOut
	s.logger.Info("session closed", "session", s.ID, "account", s.Account)
}

func (s *Session) idle() {
	if s.state != StateLoggedOut {
		s.state = StateIdle
	}
}
