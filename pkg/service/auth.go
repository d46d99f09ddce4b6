package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/otp"
	"github.com/gvbank/teller/pkg/provider/face"
	"github.com/gvbank/teller/pkg/repository"
)

// OTPDeliverer sends a one-time code to an email address. Implemented by
// infra/mailer; tests plug fakes.
type OTPDeliverer interface {
	Deliver(ctx context.Context, email, code string) error
}

// OTPPrompter obtains the user's OTP response. It returns ok=false when
// the user cancels the prompt.
type OTPPrompter interface {
	PromptOTP() (input string, ok bool)
}

// AuthService validates credentials and runs the login flows.
type AuthService struct {
	ledger    repository.Ledger
	verifier  face.Verifier
	refs      repository.FaceReferences
	deliverer OTPDeliverer
	accounts  *AccountService
	logger    *slog.Logger
}

// NewAuthService creates the login orchestrator.
func NewAuthService(
	ledger repository.Ledger,
	verifier face.Verifier,
	refs repository.FaceReferences,
	deliverer OTPDeliverer,
	accounts *AccountService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		ledger:    ledger,
		verifier:  verifier,
		refs:      refs,
		deliverer: deliverer,
		accounts:  accounts,
		logger:    logger,
	}
}

// Authenticate succeeds iff both the account number and the PIN match a
// ledger record exactly. The PIN is compared as stored, in plain digits;
// there is no lockout and no rate limiting.
func (s *AuthService) Authenticate(number int64, pin int) (*domain.Account, error) {
	acc, err := s.ledger.Find(number)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if acc.PIN != pin {
		return nil, domain.ErrInvalidCredentials
	}
	return acc, nil
}

// LoginWithPIN is the credentials-only entry point: a valid account
// number and PIN open a session directly.
func (s *AuthService) LoginWithPIN(number int64, pin int) (*Session, error) {
	acc, err := s.Authenticate(number, pin)
	if err != nil {
		return nil, err
	}
	return s.openSession(acc), nil
}

// LoginWithFace runs the full login flow: credentials, then face
// verification, then the OTP fallback.
//
//   - Match opens a session.
//   - NoReference enrolls the captured image as the account's reference
//     and fails with domain.ErrEnrolled: the first capture is enrollment
//     only, never access.
//   - NoMatch falls back to a one-time code mailed to the account's
//     address; a delivery failure aborts the attempt without retry, and
//     the single response check decides the outcome.
func (s *AuthService) LoginWithFace(
	ctx context.Context,
	number int64,
	pin int,
	captured []byte,
	prompt OTPPrompter,
) (*Session, error) {
	acc, err := s.Authenticate(number, pin)
	if err != nil {
		return nil, err
	}

	result, err := s.verifier.Verify(number, captured)
	if err != nil {
		return nil, err
	}
	s.logger.Info("face verification", "account", number, "result", result.String())

	switch result {
	case face.Match:
		return s.openSession(acc), nil

	case face.NoReference:
		if err := s.refs.Store(number, captured); err != nil {
			return nil, err
		}
		s.logger.Info("face reference enrolled", "account", number)
		return nil, domain.ErrEnrolled

	default: // face.NoMatch
		return s.loginWithOTP(ctx, acc, prompt)
	}
}

// loginWithOTP issues a challenge, mails the code and checks the single
// response.
func (s *AuthService) loginWithOTP(
	ctx context.Context,
	acc *domain.Account,
	prompt OTPPrompter,
) (*Session, error) {
	challenge, err := otp.Issue(acc.Number)
	if err != nil {
		return nil, err
	}
	if err := s.deliverer.Deliver(ctx, acc.Email, challenge.Code()); err != nil {
		if !errors.Is(err, domain.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
		}
		s.logger.Warn("OTP delivery failed", "challenge", challenge.ID, "account", acc.Number, "error", err)
		return nil, err
	}
	s.logger.Info("OTP sent", "challenge", challenge.ID, "account", acc.Number)

	input, ok := prompt.PromptOTP()
	if !ok {
		return nil, domain.ErrCanceled
	}
	if challenge.Check(input) != otp.Verified {
		s.logger.Warn("OTP denied", "challenge", challenge.ID, "account", acc.Number)
		return nil, domain.ErrOTPDenied
	}
	return s.openSession(acc), nil
}

func (s *AuthService) openSession(acc *domain.Account) *Session {
	sess := NewSession(acc, s.accounts, s.logger)
	s.logger.Info("session opened", "session", sess.ID, "account", acc.Number)
	return sess
}
