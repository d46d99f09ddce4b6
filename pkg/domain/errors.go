package domain

import "errors"

// Domain errors. All of them except ErrStoreUnavailable are recoverable:
// they are reported to the user, the operation is aborted and the session
// state is unchanged.
var (
	// ErrStoreUnavailable is returned when the accounts file is absent.
	// The teller refuses to run without a provisioned ledger.
	ErrStoreUnavailable = errors.New("account ledger unavailable")

	// ErrInvalidCredentials is returned when the account number and PIN
	// pair does not match a ledger record exactly.
	ErrInvalidCredentials = errors.New("invalid account number or PIN")

	// ErrNotFound is returned when an account number is not in the ledger.
	ErrNotFound = errors.New("account not found")

	// ErrInvalidAmount is returned when a deposit or transfer amount is
	// below one rupee.
	ErrInvalidAmount = errors.New("amount must be at least ₹1")

	// ErrInsufficientFunds is returned when a transfer exceeds the sender's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrRecipientNotFound is returned when the transfer recipient is not in the ledger.
	ErrRecipientNotFound = errors.New("recipient account not found")

	// ErrInvalidPIN is returned when a new PIN is outside the 4-digit range.
	ErrInvalidPIN = errors.New("PIN must be a 4-digit number")

	// ErrNoReference is returned when an account has no stored face reference yet.
	ErrNoReference = errors.New("no face reference on file")

	// ErrEnrolled is returned after a captured face is stored as a new
	// reference. Enrollment never grants a session; the user must log in again.
	ErrEnrolled = errors.New("face registered, please login again")

	// ErrDeliveryFailed is returned when the OTP mail could not be sent.
	// The login attempt is aborted, not retried.
	ErrDeliveryFailed = errors.New("failed to deliver OTP")

	// ErrOTPDenied is returned when the OTP response does not match the issued code.
	ErrOTPDenied = errors.New("invalid OTP")

	// ErrSessionClosed is returned when an operation is attempted on a
	// logged-out session.
	ErrSessionClosed = errors.New("session is closed")

	// ErrCanceled is returned when the user cancels a prompt. The current
	// operation is aborted with no state change.
	ErrCanceled = errors.New("operation canceled")
)
