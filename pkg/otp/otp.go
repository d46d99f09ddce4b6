// Package otp issues and checks the one-time codes used as the fallback
// credential when a face does not match its stored reference.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a challenge check.
type Result int

const (
	// Denied means the response did not match, or the challenge was
	// already consumed.
	Denied Result = iota
	// Verified means the response matched the issued code.
	Verified
)

// String returns the result name for logging.
func (r Result) String() string {
	if r == Verified {
		return "verified"
	}
	return "denied"
}

// codeSpace is the number of distinct 6-digit codes (000000–999999).
const codeSpace = 1_000_000

// Challenge is an ephemeral (code, account, issued-at) tuple, live for one
// login attempt. It allows exactly one verification attempt, success or
// failure, and has no expiry timer beyond that single prompt.
type Challenge struct {
	ID       uuid.UUID
	Account  int64
	IssuedAt time.Time

	code     string
	consumed bool
}

// Issue creates a challenge for the account with a uniformly random
// 6-digit decimal code.
func Issue(account int64) (*Challenge, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return nil, fmt.Errorf("generate OTP: %w", err)
	}
	return &Challenge{
		ID:       uuid.New(),
		Account:  account,
		IssuedAt: time.Now(),
		code:     fmt.Sprintf("%06d", n.Int64()),
	}, nil
}

// Code returns the issued code for delivery.
func (c *Challenge) Code() string { return c.code }

// Check compares input against the issued code with exact string equality
// and consumes the challenge. Any attempt after the first is denied.
func (c *Challenge) Check(input string) Result {
	if c.consumed {
		return Denied
	}
	c.consumed = true
	if input == c.code {
		return Verified
	}
	return Denied
}
