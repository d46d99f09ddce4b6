// Package face defines the biometric verification contract. The actual
// recognition backend is an external collaborator; this package only fixes
// the shape of the conversation: one captured image against one stored
// reference, per account.
package face

import (
	"errors"
	"fmt"

	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/repository"
)

// Result is the outcome of a verification.
type Result int

const (
	// NoMatch means a reference exists but the captured image does not match it.
	NoMatch Result = iota
	// Match means the captured image matches the stored reference.
	Match
	// NoReference means the account has no stored reference yet. The
	// caller enrolls the captured image instead of granting access.
	NoReference
)

// String returns the result name for logging.
func (r Result) String() string {
	switch r {
	case Match:
		return "match"
	case NoReference:
		return "no-reference"
	default:
		return "no-match"
	}
}

// Verifier compares a captured image against the stored reference for an account.
type Verifier interface {
	Verify(number int64, captured []byte) (Result, error)
}

// Matcher is the recognition backend contract: it decides whether two
// images show the same person.
type Matcher interface {
	Compare(reference, captured []byte) (bool, error)
}

// StoreVerifier adapts a reference store and a Matcher into a Verifier.
type StoreVerifier struct {
	refs    repository.FaceReferences
	matcher Matcher
}

// NewStoreVerifier creates a Verifier backed by the given reference store
// and recognition backend.
func NewStoreVerifier(refs repository.FaceReferences, matcher Matcher) *StoreVerifier {
	return &StoreVerifier{refs: refs, matcher: matcher}
}

// Verify loads the account's reference and compares the captured image
// against it. A missing reference is reported as NoReference, not an error.
func (v *StoreVerifier) Verify(number int64, captured []byte) (Result, error) {
	reference, err := v.refs.Load(number)
	if errors.Is(err, domain.ErrNoReference) {
		return NoReference, nil
	}
	if err != nil {
		return NoMatch, fmt.Errorf("load face reference for account %d: %w", number, err)
	}

	ok, err := v.matcher.Compare(reference, captured)
	if err != nil {
		return NoMatch, fmt.Errorf("compare faces for account %d: %w", number, err)
	}
	if ok {
		return Match, nil
	}
	return NoMatch, nil
}
