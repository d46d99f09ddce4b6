// Package repository defines the data-access contracts for the ledger, the
// transaction log and the face-reference store. Implementations live under
// infra.
package repository

import "github.com/gvbank/teller/pkg/domain"

// Ledger owns the account table of record.
type Ledger interface {
	// Load returns the full account table. It fails with
	// domain.ErrStoreUnavailable when the backing file is absent: the
	// system refuses to proceed without provisioned data.
	Load() ([]*domain.Account, error)

	// Find returns the record with the given account number or
	// domain.ErrNotFound.
	Find(number int64) (*domain.Account, error)

	// Rewrite atomically replaces the persisted table with the given one.
	// The entire table is written on every single-field change; there is
	// no incremental update.
	Rewrite(accounts []*domain.Account) error
}

// TransactionLog is the append-only record of transfers. It is written but
// never read back by this system.
type TransactionLog interface {
	// Append adds one transfer record, creating the log file with its
	// header when absent.
	Append(tx *domain.Transaction) error
}

// FaceReferences stores one reference image per account number.
type FaceReferences interface {
	// Load returns the stored reference image or domain.ErrNoReference.
	Load(number int64) ([]byte, error)

	// Store saves image as the reference for the account. References are
	// created once by enrollment; there is no re-enrollment flow.
	Store(number int64, image []byte) error
}
