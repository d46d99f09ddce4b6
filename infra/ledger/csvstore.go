// Package ledger implements the account table of record as a CSV file,
// matching the layout the bank's provisioning produces: a header row
// followed by one row per account.
//
// Every mutation rewrites the whole file, header included. The rewrite
// goes through a temporary file and an os.Rename so a crash before the
// rename leaves the previous table intact; a crash during the rename
// itself is a documented limitation. There is no locking: the teller
// assumes single-process, single-session access.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/money"
)

// header is the exact column set of the accounts file.
var header = []string{"Account Number", "Name", "Email", "Balance (₹)", "PIN"}

// CSVStore implements repository.Ledger over one accounts file.
type CSVStore struct {
	path     string
	validate *validator.Validate
}

// NewCSVStore creates a store reading and rewriting the file at path.
// The file itself is provisioned out-of-band; the store never creates it.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path, validate: validator.New()}
}

// Load reads and validates the full account table.
func (s *CSVStore) Load() ([]*domain.Account, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ledger %s: missing header", s.path)
	}
	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("ledger %s: expected %d columns, got %d", s.path, len(header), len(rows[0]))
	}

	accounts := make([]*domain.Account, 0, len(rows)-1)
	seen := make(map[int64]bool, len(rows)-1)
	for i, row := range rows[1:] {
		acc, err := s.parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("ledger %s row %d: %w", s.path, i+2, err)
		}
		if seen[acc.Number] {
			return nil, fmt.Errorf("ledger %s row %d: duplicate account number %d", s.path, i+2, acc.Number)
		}
		seen[acc.Number] = true
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (s *CSVStore) parseRow(row []string) (*domain.Account, error) {
	if len(row) != len(header) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}
	number, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("account number %q: %w", row[0], err)
	}
	balance, err := money.Parse(row[3])
	if err != nil {
		return nil, fmt.Errorf("balance %q: %w", row[3], err)
	}
	pin, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, fmt.Errorf("PIN: %w", err)
	}
	acc := &domain.Account{
		Number:  number,
		Name:    row[1],
		Email:   row[2],
		Balance: balance,
		PIN:     pin,
	}
	if err := s.validate.Struct(acc); err != nil {
		return nil, fmt.Errorf("invalid record for account %d: %w", number, err)
	}
	return acc, nil
}

// Find returns the record with the given number or domain.ErrNotFound.
func (s *CSVStore) Find(number int64) (*domain.Account, error) {
	accounts, err := s.Load()
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		if acc.Number == number {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrNotFound, number)
}

// Seed creates the accounts file with the given records. Provisioning is
// an explicit act: Seed refuses to overwrite an existing ledger, and
// nothing else in this package ever creates the file.
func (s *CSVStore) Seed(accounts []*domain.Account) error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("ledger %s already exists", s.path)
	}
	return s.Rewrite(accounts)
}

// Rewrite replaces the persisted table with accounts. The new table is
// written to a temporary file first and renamed over the original.
func (s *CSVStore) Rewrite(accounts []*domain.Account) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, acc := range accounts {
		row := []string{
			strconv.FormatInt(acc.Number, 10),
			acc.Name,
			acc.Email,
			acc.Balance.DecimalString(),
			strconv.Itoa(acc.PIN),
		}
		if err := w.Write(row); err != nil {
			f.Close() //nolint:errcheck,gosec
			return fmt.Errorf("write ledger row for account %d: %w", acc.Number, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp ledger: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
