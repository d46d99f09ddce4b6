package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/money"
	"github.com/gvbank/teller/pkg/provider/face"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

// memLedger is an in-memory repository.Ledger. Load and Find hand out
// copies, the way the CSV store parses fresh records on every call, so a
// mutation only persists through Rewrite.
type memLedger struct {
	accounts   []*domain.Account
	loadErr    error
	rewriteErr error
	rewrites   int
}

func newMemLedger(accounts ...*domain.Account) *memLedger {
	l := &memLedger{}
	for _, acc := range accounts {
		clone := *acc
		l.accounts = append(l.accounts, &clone)
	}
	return l
}

func (l *memLedger) Load() ([]*domain.Account, error) {
	if l.loadErr != nil {
		return nil, l.loadErr
	}
	out := make([]*domain.Account, len(l.accounts))
	for i, acc := range l.accounts {
		clone := *acc
		out[i] = &clone
	}
	return out, nil
}

func (l *memLedger) Find(number int64) (*domain.Account, error) {
	accounts, err := l.Load()
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

func (l *memLedger) Rewrite(accounts []*domain.Account) error {
	if l.rewriteErr != nil {
		return l.rewriteErr
	}
	l.rewrites++
	out := make([]*domain.Account, len(accounts))
	for i, acc := range accounts {
		clone := *acc
		out[i] = &clone
	}
	l.accounts = out
	return nil
}

// mustBalance returns the persisted balance for an account number.
func (l *memLedger) mustBalance(t *testing.T, number int64) money.Money {
	t.Helper()
	acc, err := l.Find(number)
	if err != nil {
		t.Fatalf("account %d not in ledger: %v", number, err)
	}
	return acc.Balance
}

// memTxLog records appended transactions.
type memTxLog struct {
	records   []*domain.Transaction
	appendErr error
}

func (l *memTxLog) Append(tx *domain.Transaction) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.records = append(l.records, tx)
	return nil
}

// memRefs is an in-memory repository.FaceReferences.
type memRefs struct {
	images   map[int64][]byte
	storeErr error
}

func newMemRefs() *memRefs { return &memRefs{images: map[int64][]byte{}} }

func (r *memRefs) Load(number int64) ([]byte, error) {
	image, ok := r.images[number]
	if !ok {
		return nil, fmt.Errorf("%w: account %d", domain.ErrNoReference, number)
	}
	return image, nil
}

func (r *memRefs) Store(number int64, image []byte) error {
	if r.storeErr != nil {
		return r.storeErr
	}
	r.images[number] = image
	return nil
}

// fixedVerifier returns one verification result for every account.
type fixedVerifier struct {
	result face.Result
	err    error
}

func (v fixedVerifier) Verify(int64, []byte) (face.Result, error) {
	return v.result, v.err
}

// recordingDeliverer captures the delivered code.
type recordingDeliverer struct {
	email, code string
	err         error
}

func (d *recordingDeliverer) Deliver(_ context.Context, email, code string) error {
	if d.err != nil {
		return d.err
	}
	d.email, d.code = email, code
	return nil
}

// scriptedOTP answers the OTP prompt. When echo is true it answers with
// the delivered code; otherwise with the fixed input.
type scriptedOTP struct {
	deliverer *recordingDeliverer
	echo      bool
	input     string
	canceled  bool
	asked     bool
}

func (p *scriptedOTP) PromptOTP() (string, bool) {
	p.asked = true
	if p.canceled {
		return "", false
	}
	if p.echo {
		return p.deliverer.code, true
	}
	return p.input, true
}

// scriptedPrompter answers dashboard prompts with fixed values; any field
// left at zero with its ok flag false simulates cancellation.
type scriptedPrompter struct {
	amount    money.Money
	amountOK  bool
	account   int64
	accountOK bool
	pin       int
	pinOK     bool
}

func (p scriptedPrompter) Amount(string) (money.Money, bool)  { return p.amount, p.amountOK }
func (p scriptedPrompter) AccountNumber(string) (int64, bool) { return p.account, p.accountOK }
func (p scriptedPrompter) PIN(string) (int, bool)             { return p.pin, p.pinOK }

func user1(balance money.Money) *domain.Account {
	return &domain.Account{
		Number: 1001, Name: "User1", Email: "user1@example.com",
		Balance: balance, PIN: 1234,
	}
}

func user2(balance money.Money) *domain.Account {
	return &domain.Account{
		Number: 1002, Name: "User2", Email: "user2@example.com",
		Balance: balance, PIN: 4321,
	}
}
