// Package txlog implements the append-only transfer log as a CSV file.
// The log is written on every successful transfer and never read back.
package txlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gvbank/teller/pkg/domain"
)

// header is the exact column set of the transactions file.
var header = []string{"Date", "From", "To", "Amount (₹)"}

// dateLayout is the timestamp format of the Date column.
const dateLayout = "2006-01-02 15:04:05"

// CSVLog implements repository.TransactionLog over one transactions file.
// The file is auto-created, with header, on first append.
type CSVLog struct {
	path string
}

// NewCSVLog creates a log appending to the file at path.
func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

// Append adds one transfer record to the end of the log.
func (l *CSVLog) Append(tx *domain.Transaction) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open transaction log: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("stat transaction log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close() //nolint:errcheck,gosec
			return fmt.Errorf("write transaction log header: %w", err)
		}
	}
	row := []string{
		tx.Date.Format(dateLayout),
		strconv.FormatInt(tx.From, 10),
		strconv.FormatInt(tx.To, 10),
		tx.Amount.DecimalString(),
	}
	if err := w.Write(row); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("write transaction record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("flush transaction log: %w", err)
	}
	return f.Close()
}

// Touch creates the log file with its header when absent, leaving an
// existing log untouched. Called at startup so a fresh installation has
// an empty table rather than no file.
func (l *CSVLog) Touch() error {
	info, err := os.Stat(l.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create transaction log: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("write transaction log header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("flush transaction log: %w", err)
	}
	return f.Close()
}
