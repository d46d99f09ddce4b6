package txlog_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gvbank/teller/infra/txlog"
	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	return rows
}

func fixedTx(from, to int64, amount money.Money) *domain.Transaction {
	return &domain.Transaction{
		ID:     uuid.New(),
		Date:   time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		From:   from,
		To:     to,
		Amount: amount,
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	t.Run("creates file with header on first append", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.csv")
		log := txlog.NewCSVLog(path)

		require.NoError(t, log.Append(fixedTx(1001, 1002, money.Must(20000))))

		rows := readRows(t, path)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Date", "From", "To", "Amount (₹)"}, rows[0])
		assert.Equal(t, []string{"2026-03-14 15:09:26", "1001", "1002", "20000.00"}, rows[1])
	})

	t.Run("appends without rewriting earlier records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.csv")
		log := txlog.NewCSVLog(path)

		require.NoError(t, log.Append(fixedTx(1001, 1002, money.Must(100))))
		require.NoError(t, log.Append(fixedTx(1002, 1001, money.Must(50))))

		rows := readRows(t, path)
		require.Len(t, rows, 3, "header plus two records")
		assert.Equal(t, "1001", rows[1][1])
		assert.Equal(t, "1002", rows[2][1])
	})
}

func TestTouch(t *testing.T) {
	t.Parallel()

	t.Run("creates empty log with header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.csv")
		require.NoError(t, txlog.NewCSVLog(path).Touch())

		rows := readRows(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"Date", "From", "To", "Amount (₹)"}, rows[0])
	})

	t.Run("leaves an existing log untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.csv")
		log := txlog.NewCSVLog(path)
		require.NoError(t, log.Append(fixedTx(1001, 1002, money.Must(1))))

		require.NoError(t, log.Touch())
		rows := readRows(t, path)
		assert.Len(t, rows, 2, "header plus the one record")
	})
}
