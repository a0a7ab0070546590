package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(business string) Entry {
	return Entry{
		Timestamp:        time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC),
		BusinessName:     business,
		PeriodStart:      "2025-03-01",
		PeriodEnd:        "2025-03-31",
		IncomeAmount:     decimal.RequireFromString("1500.00"),
		ProcessingAmount: decimal.RequireFromString("150.00"),
	}
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, Append(path, []Entry{entry("Harbor Cafe")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
}

func TestAppend_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, Append(path, []Entry{entry("Harbor Cafe")}))
	require.NoError(t, Append(path, []Entry{entry("Corner Shop")}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Harbor Cafe", entries[0].BusinessName)
	assert.Equal(t, "Corner Shop", entries[1].BusinessName)
}

func TestRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	want := entry("Harbor Cafe")
	require.NoError(t, Append(path, []Entry{want}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, got.Timestamp.Equal(want.Timestamp))
	assert.Equal(t, "2025-03-01", got.PeriodStart)
	assert.Equal(t, "2025-03-31", got.PeriodEnd)
	assert.Equal(t, "1500.00", got.IncomeAmount.StringFixed(2))
	assert.Equal(t, "150.00", got.ProcessingAmount.StringFixed(2))
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "none.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}
