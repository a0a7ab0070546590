package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcaflow-dev/mcaflow/internal/config"
)

const exportJSON = `{
  "accounts": [
    {"account_id": "acc-1", "name": "Harbor Cafe Current Account"}
  ],
  "transactions": [
    {"transaction_id": "txn-1", "account_id": "acc-1", "date": "2025-03-14", "name": "STRIPE PAYOUT", "amount": -250.50},
    {"transaction_id": "txn-2", "account_id": "acc-1", "date": "2025-03-15", "name": "FACEBK ADS", "amount": 55.00}
  ]
}`

func TestRunProcess_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	exportPath := filepath.Join(dir, "harbor.json")
	require.NoError(t, os.WriteFile(exportPath, []byte(exportJSON), 0o644))

	cfgPath := filepath.Join(dir, "mcaflow.yaml")
	cfg := config.Default()
	cfg.Businesses = []config.BusinessConfig{
		{Name: "Harbor Cafe", ProcessingPercentage: 10},
	}
	require.NoError(t, config.Save(cfgPath, cfg))

	outDir := filepath.Join(dir, "out")
	err := runProcess([]string{exportPath}, processOptions{
		configPath: cfgPath,
		outDir:     outDir,
	})
	require.NoError(t, err)

	txns, err := os.ReadFile(filepath.Join(outDir, "transactions.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(txns)), "\n")
	assert.Len(t, lines, 3) // header + 2 rows
	assert.Contains(t, lines[1], "Income")
	assert.Contains(t, lines[2], "Expenses")

	summary, err := os.ReadFile(filepath.Join(outDir, "summary.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Harbor Cafe,250.50,1,10,25.05")

	hist, err := os.ReadFile(filepath.Join(outDir, "history.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(hist), "Harbor Cafe")
}

func TestRunProcess_DirectoryArgument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harbor.json"), []byte(exportJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	outDir := filepath.Join(dir, "out")
	err := runProcess([]string{dir}, processOptions{
		configPath: filepath.Join(dir, "missing.yaml"),
		outDir:     outDir,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "transactions.csv"))
	assert.NoError(t, err)
}

func TestRunProcess_NoFiles(t *testing.T) {
	dir := t.TempDir()
	err := runProcess([]string{dir}, processOptions{
		configPath: filepath.Join(dir, "missing.yaml"),
		outDir:     dir,
	})
	assert.ErrorContains(t, err, "no export files")
}

func TestParseDateRange(t *testing.T) {
	start, end, err := parseDateRange("2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, 31, end.Day())

	_, _, err = parseDateRange("2025-03-31", "2025-03-01")
	assert.ErrorContains(t, err, "--from must not be after --to")

	_, _, err = parseDateRange("31/03/2025", "")
	assert.Error(t, err)
}

func TestParseNameOverrides(t *testing.T) {
	names, err := parseNameOverrides([]string{"harbor.json=Harbor Cafe Ltd"})
	require.NoError(t, err)
	assert.Equal(t, "Harbor Cafe Ltd", names["harbor.json"])

	_, err = parseNameOverrides([]string{"no-separator"})
	assert.Error(t, err)

	names, err = parseNameOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, names)
}
