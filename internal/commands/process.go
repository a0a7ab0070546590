package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcaflow-dev/mcaflow/internal/config"
	"github.com/mcaflow-dev/mcaflow/internal/history"
	"github.com/mcaflow-dev/mcaflow/internal/importer"
	"github.com/mcaflow-dev/mcaflow/internal/logging"
	"github.com/mcaflow-dev/mcaflow/internal/pipeline"
	"github.com/mcaflow-dev/mcaflow/internal/report"
)

const dateFormat = "2006-01-02"

type processOptions struct {
	configPath string
	outDir     string
	from       string
	to         string
	names      []string
}

func newProcessCommand() *cobra.Command {
	var opts processOptions

	cmd := &cobra.Command{
		Use:   "process <file|directory>...",
		Short: "Classify export files and write labeled CSVs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "mcaflow.yaml", "config file path")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "output directory")
	cmd.Flags().StringVar(&opts.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&opts.names, "name", nil, "business name override, file.json=Name (repeatable)")

	return cmd
}

func runProcess(args []string, opts processOptions) error {
	cfg, err := config.Load(opts.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.Logging.Level)

	start, end, err := parseDateRange(opts.from, opts.to)
	if err != nil {
		return err
	}

	names, err := parseNameOverrides(opts.names)
	if err != nil {
		return err
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no export files found")
	}

	proc := pipeline.New(importer.DefaultRegistry().Get("plaid"), pipeline.Options{
		Names:  names,
		Start:  start,
		End:    end,
		Logger: log,
	})
	rows := proc.ProcessFiles(files)
	if len(rows) == 0 {
		return fmt.Errorf("no transactions found in %d file(s)", len(files))
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	txnPath := filepath.Join(opts.outDir, cfg.Output.TransactionsFile)
	if err := writeCSV(txnPath, func(f *os.File) error {
		return report.WriteRows(f, rows)
	}); err != nil {
		return err
	}

	summaries := report.Summarize(rows, cfg.Percentages())
	summaryPath := filepath.Join(opts.outDir, cfg.Output.SummaryFile)
	if err := writeCSV(summaryPath, func(f *os.File) error {
		return report.WriteSummaries(f, summaries)
	}); err != nil {
		return err
	}

	if err := appendHistory(filepath.Join(opts.outDir, cfg.Output.HistoryFile), summaries, opts.from, opts.to); err != nil {
		return err
	}

	log.Info("run complete",
		"files", len(files),
		"transactions", len(rows),
		"businesses", len(summaries),
		"output", txnPath)
	return nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if from != "" {
		start, err = time.Parse(dateFormat, from)
		if err != nil {
			return start, end, fmt.Errorf("parsing --from %q: %w", from, err)
		}
	}
	if to != "" {
		end, err = time.Parse(dateFormat, to)
		if err != nil {
			return start, end, fmt.Errorf("parsing --to %q: %w", to, err)
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return start, end, fmt.Errorf("--from must not be after --to")
	}
	return start, end, nil
}

func parseNameOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	names := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		file, name, ok := strings.Cut(pair, "=")
		if !ok || file == "" || name == "" {
			return nil, fmt.Errorf("invalid --name %q, want file.json=Name", pair)
		}
		names[file] = name
	}
	return names, nil
}

// collectFiles expands directory arguments into their JSON exports.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := importer.Scan(arg)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
	}
	return files, nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func appendHistory(path string, summaries []report.BusinessSummary, from, to string) error {
	now := time.Now().UTC()
	entries := make([]history.Entry, 0, len(summaries))
	for _, s := range summaries {
		entries = append(entries, history.Entry{
			Timestamp:        now,
			BusinessName:     s.BusinessName,
			PeriodStart:      from,
			PeriodEnd:        to,
			IncomeAmount:     s.TotalIncome,
			ProcessingAmount: s.AmountToProcess,
		})
	}
	if len(entries) == 0 {
		return nil
	}
	return history.Append(path, entries)
}
