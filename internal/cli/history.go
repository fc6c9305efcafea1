package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/report"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/store"
)

// NewHistoryCommand creates the history command group.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and export recorded conversions",
	}

	cmd.AddCommand(newHistoryListCommand(rootOpts))
	cmd.AddCommand(newHistoryExportCommand(rootOpts))

	return cmd
}

func newHistoryListCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <db>",
		Short: "List recorded conversions, most recent first",
		Long: `List recorded conversions, most recent first. At most the newest 100
records are shown regardless of --limit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runHistoryList(cmd.Context(), formatter, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum records to show (0 = full bounded history)")

	return cmd
}

func newHistoryExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <db>",
		Short: "Export recorded conversions as CSV",
		Long: `Export the bounded history as CSV with quoted fields, most recent first.
The CSV goes to stdout regardless of --format.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runHistoryExport(cmd.Context(), formatter, args[0])
		},
	}

	return cmd
}

func runHistoryList(ctx context.Context, formatter *OutputFormatter, path string, limit int) error {
	records, err := readHistory(ctx, path, limit)
	if err != nil {
		formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read history", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(records)
	}
	_, err = formatter.Writer.Write([]byte(report.FormatHistoryTable(records)))
	return err
}

func runHistoryExport(ctx context.Context, formatter *OutputFormatter, path string) error {
	records, err := readHistory(ctx, path, 0)
	if err != nil {
		formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read history", err)
	}

	if err := report.WriteCSV(formatter.Writer, records); err != nil {
		return WrapExitError(ExitCommandError, "export history", err)
	}
	return nil
}

// readHistory opens the store, reads the bounded history, and closes it.
func readHistory(ctx context.Context, path string, limit int) ([]store.Record, error) {
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.ReadRecent(ctx, limit)
}
