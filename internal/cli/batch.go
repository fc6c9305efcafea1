package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/report"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/store"
)

// BatchResult is the JSON payload for a batch run.
type BatchResult struct {
	Direction  roman.Direction `json:"direction"`
	Historical bool            `json:"historical,omitempty"`
	Outcomes   []roman.Outcome `json:"outcomes"`
	Succeeded  int             `json:"succeeded"`
	Failed     int             `json:"failed"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		inputs     []string
		direction  string
		historical bool
		historyDB  string
	)

	cmd := &cobra.Command{
		Use:   "batch [job.yaml]",
		Short: "Convert many values at once",
		Long: `Convert a sequence of inputs, either from a YAML job file or from repeated
--input flags. Items are converted independently: one bad item never blocks
the rest. The exit code is 1 when any item failed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			jobPath := ""
			if len(args) == 1 {
				jobPath = args[0]
			}
			return runBatch(cmd.Context(), formatter, jobPath, inputs, direction, historical, historyDB)
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input value (repeatable; alternative to a job file)")
	cmd.Flags().StringVar(&direction, "direction", string(roman.RomanToInt), "conversion direction (roman-to-int|int-to-roman)")
	cmd.Flags().BoolVar(&historical, "historical", false, "accept historical additive forms")
	cmd.Flags().StringVar(&historyDB, "history", "", "record successful conversions in this history database")

	return cmd
}

func runBatch(ctx context.Context, formatter *OutputFormatter, jobPath string, inputs []string, direction string, historical bool, historyDB string) error {
	var dir roman.Direction

	switch {
	case jobPath != "" && len(inputs) > 0:
		err := fmt.Errorf("use either a job file or --input flags, not both")
		formatter.Error(ErrCodeBadJobFile, err.Error(), nil)
		return WrapExitError(ExitCommandError, "batch", err)

	case jobPath != "":
		job, jobDir, err := LoadBatchJob(jobPath)
		if err != nil {
			formatter.Error(ErrCodeBadJobFile, err.Error(), nil)
			return WrapExitError(ExitCommandError, "load batch job", err)
		}
		inputs = job.Inputs
		historical = job.Historical
		dir = jobDir

	case len(inputs) > 0:
		var err error
		dir, err = roman.ParseDirection(direction)
		if err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitCommandError, "batch", err)
		}

	default:
		err := fmt.Errorf("no inputs: pass a job file or --input flags")
		formatter.Error(ErrCodeBadJobFile, err.Error(), nil)
		return WrapExitError(ExitCommandError, "batch", err)
	}

	formatter.VerboseLog("converting %d input(s), direction %s", len(inputs), dir)
	outcomes := roman.ConvertBatch(inputs, dir, historical)

	result := BatchResult{Direction: dir, Historical: historical, Outcomes: outcomes}
	for _, out := range outcomes {
		if out.OK {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}

	if historyDB != "" {
		if err := recordOutcomes(ctx, historyDB, outcomes, dir, historical); err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return WrapExitError(ExitCommandError, "record batch", err)
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(formatter.Writer, report.FormatBatchSummary(outcomes))
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d items failed", result.Failed, len(outcomes)))
	}
	return nil
}

// recordOutcomes appends the successful outcomes to the history database,
// then prunes. Failed items are not history - nothing was converted.
func recordOutcomes(ctx context.Context, path string, outcomes []roman.Outcome, dir roman.Direction, historical bool) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, out := range outcomes {
		if !out.OK {
			continue
		}
		if err := s.WriteRecord(ctx, store.NewRecord(out.Input, out.Output, dir, historical)); err != nil {
			return err
		}
	}
	_, err = s.Prune(ctx)
	return err
}
