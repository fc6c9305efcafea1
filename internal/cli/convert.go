package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/store"
)

// ConvertResult is the payload for a single conversion.
type ConvertResult struct {
	Input      string          `json:"input"`
	Output     string          `json:"output"`
	Direction  roman.Direction `json:"direction"`
	Historical bool            `json:"historical,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		historical bool
		direction  string
		historyDB  string
	)

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a Roman numeral to an integer or vice versa",
		Long: `Convert a single value between Roman numeral and integer notation.

The direction is detected from the input: all-digit inputs are rendered as
numerals, anything else is parsed as a numeral. Use --direction to force it.

Negative values look like flags; separate them with "--":

  romanum convert -- -5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runConvert(cmd.Context(), formatter, args[0], direction, historical, historyDB)
		},
	}

	cmd.Flags().BoolVar(&historical, "historical", false, "accept historical additive forms (IIII, VIIII, ...)")
	cmd.Flags().StringVar(&direction, "direction", "", "force direction (roman-to-int|int-to-roman)")
	cmd.Flags().StringVar(&historyDB, "history", "", "record the conversion in this history database")

	return cmd
}

func runConvert(ctx context.Context, formatter *OutputFormatter, input, direction string, historical bool, historyDB string) error {
	dir, err := resolveDirection(input, direction)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolve direction", err)
	}
	formatter.VerboseLog("converting %q (%s)", input, dir)

	result, convErr := convertValue(input, dir, historical)
	if convErr != nil {
		formatter.Error(errCodeFor(convErr), convErr.Error(), nil)
		return WrapExitError(ExitFailure, "conversion failed", convErr)
	}

	if historyDB != "" {
		if err := recordConversion(ctx, historyDB, result); err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return WrapExitError(ExitCommandError, "record conversion", err)
		}
		formatter.VerboseLog("recorded in %s", historyDB)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(result.Output)
}

// resolveDirection applies the --direction override or detects the
// direction from the input shape.
func resolveDirection(input, override string) (roman.Direction, error) {
	if override != "" {
		return roman.ParseDirection(override)
	}
	if isAllDigits(strings.TrimSpace(input)) {
		return roman.IntToRoman, nil
	}
	return roman.RomanToInt, nil
}

// convertValue performs one conversion in the given direction.
func convertValue(input string, dir roman.Direction, historical bool) (ConvertResult, error) {
	res := ConvertResult{Input: input, Direction: dir, Historical: historical}

	switch dir {
	case roman.IntToRoman:
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return res, &roman.OutOfRangeError{}
		}
		out, err := roman.FromInt(n)
		if err != nil {
			return res, err
		}
		res.Output = out
	default:
		// Same gate as batch items: ToInt alone performs no grammar or
		// range check.
		if !roman.IsValid(input, historical) {
			return res, &roman.InvalidNumeralError{Input: input}
		}
		n, err := roman.ToInt(input, historical)
		if err != nil {
			return res, err
		}
		res.Output = strconv.Itoa(n)
	}

	return res, nil
}

// recordConversion appends one record to the history database and prunes
// anything beyond the bounded history.
func recordConversion(ctx context.Context, path string, res ConvertResult) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.WriteRecord(ctx, store.NewRecord(res.Input, res.Output, res.Direction, res.Historical)); err != nil {
		return err
	}
	_, err = s.Prune(ctx)
	return err
}

// errCodeFor maps engine error kinds to CLI error codes.
func errCodeFor(err error) string {
	switch {
	case roman.IsInvalidNumeral(err):
		return ErrCodeInvalidNumeral
	case roman.IsOutOfRange(err):
		return ErrCodeOutOfRange
	case roman.IsEmptyInput(err):
		return ErrCodeEmptyInput
	default:
		return ErrCodeGeneric
	}
}

// isAllDigits reports whether s is a non-empty run of ASCII digits,
// optionally signed (so -5 routes to the range check, not numeral parsing).
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
