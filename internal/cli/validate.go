package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Input      string `json:"input"`
	Valid      bool   `json:"valid"`
	Historical bool   `json:"historical,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var historical bool

	cmd := &cobra.Command{
		Use:   "validate <numeral>",
		Short: "Check whether a string is a well-formed Roman numeral",
		Long: `Check a candidate string against the standard numeral grammar and the
[1, 3999] range. With --historical, additive forms like IIII are accepted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runValidate(formatter, args[0], historical)
		},
	}

	cmd.Flags().BoolVar(&historical, "historical", false, "accept historical additive forms")

	return cmd
}

func runValidate(formatter *OutputFormatter, input string, historical bool) error {
	result := ValidationResult{
		Input:      input,
		Valid:      roman.IsValid(input, historical),
		Historical: historical,
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		msg := fmt.Sprintf("%s is a valid numeral", input)
		if !result.Valid {
			msg = fmt.Sprintf("%s is not a valid numeral", input)
		}
		if err := formatter.Success(msg); err != nil {
			return err
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("invalid numeral %q", input))
	}
	return nil
}
