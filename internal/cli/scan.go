package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/report"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/scan"
)

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		historical   bool
		numeralsOnly bool
		integersOnly bool
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Convert numerals and integers inside a text document",
		Long: `Scan a text file for Roman numeral and integer substrings and substitute
conversions in place. The rewritten document goes to stdout (or --output);
the processing summary goes to stderr. Candidates that fail conversion are
left untouched and reported as failures.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			mode := scan.Both
			switch {
			case numeralsOnly && integersOnly:
				err := fmt.Errorf("--numerals-only and --integers-only are mutually exclusive")
				formatter.Error(ErrCodeGeneric, err.Error(), nil)
				return WrapExitError(ExitCommandError, "scan", err)
			case numeralsOnly:
				mode = scan.NumeralsOnly
			case integersOnly:
				mode = scan.IntegersOnly
			}

			return runScan(formatter, args[0], scan.Options{Historical: historical, Mode: mode}, outputPath)
		},
	}

	cmd.Flags().BoolVar(&historical, "historical", false, "accept historical additive forms")
	cmd.Flags().BoolVar(&numeralsOnly, "numerals-only", false, "rewrite only Roman numerals")
	cmd.Flags().BoolVar(&integersOnly, "integers-only", false, "rewrite only integers")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the rewritten document to this file instead of stdout")

	return cmd
}

func runScan(formatter *OutputFormatter, path string, opts scan.Options, outputPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read document", err)
	}

	res := scan.Document(string(data), opts)
	formatter.VerboseLog("scan: %d substitution(s), %d failure(s)", res.Summary.Replacements, len(res.Summary.Failures))

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(res.Text), 0o644); err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitCommandError, "write document", err)
		}
	}

	if formatter.Format == "json" {
		out := res
		if outputPath != "" {
			// The document went to a file; keep the JSON payload small.
			out.Text = ""
		}
		return formatter.Success(out)
	}

	if outputPath == "" {
		fmt.Fprint(formatter.Writer, res.Text)
	}
	fmt.Fprint(formatter.GetErrWriter(), report.FormatScanSummary(res.Summary))
	return nil
}
