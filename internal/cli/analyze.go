package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <numeral>",
		Short: "Report historical notation used by a numeral",
		Long: `Analyze a numeral for historical (additive) notation such as IIII for 4.

Reports a coarse period label, the specific variations found, and the
modern canonical equivalent. Analysis is advisory: uninterpretable input
yields an Unknown result, not an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runAnalyze(formatter, args[0])
		},
	}

	return cmd
}

func runAnalyze(formatter *OutputFormatter, input string) error {
	a := roman.Analyze(input)

	if formatter.Format == "json" {
		return formatter.Success(a)
	}
	return formatter.Success(formatAnalysis(input, a))
}

// formatAnalysis renders an Analysis as human-readable text.
func formatAnalysis(input string, a roman.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s period", strings.TrimSpace(input), a.Period)
	if a.ModernEquivalent != "" {
		fmt.Fprintf(&b, ", modern form %s", a.ModernEquivalent)
	}
	for _, v := range a.Variations {
		fmt.Fprintf(&b, "\n  - %s", v)
	}
	return b.String()
}
