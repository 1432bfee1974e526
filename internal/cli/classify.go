package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embedkit/embedcheck/internal/document"
	"github.com/embedkit/embedcheck/internal/errors"
	"github.com/embedkit/embedcheck/models"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>...",
	Short: "Classify filter documents structurally",
	Long: `Classify filter documents by field presence, without trusting the
$schema discriminant. Reports basic, advanced, or unknown for each
document, plus the filter target kind when the document carries one.

Returns exit code 1 when any document classifies as unknown.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	unknown := 0
	for _, path := range args {
		doc, err := document.Decode(path)
		if err != nil {
			errors.PrintError(errors.NewRuntimeError(err.Error()))
			return NewExitError(ExitInvalidArguments)
		}
		obj, err := document.AsObject(doc)
		if err != nil {
			errors.PrintError(errors.NewRuntimeError(fmt.Sprintf("%s: %v", path, err)))
			return NewExitError(ExitInvalidArguments)
		}

		kind := models.ClassifyFilter(obj)
		if kind == models.FilterUnknown {
			unknown++
		}

		line := fmt.Sprintf("%s: %s filter", path, kind)
		if target, ok := obj["target"].(map[string]interface{}); ok {
			line += fmt.Sprintf(" (target: %s)", models.ClassifyFilterTarget(target))
		}
		fmt.Fprintln(out, line)
	}

	if unknown > 0 {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
