package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/embedkit/embedcheck/internal/config"
	"github.com/embedkit/embedcheck/internal/document"
	"github.com/embedkit/embedcheck/internal/errors"
	"github.com/embedkit/embedcheck/internal/progress"
	"github.com/embedkit/embedcheck/validation"
)

// schemaAliases maps --type spellings onto registry schema names.
var schemaAliases = map[string]string{
	"load":              "load",
	"settings":          "settings",
	"target":            "target",
	"page":              "page",
	"filter":            "filter",
	"filtersContainer":  "filtersContainer",
	"filters-container": "filtersContainer",
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate documents against an embed schema",
	Long: `Validate one or more JSON or YAML documents against an embed schema.

Each document is checked independently. Valid documents print a single
pass line; invalid documents print the normalized error messages.

Returns exit code 0 when every document is valid, 1 when any document
is invalid, and 2 for unreadable input.`,
	Example: `  embedcheck validate load.json
  embedcheck validate --type filter filters/*.json
  embedcheck validate --type filters-container slicers.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("type", "t", "", "Schema to validate against (load, settings, target, page, filter, filters-container)")
	validateCmd.Flags().Bool("fail-fast", false, "Stop at the first invalid document")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		errors.PrintError(errors.NewConfigError(err.Error(),
			"check the config file and EMBEDCHECK_* environment variables"))
		return NewExitError(ExitConfigError)
	}
	color.NoColor = color.NoColor || !cfg.Color

	schemaType, _ := cmd.Flags().GetString("type")
	if schemaType == "" {
		schemaType = cfg.DefaultType
	}
	name, ok := schemaAliases[schemaType]
	if !ok {
		errors.PrintError(errors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown schema type %q", schemaType),
			"embedcheck validate --type <type> <file>...",
			"use one of: load, settings, target, page, filter, filters-container"))
		return NewExitError(ExitInvalidArguments)
	}
	validator := validation.ValidatorFor(name)
	if validator == nil {
		errors.PrintError(errors.NewConfigError(fmt.Sprintf("no validator bound for schema %q", name)))
		return NewExitError(ExitConfigError)
	}

	failFast, _ := cmd.Flags().GetBool("fail-fast")
	failFast = failFast || cfg.FailFast

	caps := progress.Detect()
	var indicator *progress.Indicator
	if cfg.ShowProgress && len(args) > 1 {
		indicator = progress.NewIndicator(caps)
		indicator.Start(fmt.Sprintf("validating %d documents", len(args)))
		defer indicator.Stop()
	}

	out := cmd.OutOrStdout()
	symbols := progress.SelectSymbols(caps)
	invalid := 0
	for _, path := range args {
		if indicator != nil {
			indicator.Update(path)
		}

		doc, err := document.Decode(path)
		if err != nil {
			if indicator != nil {
				indicator.Stop()
			}
			errors.PrintError(errors.NewRuntimeError(err.Error()))
			return NewExitError(ExitInvalidArguments)
		}

		errs, err := validator.Validate(doc)
		if err != nil {
			if indicator != nil {
				indicator.Stop()
			}
			errors.PrintError(errors.NewRuntimeError(err.Error()))
			return NewExitError(ExitInvalidArguments)
		}

		if len(errs) == 0 {
			printPass(out, symbols, path, name)
			continue
		}

		invalid++
		printFail(out, symbols, path, name, errs)
		if failFast {
			break
		}
	}

	if invalid > 0 {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

func printPass(out io.Writer, symbols progress.Symbols, path, schema string) {
	mark := color.GreenString(symbols.Checkmark)
	fmt.Fprintf(out, "%s %s: valid (%s)\n", mark, path, schema)
}

func printFail(out io.Writer, symbols progress.Symbols, path, schema string, errs []validation.Error) {
	mark := color.RedString(symbols.Failure)
	fmt.Fprintf(out, "%s %s: invalid (%s)\n", mark, path, schema)
	for _, e := range errs {
		fmt.Fprintf(out, "  - %s\n", e.Message)
	}
}
