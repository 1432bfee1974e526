package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embedkit/embedcheck/internal/errors"
	"github.com/embedkit/embedcheck/validation"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the registered schema documents",
	Long: `List the embedded schema documents with their reference URIs.

Use --show to print one document's JSON.`,
	Args: cobra.NoArgs,
	RunE: runSchemas,
}

func init() {
	schemasCmd.Flags().String("show", "", "Print the named schema document")
	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(cmd *cobra.Command, args []string) error {
	reg := validation.DefaultRegistry()
	out := cmd.OutOrStdout()

	show, _ := cmd.Flags().GetString("show")
	if show != "" {
		doc, ok := reg[show]
		if !ok {
			errors.PrintError(errors.NewArgumentError(
				fmt.Sprintf("no schema named %q", show),
				"run 'embedcheck schemas' to list available names"))
			return NewExitError(ExitInvalidArguments)
		}
		fmt.Fprint(out, string(doc.Raw))
		return nil
	}

	for _, name := range reg.Names() {
		fmt.Fprintf(out, "%-18s %s\n", name, reg[name].URI())
	}
	return nil
}
