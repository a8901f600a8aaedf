package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/rindex/dispersion"
	"github.com/phil-mansfield/rindex/parse"
	"github.com/phil-mansfield/rindex/version"
)

func (a *app) formulasCommand() *cobra.Command {
	return &cobra.Command{
		Use: "formulas",
		Short: "List the supported dispersion formulas",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.writeLines(FormulaLines())
		},
	}
}

// FormulaLines describes every dispersion formula, one per line.
func FormulaLines() []string {
	lines := []string{"# id name coefficients computes"}
	for _, f := range dispersion.Formulas() {
		computes := "n"
		if f.Squared { computes = "n^2" }
		lines = append(lines, fmt.Sprintf("%2d %-20s %2d %s",
			f.ID, f.Name, f.NumCoefficients, computes))
	}
	return lines
}

func (a *app) exampleCommand() *cobra.Command {
	return &cobra.Command{
		Use: "example",
		Short: "Print an example material file",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.writeLines([]string{parse.ExampleMaterial})
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use: "version",
		Short: "Print the source version",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check == "" {
				return a.writeLines([]string{version.SourceVersion})
			}

			ok, err := version.Compatible(check)
			if err != nil { return err }
			if !ok {
				return fmt.Errorf("files written for version %s cannot be "+
					"read by version %s", check, version.SourceVersion)
			}
			return a.writeLines([]string{fmt.Sprintf(
				"version %s can read files written for version %s",
				version.SourceVersion, check)})
		},
	}
	cmd.Flags().StringVar(&check, "check", "",
		"check whether files written for this version can be read")
	return cmd
}
