package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolViz-Engine/internal/application/visualization"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		input     string
		inputType string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a molecule identifier (SMILES, InChI, or formula)",
		Example: `  molviz analyze --input "CCO" --type smiles
  molviz analyze --input "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3" --type inchi
  molviz analyze --input "C2H6O" --type formula`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			result, err := cliCtx.Service.Analyze(cmd.Context(), input, inputType)
			if err != nil {
				return err
			}

			if cliCtx.OutputFormat == "text" {
				printAnalysisText(cmd, result)
				return nil
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "molecule identifier to analyze (required)")
	cmd.Flags().StringVarP(&inputType, "type", "t", visualization.InputSMILES, "input type (smiles, inchi, formula)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newWeightCmd() *cobra.Command {
	var formulaInput string

	cmd := &cobra.Command{
		Use:     "weight",
		Short:   "Compute the molecular weight of a chemical formula",
		Example: `  molviz weight --formula C2H6O`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			w := cliCtx.Service.MolecularWeight(formulaInput)

			if cliCtx.OutputFormat == "text" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f g/mol\n", formulaInput, w)
				return nil
			}
			return printJSON(cmd, map[string]interface{}{
				"formula": formulaInput,
				"weight":  w,
			})
		},
	}

	cmd.Flags().StringVarP(&formulaInput, "formula", "f", "", "molecular formula, e.g. C2H6O (required)")
	_ = cmd.MarkFlagRequired("formula")
	return cmd
}

func printAnalysisText(cmd *cobra.Command, result *visualization.AnalysisResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Input:   %s (%s)\n", result.Input, result.InputType)
	if result.Formula != "" {
		fmt.Fprintf(out, "Formula: %s\n", result.Formula)
	}
	fmt.Fprintf(out, "Weight:  %.2f g/mol\n", result.Weight)
	if result.AtomCount > 0 {
		fmt.Fprintf(out, "Atoms:   %d\n", result.AtomCount)
	}
	if len(result.Atoms) > 0 {
		symbols := make([]string, 0, len(result.Atoms))
		for sym := range result.Atoms {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			fmt.Fprintf(out, "  %-2s x%d\n", sym, result.Atoms[sym])
		}
	}
	if p := result.Properties; p != nil {
		fmt.Fprintf(out, "Aromatic rings:      %d\n", p.AromaticRings)
		fmt.Fprintf(out, "Hydroxyl groups:     %d\n", p.HydroxylGroups)
		fmt.Fprintf(out, "Estimated logP:      %.2f\n", p.EstimatedLogP)
		fmt.Fprintf(out, "Lipinski violations: %d\n", p.LipinskiViolations)
		fmt.Fprintf(out, "Drug-like:           %v\n", p.DrugLike)
	}
}
