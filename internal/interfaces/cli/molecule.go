package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolViz-Engine/pkg/errors"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// newMoleculeCmd groups the molecule-level operations.
func newMoleculeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molecule",
		Short: "Build and validate molecule geometry from SMILES",
	}
	cmd.AddCommand(newMoleculeBuildCmd(), newMoleculeValidateCmd())
	return cmd
}

func newMoleculeBuildCmd() *cobra.Command {
	var smilesInput string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a 3-D atom/bond model from a SMILES string",
		Example: `  molviz molecule build --smiles "CCO"
  molviz molecule build --smiles "CC(=O)O" --seed 42 -o text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			model := cliCtx.Service.BuildMolecule(cmd.Context(), smilesInput)

			if cliCtx.OutputFormat == "text" {
				printMoleculeText(cmd, model)
				return nil
			}
			return printJSON(cmd, model)
		},
	}

	cmd.Flags().StringVarP(&smilesInput, "smiles", "s", "", "SMILES string to build (required)")
	_ = cmd.MarkFlagRequired("smiles")
	return cmd
}

func newMoleculeValidateCmd() *cobra.Command {
	var smilesInput string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a SMILES string for balanced brackets",
		Long: "Validate runs the same lightweight pre-check used before rendering:\n" +
			"parentheses and square brackets must be balanced and never close before\n" +
			"they open.  Exit status is 0 for valid input and 1 otherwise.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			valid := cliCtx.Service.ValidateSMILES(smilesInput)

			if cliCtx.OutputFormat == "text" {
				if valid {
					fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", smilesInput)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", smilesInput)
				}
			} else {
				if err := printJSON(cmd, map[string]interface{}{
					"smiles": smilesInput,
					"valid":  valid,
				}); err != nil {
					return err
				}
			}

			if !valid {
				return errors.New(errors.CodeMoleculeInvalidSMILES, "SMILES failed bracket-balance check").
					WithDetail("smiles=" + smilesInput)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&smilesInput, "smiles", "s", "", "SMILES string to validate (required)")
	_ = cmd.MarkFlagRequired("smiles")
	return cmd
}

// printMoleculeText writes a human-readable summary of a molecule model.
func printMoleculeText(cmd *cobra.Command, model *geometry.MoleculeModel) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "SMILES:   %s\n", model.SMILES)
	fmt.Fprintf(out, "Fallback: %v\n", model.Fallback)
	fmt.Fprintf(out, "Atoms:    %d\n", model.AtomCount())
	fmt.Fprintf(out, "Bonds:    %d\n", model.BondCount())
	for _, a := range model.Atoms {
		fmt.Fprintf(out, "  [%d] %-2s at (%.3f, %.3f, %.3f) r=%.2f\n",
			a.Index, a.Symbol, a.Position.X, a.Position.Y, a.Position.Z, a.Radius)
	}
	for _, b := range model.Bonds {
		fmt.Fprintf(out, "  bond %d-%d order=%d\n", b.From, b.To, b.Order)
	}
}
