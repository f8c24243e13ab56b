package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// newSequenceCmd groups the biopolymer geometry operations.
func newSequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Build helix and backbone geometry from residue sequences",
	}
	cmd.AddCommand(newSequenceHelixCmd(), newSequenceBackboneCmd())
	return cmd
}

func newSequenceHelixCmd() *cobra.Command {
	var (
		seqInput string
		seqKind  string
	)

	cmd := &cobra.Command{
		Use:   "helix",
		Short: "Build a DNA/RNA double-helix model",
		Example: `  molviz sequence helix --type dna --seq ATGCATGCAT
  molviz sequence helix --type rna --seq AUGGCU -o text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			model, err := cliCtx.Service.BuildHelix(cmd.Context(), seqInput, seqKind)
			if err != nil {
				return err
			}

			if cliCtx.OutputFormat == "text" {
				printHelixText(cmd, model)
				return nil
			}
			return printJSON(cmd, model)
		},
	}

	cmd.Flags().StringVar(&seqKind, "type", "dna", "sequence type (dna, rna)")
	cmd.Flags().StringVar(&seqInput, "seq", "", "residue sequence (required)")
	_ = cmd.MarkFlagRequired("seq")
	return cmd
}

func newSequenceBackboneCmd() *cobra.Command {
	var seqInput string

	cmd := &cobra.Command{
		Use:     "backbone",
		Short:   "Build a protein backbone curve model",
		Example: `  molviz sequence backbone --seq MKVLATGFFW`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			model, err := cliCtx.Service.BuildBackbone(cmd.Context(), seqInput)
			if err != nil {
				return err
			}

			if cliCtx.OutputFormat == "text" {
				printBackboneText(cmd, model)
				return nil
			}
			return printJSON(cmd, model)
		},
	}

	cmd.Flags().StringVar(&seqInput, "seq", "", "amino-acid sequence (required)")
	_ = cmd.MarkFlagRequired("seq")
	return cmd
}

func printHelixText(cmd *cobra.Command, model *geometry.HelixModel) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Kind:       %s\n", model.Kind)
	fmt.Fprintf(out, "Sequence:   %s\n", model.Sequence)
	fmt.Fprintf(out, "Radius:     %.2f  Height: %.2f  Turns: %.2f\n", model.Radius, model.Height, model.Turns)
	fmt.Fprintf(out, "Placements: %d\n", len(model.Placements))
	for _, p := range model.Placements {
		fmt.Fprintf(out, "  [%d] %s-%s angle=%.3f height=%.3f\n",
			p.Index, p.Code, p.ComplementCode, p.Angle, p.Height)
	}
}

func printBackboneText(cmd *cobra.Command, model *geometry.BackboneModel) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sequence:     %s\n", model.Sequence)
	fmt.Fprintf(out, "Curve points: %d\n", len(model.Curve))
	fmt.Fprintf(out, "Markers:      %d\n", len(model.Markers))
	for _, m := range model.Markers {
		fmt.Fprintf(out, "  [%d] %s arc=%.3f at (%.3f, %.3f, %.3f)\n",
			m.Index, m.Code, m.ArcPosition, m.Position.X, m.Position.Y, m.Position.Z)
	}
}
