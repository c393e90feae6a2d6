package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VisheshJha/PromptPrune-sub000/internal/framework"
)

var applyCmd = &cobra.Command{
	Use:   "apply <framework> [prompt...]",
	Short: "Render a prompt through one framework",
	Long: `Apply runs the full pipeline and renders the prompt through the
named framework (cot, tot, ape, race, roses, guide, smart, create).`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := framework.ID(args[0])
		prompt, err := promptFromArgs(args[1:])
		if err != nil {
			return err
		}

		resp, err := optimizer.Apply(cmd.Context(), prompt, id)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(resp.Output.Name))
		fmt.Println(dimStyle.Render(resp.Output.Description))
		fmt.Println(dimStyle.Render(fmt.Sprintf("request %s  confidence %.2f", resp.RequestID, resp.Confidence)))
		fmt.Println()
		fmt.Println(bodyStyle.Render(resp.Output.Optimized))
		return nil
	},
}
