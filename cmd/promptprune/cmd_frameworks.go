package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VisheshJha/PromptPrune-sub000/internal/framework"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the available prompt frameworks",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range framework.Registry() {
			fmt.Printf("%s %s\n", rankStyle.Render(string(d.ID)), labelStyle.Render(d.Name))
			fmt.Println(bodyStyle.Render(d.Description))
			fmt.Println(dimStyle.Render("  Use for: " + d.UseCase))
			fmt.Println()
		}
		return nil
	},
}
