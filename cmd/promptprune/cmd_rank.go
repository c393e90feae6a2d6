package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rankTop int

var rankCmd = &cobra.Command{
	Use:   "rank [prompt...]",
	Short: "Rank all eight frameworks against a prompt",
	Long: `Rank scores every framework against the prompt and prints them
best-first. Pass the prompt as arguments, or "-" to read stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := promptFromArgs(args)
		if err != nil {
			return err
		}

		res := optimizer.RankAll(cmd.Context(), prompt)

		fmt.Println(titleStyle.Render("Framework ranking"))
		fmt.Println(dimStyle.Render(fmt.Sprintf("request %s  confidence %.2f", res.RequestID, res.Confidence)))
		if len(res.Corrections) > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("%d correction(s) applied", len(res.Corrections))))
		}
		fmt.Println()

		limit := len(res.Entries)
		if rankTop > 0 && rankTop < limit {
			limit = rankTop
		}
		for i, e := range res.Entries[:limit] {
			fmt.Printf("%s %s %s\n",
				rankStyle.Render(fmt.Sprintf("#%d", i+1)),
				labelStyle.Render(e.Output.Name),
				scoreStyle.Render(fmt.Sprintf("(%.1f)", e.Score)))
			fmt.Println(dimStyle.Render("   " + e.Output.UseCase))
		}

		if limit > 0 {
			fmt.Println()
			fmt.Println(titleStyle.Render("Best match: " + res.Entries[0].Output.Name))
			fmt.Println(bodyStyle.Render(res.Entries[0].Output.Optimized))
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 0, "show only the top N frameworks (0 = all)")
}
