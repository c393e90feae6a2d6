package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [prompt...]",
	Short: "Show the extracted intent without rendering",
	Long: `Parse runs normalization and intent extraction and prints the
structured result. Useful for inspecting what the optimizer understood
before picking a framework.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := promptFromArgs(args)
		if err != nil {
			return err
		}

		a := optimizer.Analyze(cmd.Context(), prompt)
		if a.Sentinel != "" {
			fmt.Println(a.Sentinel)
			return nil
		}

		fmt.Println(titleStyle.Render("Parsed intent"))
		fmt.Println(dimStyle.Render(fmt.Sprintf("request %s  confidence %.2f", a.RequestID, a.Confidence)))
		fmt.Println()

		printField("Action", a.Intent.Action)
		printField("Topic", a.Intent.TopicOrSentinel())
		printField("Format", a.Intent.Format)
		printField("Audience", a.Intent.Audience)
		printField("Tone", a.Intent.Tone)
		printField("Role", a.Intent.Role)
		printField("Context", a.Intent.Context)
		if !a.Intent.Constraints.Empty() {
			c := a.Intent.Constraints
			if c.Style != "" {
				printField("Length", c.Style)
			} else if c.WordCount > 0 {
				printField("Length", fmt.Sprintf("%d words", c.WordCount))
			}
			printField("Scope", c.Scope)
		}
		if len(a.Intent.KeyTerms) > 0 {
			printField("Key terms", fmt.Sprintf("%v", a.Intent.KeyTerms))
		}
		if a.Structured != nil {
			printField("Structured", fmt.Sprintf("%d field(s)", a.Structured.FieldCount()))
		}

		if len(a.Corrections) > 0 {
			fmt.Println()
			fmt.Println(labelStyle.Render("Corrections"))
			for _, c := range a.Corrections {
				fmt.Printf("  %s -> %s\n", c.Original, c.Corrected)
			}
		}
		return nil
	},
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), value)
}
