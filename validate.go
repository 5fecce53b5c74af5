package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a content file and print what it contains",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(args[0])
		if err != nil {
			return err
		}

		withDocs := 0
		for _, proj := range p.Projects {
			if proj.HasDocument() {
				withDocs++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", args[0])
		fmt.Fprintf(out, "  skills:          %d\n", len(p.AboutMe.Skills))
		fmt.Fprintf(out, "  education:       %d\n", len(p.AboutMe.Education))
		fmt.Fprintf(out, "  work experience: %d\n", len(p.WorkExperience))
		fmt.Fprintf(out, "  projects:        %d (%d with documents)\n", len(p.Projects), withDocs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
