package main

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return preview.Run(cmd.Context(), cfg.SiteName, &p, cfg.CubeFPS)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
