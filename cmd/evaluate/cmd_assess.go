package main

import (
	"github.com/spf13/cobra"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/report"
)

var assessCmd = &cobra.Command{
	Use:   "assess <inventory-file>",
	Short: "Run the full assessment: hierarchy, inhalation, dermal and alerts",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssess,
}

func runAssess(cmd *cobra.Command, args []string) error {
	mode, table, err := outputMode()
	if err != nil {
		return err
	}
	inv, err := loadInventory(cmd, args[0])
	if err != nil {
		return err
	}
	assessment, err := assess(cmd, inv)
	if err != nil {
		return err
	}

	if !table {
		return writeJSON(cmd.OutOrStdout(), assessment)
	}
	return report.WriteAssessment(cmd.OutOrStdout(), mode, assessment)
}
