package main

import (
	"github.com/spf13/cobra"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/report"
)

var rankCmd = &cobra.Command{
	Use:   "rank <inventory-file>",
	Short: "Rank the agents of an inventory by potential risk",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

type rankOutput struct {
	Hierarchy      []entities.HierarchyResult `json:"hierarchy"`
	ParetoAgentIDs []string                   `json:"pareto_agent_ids"`
}

func runRank(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	if !table {
		return writeJSON(out, rankOutput{
			Hierarchy:      assessment.Hierarchy,
			ParetoAgentIDs: assessment.ParetoAgentIDs,
		})
	}
	return report.WriteRanking(out, mode, assessment.Hierarchy, assessment.ParetoAgentIDs)
}
