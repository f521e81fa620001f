package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/application/services"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/inventory"
)

var validateCmd = &cobra.Command{
	Use:   "validate <inventory-file>",
	Short: "Check the project and agent data of an inventory file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	inv, err := inventory.Load(args[0])
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	var problems []string
	// project data is optional in a file, checked only when present
	if inv.Project != (entities.Project{}) {
		problems = append(problems, validationProblems(services.ValidateProject(inv.Project))...)
	}
	problems = append(problems, validationProblems(services.ValidateInventory(inv.Agents))...)

	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s: %d agents, no problems found\n", args[0], len(inv.Agents))
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(out, "- %s\n", p)
	}
	return fmt.Errorf("%d validation problems", len(problems))
}
