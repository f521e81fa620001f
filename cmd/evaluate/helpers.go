package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/application/services"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/inventory"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/report"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/config"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

const formatJSON = "json"

var errInvalidInventory = errors.New("inventory has validation problems")

// loadInventory reads the file and reports validation problems on stderr.
// With --strict any problem aborts the command.
func loadInventory(cmd *cobra.Command, path string) (*inventory.Inventory, error) {
	inv, err := inventory.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	problems := validationProblems(services.ValidateInventory(inv.Agents))
	for _, p := range problems {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", p)
	}
	if rootFlags.strict && len(problems) > 0 {
		return nil, errInvalidInventory
	}
	return inv, nil
}

func validationProblems(err error) []string {
	if err == nil {
		return nil
	}
	if appErr, ok := apperrors.As(err); ok && len(appErr.Details) > 0 {
		return appErr.Details
	}
	return []string{err.Error()}
}

// assess runs the full engine over the inventory. --select overrides the
// selection stored in the file.
func assess(cmd *cobra.Command, inv *inventory.Inventory) (*entities.Assessment, error) {
	selected := inv.SelectedAgentIDs
	if len(rootFlags.selected) > 0 {
		selected = rootFlags.selected
	}

	service := services.NewAssessmentService(nil, nil, config.AssessmentConfig{Workers: 4})
	return service.Assess(cmd.Context(), services.AssessmentRequest{
		Agents:           inv.Agents,
		SelectedAgentIDs: selected,
	})
}

// outputMode returns the table mode; table is false for JSON output
func outputMode() (mode report.Mode, table bool, err error) {
	if rootFlags.format == formatJSON {
		return 0, false, nil
	}
	mode, err = report.ParseMode(rootFlags.format)
	if err != nil {
		return 0, false, err
	}
	return mode, true, nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
