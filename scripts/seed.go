package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/adapters/database"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/application/services"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/clients/postgres"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/inventory"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/config"
)

// seed stores one evaluation per inventory file given on the command line:
//
//	go run ./scripts/seed.go inventories/*.yaml
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed <inventory-file>...")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("seed", cfg.App.Environment, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	repo := database.NewEvaluationAdapter(pgClient, nil)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare schema")
	}

	assessments := services.NewAssessmentService(nil, nil, cfg.Assessment)
	evaluations := services.NewEvaluationService(repo, assessments, nil, nil, 0)

	seeded := 0
	for _, path := range os.Args[1:] {
		inv, err := inventory.Load(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("skipping unreadable inventory")
			continue
		}

		project := inv.Project
		if project.CompanyName == "" {
			project.CompanyName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		evaluation := &entities.Evaluation{
			Project: project,
			Agents:  inv.Agents,
			// step 1 runs no gates, so incomplete files still seed
			CurrentStep: 1,
			Mode:        entities.EvaluationModeManual,
		}
		if len(inv.SelectedAgentIDs) > 0 {
			evaluation.HierarchyResults = selectionMarks(inv.SelectedAgentIDs)
		}

		created, err := evaluations.Create(ctx, evaluation)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("failed to seed evaluation")
			continue
		}
		seeded++
		log.Info().
			Str("file", path).
			Str("id", created.ID).
			Int("agents", len(created.Agents)).
			Int("alerts", len(created.Alerts)).
			Msg("evaluation seeded")
	}

	log.Info().Int("seeded", seeded).Int("files", len(os.Args)-1).Msg("seeding completed")
}

// selectionMarks carries a file's selection into the evaluation; the
// service keeps the Selected flags when it recomputes the hierarchy.
func selectionMarks(ids []string) []entities.HierarchyResult {
	marks := make([]entities.HierarchyResult, len(ids))
	for i, id := range ids {
		marks[i] = entities.HierarchyResult{AgentID: id, Selected: true}
	}
	return marks
}
