package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/clients/postgres"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

const (
	evaluationsTable = "evaluations"

	defaultListLimit = 50
	maxListLimit     = 200
)

// likeEscaper makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const evaluationsSchema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id                 TEXT PRIMARY KEY,
	company_name       TEXT NOT NULL DEFAULT '',
	project            JSONB NOT NULL,
	agents             JSONB NOT NULL,
	hierarchy_results  JSONB NOT NULL,
	inhalation_results JSONB NOT NULL,
	dermal_results     JSONB NOT NULL,
	alerts             JSONB NOT NULL,
	current_step       INTEGER NOT NULL DEFAULT 0,
	mode               TEXT NOT NULL DEFAULT 'manual',
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evaluations_updated_at ON evaluations (updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_evaluations_company_name ON evaluations (company_name);
`

var evaluationColumns = []interface{}{
	"id", "project", "agents", "hierarchy_results", "inhalation_results",
	"dermal_results", "alerts", "current_step", "mode", "created_at", "updated_at",
}

// EvaluationAdapter stores evaluations in Postgres. Nested data lives in JSONB columns.
type EvaluationAdapter struct {
	client  *postgres.Client
	db      *goqu.Database
	metrics *observability.Metrics
}

var _ repositories.EvaluationRepository = (*EvaluationAdapter)(nil)

// NewEvaluationAdapter creates a new evaluation adapter. metrics may be nil.
func NewEvaluationAdapter(client *postgres.Client, metrics *observability.Metrics) *EvaluationAdapter {
	return &EvaluationAdapter{
		client:  client,
		db:      goqu.New("postgres", client.DB()),
		metrics: metrics,
	}
}

// EnsureSchema creates the evaluations table and its indexes if missing
func (a *EvaluationAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := a.client.DB().ExecContext(ctx, evaluationsSchema); err != nil {
		return apperrors.NewInternalError("failed to create evaluations schema", err)
	}
	return nil
}

// Create inserts a new evaluation
func (a *EvaluationAdapter) Create(ctx context.Context, evaluation *entities.Evaluation) error {
	if evaluation == nil {
		return apperrors.NewInternalError("evaluation is nil", errors.New("evaluation is nil"))
	}
	defer a.observe(ctx, "insert", time.Now())

	record, err := evaluationRecord(evaluation)
	if err != nil {
		return err
	}
	record["id"] = evaluation.ID
	record["created_at"] = evaluation.CreatedAt

	query, args, err := a.db.Insert(evaluationsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create evaluation", err)
	}
	return nil
}

// GetByID retrieves an evaluation by ID
func (a *EvaluationAdapter) GetByID(ctx context.Context, id string) (*entities.Evaluation, error) {
	defer a.observe(ctx, "select", time.Now())

	query, args, err := a.db.Select(evaluationColumns...).
		From(evaluationsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	evaluation, err := scanEvaluation(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("evaluation with id %s not found", id))
	}
	if err != nil {
		return nil, err
	}
	return evaluation, nil
}

// Update replaces every mutable column of a stored evaluation
func (a *EvaluationAdapter) Update(ctx context.Context, evaluation *entities.Evaluation) error {
	if evaluation == nil {
		return apperrors.NewInternalError("evaluation is nil", errors.New("evaluation is nil"))
	}
	defer a.observe(ctx, "update", time.Now())

	record, err := evaluationRecord(evaluation)
	if err != nil {
		return err
	}

	query, args, err := a.db.Update(evaluationsTable).
		Set(record).
		Where(goqu.Ex{"id": evaluation.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update evaluation", err)
	}
	return requireRow(result, evaluation.ID)
}

// Delete deletes an evaluation
func (a *EvaluationAdapter) Delete(ctx context.Context, id string) error {
	defer a.observe(ctx, "delete", time.Now())

	query, args, err := a.db.Delete(evaluationsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete evaluation", err)
	}
	return requireRow(result, id)
}

// List retrieves evaluations, most recently updated first
func (a *EvaluationAdapter) List(ctx context.Context, filter repositories.EvaluationFilter) ([]*entities.Evaluation, error) {
	defer a.observe(ctx, "select", time.Now())

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	ds := a.db.Select(evaluationColumns...).From(evaluationsTable)
	if filter.CompanyName != "" {
		ds = ds.Where(goqu.C("company_name").ILike("%" + likeEscaper.Replace(filter.CompanyName) + "%"))
	}
	ds = ds.Order(goqu.C("updated_at").Desc()).Limit(uint(limit))
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list evaluations", err)
	}
	defer rows.Close()

	evaluations := make([]*entities.Evaluation, 0)
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, evaluation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate evaluations", err)
	}
	return evaluations, nil
}

func (a *EvaluationAdapter) observe(ctx context.Context, operation string, start time.Time) {
	observability.RecordDBMetric(ctx, a.metrics, operation, time.Since(start))
}

// evaluationRecord builds the columns shared by insert and update
func evaluationRecord(e *entities.Evaluation) (goqu.Record, error) {
	record := goqu.Record{
		"company_name": e.Project.CompanyName,
		"current_step": e.CurrentStep,
		"mode":         string(e.Mode),
		"updated_at":   e.UpdatedAt,
	}

	jsonColumns := map[string]interface{}{
		"project":            e.Project,
		"agents":             nonNil(e.Agents),
		"hierarchy_results":  nonNil(e.HierarchyResults),
		"inhalation_results": nonNil(e.InhalationResults),
		"dermal_results":     nonNil(e.DermalResults),
		"alerts":             nonNil(e.Alerts),
	}
	for column, value := range jsonColumns {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode %s", column), err)
		}
		record[column] = string(data)
	}
	return record, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvaluation(row rowScanner) (*entities.Evaluation, error) {
	e := &entities.Evaluation{}
	var project, agents, hierarchy, inhalation, dermal, alerts []byte
	var mode string

	err := row.Scan(
		&e.ID,
		&project,
		&agents,
		&hierarchy,
		&inhalation,
		&dermal,
		&alerts,
		&e.CurrentStep,
		&mode,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan evaluation", err)
	}
	e.Mode = entities.EvaluationMode(mode)

	decode := []struct {
		column string
		data   []byte
		target interface{}
	}{
		{"project", project, &e.Project},
		{"agents", agents, &e.Agents},
		{"hierarchy_results", hierarchy, &e.HierarchyResults},
		{"inhalation_results", inhalation, &e.InhalationResults},
		{"dermal_results", dermal, &e.DermalResults},
		{"alerts", alerts, &e.Alerts},
	}
	for _, d := range decode {
		if len(d.data) == 0 {
			continue
		}
		if err := json.Unmarshal(d.data, d.target); err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to decode %s", d.column), err)
		}
	}
	return e, nil
}

func requireRow(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("evaluation with id %s not found", id))
	}
	return nil
}

// nonNil keeps empty lists encoded as [] rather than null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
