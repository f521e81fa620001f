// Package report renders assessment results as terminal or Markdown tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
)

// Mode controls the output format
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps a --format value to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("unknown table format %q", s)
	}
}

func newWriter(mode Mode) table.Writer {
	w := table.NewWriter()
	if mode == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return w
}

func render(w table.Writer, mode Mode) string {
	if mode == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

func rightAligned(numbers ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, len(numbers))
	for i, n := range numbers {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	return cfgs
}

// HierarchyTable lists the potential-risk ranking. Pareto members are starred.
func HierarchyTable(mode Mode, results []entities.HierarchyResult, pareto []string) string {
	inPareto := make(map[string]bool, len(pareto))
	for _, id := range pareto {
		inPareto[id] = true
	}

	w := newWriter(mode)
	w.AppendHeader(table.Row{"#", "Agente", "Peligro", "Cantidad", "Frecuencia", "Exposición", "Riesgo", "Puntuación", "IPA %", "Prioridad", "Pareto", "Sel."})
	for i, r := range results {
		w.AppendRow(table.Row{
			i + 1,
			r.AgentName,
			r.DangerClass,
			r.QuantityClass,
			r.FrequencyClass,
			r.PotentialExposureClass,
			r.PotentialRiskClass,
			formatScore(r.RiskScore),
			fmt.Sprintf("%.2f", r.IPAPercent),
			r.Priority,
			mark(inPareto[r.AgentID]),
			mark(r.Selected),
		})
	}
	w.SetColumnConfigs(rightAligned(1, 8, 9))
	return render(w, mode)
}

// InhalationTable lists detailed inhalation results
func InhalationTable(mode Mode, results []entities.InhalationResult) string {
	w := newWriter(mode)
	w.AppendHeader(table.Row{"Agente", "PP", "PV", "PPr", "PPC", "FC", "PRI", "Nivel", "Caracterización"})
	for _, r := range results {
		w.AppendRow(table.Row{
			r.AgentName,
			formatScore(r.DangerScore),
			formatScore(r.VolatilityScore),
			formatScore(r.ProcedureScore),
			formatScore(r.ProtectionScore),
			formatScore(r.VLACorrectionFactor),
			formatScore(r.RiskScore),
			r.RiskLevel,
			r.Characterization,
		})
	}
	w.SetColumnConfigs(rightAligned(2, 3, 4, 5, 6, 7))
	return render(w, mode)
}

// DermalTable lists dermal results of the agents the pathway applies to
func DermalTable(mode Mode, results []entities.DermalResult) string {
	w := newWriter(mode)
	w.AppendHeader(table.Row{"Agente", "PP", "PS", "PFD", "PRD", "Nivel", "Caracterización"})
	for _, r := range results {
		w.AppendRow(table.Row{
			r.AgentName,
			formatScore(r.DangerScore),
			formatScore(r.SurfaceScore),
			formatScore(r.FrequencyScore),
			formatScore(r.RiskScore),
			r.RiskLevel,
			r.Characterization,
		})
	}
	w.SetColumnConfigs(rightAligned(2, 3, 4, 5))
	return render(w, mode)
}

// AlertsTable lists alerts in generation order
func AlertsTable(mode Mode, alerts []entities.Alert) string {
	w := newWriter(mode)
	w.AppendHeader(table.Row{"Agente", "Gravedad", "Alerta", "Detalle"})
	for _, a := range alerts {
		w.AppendRow(table.Row{a.AgentName, a.Severity, a.Title, a.Message})
	}
	w.SetColumnConfigs([]table.ColumnConfig{{Number: 4, WidthMax: 80}})
	return render(w, mode)
}

// SummaryTable renders the aggregate counts as a two-column table
func SummaryTable(mode Mode, s entities.Summary) string {
	w := newWriter(mode)
	w.AppendHeader(table.Row{"Indicador", "Valor"})
	w.AppendRows([]table.Row{
		{"Agentes evaluados", s.AgentsEvaluated},
		{"Inhalación: riesgo muy elevado", s.InhalationVeryHigh},
		{"Inhalación: riesgo moderado", s.InhalationModerate},
		{"Inhalación: riesgo bajo", s.InhalationLow},
		{"Inhalación: puntuación máxima", formatScore(s.MaxInhalationScore)},
		{"Vía dérmica aplicable", s.DermalApplicable},
		{"Dérmica: riesgo muy elevado", s.DermalVeryHigh},
		{"Dérmica: riesgo moderado", s.DermalModerate},
		{"Dérmica: riesgo bajo", s.DermalLow},
		{"Dérmica: puntuación media", formatScore(s.MeanDermalScore)},
		{"Alertas críticas", s.CriticalAlerts},
		{"Avisos", s.WarningAlerts},
	})
	w.SetColumnConfigs(rightAligned(2))
	return render(w, mode)
}

// WriteRanking writes the hierarchy section only
func WriteRanking(out io.Writer, mode Mode, results []entities.HierarchyResult, pareto []string) error {
	return writeSections(out, mode, []section{
		{"Jerarquización del riesgo potencial", HierarchyTable(mode, results, pareto)},
	})
}

// WriteAssessment writes every section of a full assessment. Empty sections are skipped.
func WriteAssessment(out io.Writer, mode Mode, a *entities.Assessment) error {
	sections := []section{
		{"Jerarquización del riesgo potencial", HierarchyTable(mode, a.Hierarchy, a.ParetoAgentIDs)},
	}
	if len(a.Inhalation) > 0 {
		sections = append(sections, section{"Riesgo por inhalación", InhalationTable(mode, a.Inhalation)})
	}
	if len(a.Dermal) > 0 {
		sections = append(sections, section{"Riesgo por vía dérmica", DermalTable(mode, a.Dermal)})
	}
	if len(a.Alerts) > 0 {
		sections = append(sections, section{"Alertas", AlertsTable(mode, a.Alerts)})
	}
	sections = append(sections, section{"Resumen", SummaryTable(mode, a.Summary)})
	return writeSections(out, mode, sections)
}

type section struct {
	title string
	body  string
}

func writeSections(out io.Writer, mode Mode, sections []section) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		heading := s.title
		if mode == Markdown {
			heading = "## " + s.title + "\n"
		}
		if _, err := fmt.Fprintf(out, "%s\n%s\n", heading, s.body); err != nil {
			return err
		}
	}
	return nil
}

func formatScore(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
