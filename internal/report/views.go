package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/okian/racelens/internal/domain/analytics"
	"github.com/okian/racelens/internal/domain/podium"
	"github.com/okian/racelens/internal/domain/racetime"
	"github.com/okian/racelens/internal/domain/results"
	"github.com/okian/racelens/internal/domain/search"
	"github.com/okian/racelens/internal/domain/types"
)

// Suggestions renders a search outcome.
func Suggestions(w io.Writer, s search.Suggestions) error {
	if !s.Queried {
		_, err := fmt.Fprintln(w, "Escribí un nombre para buscar.")
		return err
	}
	if s.NoMatches() {
		_, err := fmt.Fprintf(w, "No se encontraron corredores para %q.\n", s.Query)
		return err
	}
	t := NewTable(fmt.Sprintf("Resultados para %q", s.Query), "Pos.", "Nombre", "Categoría", "Sexo", "Tiempo")
	for _, row := range types.Rows(s.Runners) {
		t.AddRow(strconv.Itoa(row.Position), row.Name, row.Category, row.GenderShort, row.Time)
	}
	return t.Render(w)
}

// Analysis renders a runner report: the summary, the highlights, the runners
// ahead and the closing message.
func Analysis(w io.Writer, rep *analytics.Report) error {
	if rep == nil {
		_, err := fmt.Fprintln(w, "Ningún corredor seleccionado.")
		return err
	}
	summary := NewTable(fmt.Sprintf("%s · %s", rep.Runner.Name, rep.Category), "Dato", "Valor")
	summary.AddRow("Tiempo", rep.Time)
	summary.AddRow("Ritmo", rep.Pace+" min/km")
	summary.AddRow("Velocidad", racetime.FormatSpeed(rep.Speed)+" km/h")
	summary.AddRow("General", fmt.Sprintf("%d° de %d", rep.Runner.Position, rep.TotalRunners))
	summary.AddRow("Categoría", fmt.Sprintf("%d° de %d", rep.Runner.CategoryPosition, rep.CategoryTotal))
	if err := summary.Render(w); err != nil {
		return err
	}

	for _, h := range rep.Highlights() {
		if _, err := fmt.Fprintln(w, "• "+h); err != nil {
			return err
		}
	}

	if len(rep.RunnersAhead) > 0 {
		ahead := NewTable("Corredores delante en tu categoría", "Cat.", "Nombre", "Tiempo", "Diferencia")
		for _, a := range rep.RunnersAhead {
			ahead.AddRow(strconv.Itoa(a.CategoryPosition), a.Name, a.Time, "+"+a.Gap)
		}
		if err := ahead.Render(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%q\n", rep.Message)
	return err
}

// Podiums renders one table per board.
func Podiums(w io.Writer, boards []podium.Podium) error {
	for _, b := range boards {
		t := NewTable(fmt.Sprintf("%s · %s (%d)", b.Category, b.Gender, b.Total), "Cat.", "Nombre", "Tiempo", "Pos.")
		for _, row := range types.Rows(b.Top) {
			t.AddRow(strconv.Itoa(row.CategoryPosition), row.Name, row.Time, strconv.Itoa(row.Position))
		}
		if err := t.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Results renders the full results table.
func Results(w io.Writer, rows []types.Row) error {
	t := NewTable(fmt.Sprintf("%d corredores", len(rows)), "Pos.", "Cat.", "Nombre", "Categoría", "Sexo", "Tiempo", "Ritmo", "Puntaje")
	for _, r := range rows {
		t.AddRow(strconv.Itoa(r.Position), strconv.Itoa(r.CategoryPosition), r.Name, r.Category, r.GenderShort, r.Time, r.Pace,
			strconv.FormatFloat(r.Score, 'f', -1, 64))
	}
	return t.Render(w)
}

// Violations renders integrity check findings.
func Violations(w io.Writer, vs []results.Violation) error {
	if len(vs) == 0 {
		_, err := fmt.Fprintln(w, "Dataset OK.")
		return err
	}
	t := NewTable(fmt.Sprintf("%d problemas", len(vs)), "Regla", "Detalle")
	t.MaxCell = 0
	for _, v := range vs {
		t.AddRow(v.Rule, v.Detail)
	}
	return t.Render(w)
}
