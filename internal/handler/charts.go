package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kdossou/focusedu/internal/model"
	"github.com/kdossou/focusedu/internal/stats"
)

// handleDashboard renders the aggregate statistics as a chart page.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.LoadAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	agg := stats.Aggregate(sessions)

	page := components.NewPage()
	page.PageTitle = "FocusEdu — Résultats"
	page.AddCharts(distributionChart(agg))
	if agg.StudentSessions > 0 && agg.TeacherSessions > 0 {
		page.AddCharts(comparisonChart(agg))
	}
	if agg.StudentSessions > 0 {
		page.AddCharts(momentChart(agg), classChart(agg), sexChart(agg))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		slog.Error("render dashboard", "error", err)
		http.Error(w, fmt.Sprintf("failed to render charts: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func distributionChart(agg stats.AggregateStats) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Répartition des niveaux de concentration",
			Subtitle: fmt.Sprintf("%d session(s) — %d élève(s), %d enseignant(s), score moyen %d%%",
				agg.TotalSessions, agg.StudentSessions, agg.TeacherSessions, agg.AverageScore),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	pie.AddSeries("répartition", []opts.PieData{
		{Name: "Faible", Value: agg.Distribution.Low, ItemStyle: &opts.ItemStyle{Color: model.CategoryLow.Color}},
		{Name: "Moyenne", Value: agg.Distribution.Medium, ItemStyle: &opts.ItemStyle{Color: model.CategoryMedium.Color}},
		{Name: "Bonne", Value: agg.Distribution.High, ItemStyle: &opts.ItemStyle{Color: model.CategoryHigh.Color}},
	}, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	return pie
}

func comparisonChart(agg stats.AggregateStats) *charts.Bar {
	bar := newScoreBar("Score moyen : élèves vs enseignants")
	bar.SetXAxis([]string{"Élèves", "Enseignants"}).
		AddSeries("score moyen (%)", []opts.BarData{
			{Value: agg.AverageStudentScore, ItemStyle: &opts.ItemStyle{Color: "#194682"}},
			{Value: agg.AverageTeacherScore, ItemStyle: &opts.ItemStyle{Color: "#c87832"}},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

func momentChart(agg stats.AggregateStats) *charts.Bar {
	morning := agg.ByTimeOfDay[stats.Morning]
	afternoon := agg.ByTimeOfDay[stats.Afternoon]
	bar := newScoreBar("Score moyen par moment de la journée")
	bar.SetXAxis([]string{"Matin", "Après-midi"}).
		AddSeries("score moyen (%)", []opts.BarData{
			{Value: morning.Average, ItemStyle: &opts.ItemStyle{Color: "#3498db"}},
			{Value: afternoon.Average, ItemStyle: &opts.ItemStyle{Color: "#e74c3c"}},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

func classChart(agg stats.AggregateStats) *charts.Bar {
	labels := make([]string, 0, len(agg.ByClass))
	for class := range agg.ByClass {
		labels = append(labels, class)
	}
	sort.Strings(labels)

	data := make([]opts.BarData, 0, len(labels))
	for _, class := range labels {
		data = append(data, opts.BarData{Value: agg.ByClass[class].Average})
	}

	bar := newScoreBar("Score moyen par classe")
	bar.SetXAxis(labels).
		AddSeries("score moyen (%)", data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#2a8f7e"}))
	return bar
}

func sexChart(agg stats.AggregateStats) *charts.Pie {
	sexLabels := []struct {
		key   string
		label string
		color string
	}{
		{stats.SexMale, "Masculin", "#3498db"},
		{stats.SexFemale, "Féminin", "#e91e63"},
		{stats.SexOther, "Autre", "#9c27b0"},
	}

	var data []opts.PieData
	for _, s := range sexLabels {
		if g := agg.BySex[s.key]; g.Count > 0 {
			data = append(data, opts.PieData{
				Name:      s.label,
				Value:     g.Average,
				ItemStyle: &opts.ItemStyle{Color: s.color},
			})
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Score moyen par sexe"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	pie.AddSeries("score moyen", data)
	return pie
}

func newScoreBar(title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Max: 100, Min: 0}),
	)
	return bar
}
