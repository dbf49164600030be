package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the outcome percentages of records as a step chart over
// the number of games played, one line per outcome.
func (w *Writer) WriteChart(phase, cross, naught string, records []BattleMetric) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    phase,
			Subtitle: fmt.Sprintf("%s vs %s", cross, naught),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Game number"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Game outcomes in %"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	// Each battle contributes a flat segment from its first to its last game.
	var xs []string
	var draws, crossWins, naughtWins []opts.LineData
	start := 0
	for _, r := range records {
		for _, x := range []int{start, r.Games} {
			xs = append(xs, strconv.Itoa(x))
			draws = append(draws, opts.LineData{Value: r.Draws})
			crossWins = append(crossWins, opts.LineData{Value: r.CrossWins})
			naughtWins = append(naughtWins, opts.LineData{Value: r.NaughtWins})
		}
		start = r.Games
	}

	line.SetXAxis(xs).
		AddSeries("Draw", draws).
		AddSeries(cross+" wins", crossWins).
		AddSeries(naught+" wins", naughtWins)

	page := components.NewPage()
	page.AddCharts(line)

	path := filepath.Join(w.baseDir, phase+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}
