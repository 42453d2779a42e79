package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/banachtech/patent-valuation/sensitivity"
	"github.com/banachtech/patent-valuation/valuation"
	"github.com/olekukonko/tablewriter"
)

func render(w io.Writer, v *valuation.Valuation) {
	out := v.Output()

	fmt.Fprintf(w, "Initial option value C0 (thousands): %s\n\n", strconv.FormatFloat(out.Summary.InitialOptionValue, 'f', -1, 64))

	renderSchedule(w, out.Schedule)

	times := out.Schedule.Times
	renderLattice(w, "Asset-Value Lattice (A)", times, out.Asset)
	renderLattice(w, "Net-Value Lattice (N)", times, out.Net)
	renderLattice(w, "Option-Value Lattice (C)", times, out.Option)

	renderTornado(w, out.Sensitivity)
	renderLineChart(w, "Option value by volatility and asset value", out.Sensitivity.VolatilityByAsset)
	renderLineChart(w, "Option value by volatility and cost of delay", out.Sensitivity.VolatilityByDelay)
}

func renderSchedule(w io.Writer, s valuation.Schedule) {
	fmt.Fprintln(w, "Time-Variant Inputs:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"t", "delta", "p"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for k, t := range s.Times {
		table.Append([]string{
			strconv.Itoa(t),
			fmt.Sprintf("%.4f", s.Deltas[k]),
			fmt.Sprintf("%.4f", s.Probabilities[k]),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func renderLattice(w io.Writer, title string, times []int, values [][]int64) {
	fmt.Fprintf(w, "%s:\n", title)
	table := tablewriter.NewWriter(w)

	header := []string{""}
	for _, t := range times {
		header = append(header, fmt.Sprintf("t=%d", t))
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, row := range values {
		line := []string{fmt.Sprintf("i=%d", times[i])}
		for _, v := range row {
			line = append(line, strconv.FormatInt(v, 10))
		}
		table.Append(line)
	}
	table.Render()
	fmt.Fprintln(w)
}

func renderTornado(w io.Writer, report *sensitivity.Report) {
	fmt.Fprintf(w, "Sensitivity (base %.4f):\n", report.BaseValue)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Parameter", "-10%/+10% min", "-10%/+10% max", "Spider %"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, name := range report.Parameters {
		r := report.Tornado[name]
		table.Append([]string{
			name,
			fmt.Sprintf("%.4f", r.Min),
			fmt.Sprintf("%.4f", r.Max),
			fmt.Sprintf("%.2f", report.Spider[name]),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func renderLineChart(w io.Writer, title string, chart sensitivity.LineChart) {
	fmt.Fprintf(w, "%s:\n", title)
	table := tablewriter.NewWriter(w)

	header := []string{"sigma"}
	for _, s := range chart.Series {
		header = append(header, s.Label)
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for k, x := range chart.XLabels {
		line := []string{strconv.FormatFloat(x, 'f', -1, 64)}
		for _, s := range chart.Series {
			line = append(line, strconv.FormatFloat(s.Values[k], 'f', 2, 64))
		}
		table.Append(line)
	}
	table.Render()
	fmt.Fprintln(w)
}
