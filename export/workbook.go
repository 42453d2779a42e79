package export

import (
	"fmt"
	"io"

	"github.com/banachtech/patent-valuation/lattice"
	"github.com/banachtech/patent-valuation/valuation"
	"github.com/xuri/excelize/v2"
)

const (
	Sheet       = "tree"
	FileName    = "tree.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type styles struct {
	header  int
	section int
	float   int
	integer int
}

// sheet writes rows top to bottom; row and col are zero based.
type sheet struct {
	f      *excelize.File
	styles styles
	row    int
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}

func (s *sheet) set(col, row int, value interface{}, style int) error {
	if err := s.f.SetCellValue(Sheet, cell(col, row), value); err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	return s.f.SetCellStyle(Sheet, cell(col, row), cell(col, row), style)
}

func (s *sheet) section(row, lastCol int, title string) error {
	if err := s.f.MergeCell(Sheet, cell(0, row), cell(lastCol, row)); err != nil {
		return err
	}
	return s.set(0, row, title, s.styles.section)
}

func (s *sheet) headerRow(row int, titles ...string) error {
	for col, t := range titles {
		if err := s.set(col, row, t, s.styles.header); err != nil {
			return err
		}
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return st, err
	}

	st.section, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return st, err
	}

	floatFmt := "0.0000"
	st.float, err = f.NewStyle(&excelize.Style{CustomNumFmt: &floatFmt})
	if err != nil {
		return st, err
	}

	st.integer, err = f.NewStyle(&excelize.Style{NumFmt: 1})
	return st, err
}

// Workbook lays out the inputs, the time-variant schedule and the three
// lattices on a single sheet.
func Workbook(v *valuation.Valuation) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		f.Close()
		return nil, err
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	s := &sheet{f: f, styles: st}
	if err := s.write(v); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot build workbook: %w", err)
	}
	return f, nil
}

// Write renders the workbook for v into w.
func Write(w io.Writer, v *valuation.Valuation) error {
	f, err := Workbook(v)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func (s *sheet) write(v *valuation.Valuation) error {
	if err := s.inputs(v); err != nil {
		return err
	}
	if err := s.schedule(v.Result.Params); err != nil {
		return err
	}

	times := v.Result.Params.Times
	for _, l := range []struct {
		title  string
		values [][]int64
	}{
		{"Asset-Value Lattice (A)", valuation.Thousands(v.Result.Asset)},
		{"Net-Value Lattice (N)", valuation.Thousands(v.Result.Exercise)},
		{"Option-Value Lattice (C)", valuation.Thousands(v.Result.Option)},
	} {
		if err := s.lattice(l.title, times, l.values); err != nil {
			return err
		}
	}
	return nil
}

func (s *sheet) inputs(v *valuation.Valuation) error {
	if err := s.section(s.row, 1, "Input Parameters"); err != nil {
		return err
	}
	s.row++
	if err := s.headerRow(s.row, "Parameter", "Value"); err != nil {
		return err
	}
	s.row++

	deltaLabel := "Cost of delay δ (t=0, Auto Model)"
	if v.CostOfDelay.Mode == lattice.ModeManual {
		deltaLabel = "Cost of delay δ (t=0, Manual Input)"
	}

	params := []struct {
		label string
		value float64
	}{
		{"Asset Value V (€1000s)", v.Input.AssetValue},
		{"Exercise Cost K (€1000s)", v.Input.ExerciseCost},
		{"Time to Maturity T (years)", v.Input.Maturity},
		{"Volatility σ", v.Input.Volatility},
		{deltaLabel, v.CostOfDelay.Value},
		{"Risk-free Rate r", v.Input.RiskFree},
		{"Initial option value C₀ (€1000s)", v.InitialValue()},
	}
	for _, p := range params {
		if err := s.set(0, s.row, p.label, s.styles.float); err != nil {
			return err
		}
		if err := s.set(1, s.row, p.value, s.styles.float); err != nil {
			return err
		}
		s.row++
	}
	s.row += 2
	return nil
}

func (s *sheet) schedule(p lattice.Parameters) error {
	if err := s.section(s.row, 2, "Time-Variant Inputs"); err != nil {
		return err
	}
	if err := s.headerRow(s.row+1, "t", "δ (delay cost)", "p (up-move prob)"); err != nil {
		return err
	}

	for k, t := range p.Times {
		row := s.row + 2 + k
		if err := s.set(0, row, t, s.styles.integer); err != nil {
			return err
		}
		if err := s.set(1, row, p.Deltas[k], s.styles.float); err != nil {
			return err
		}
		if err := s.set(2, row, p.Probs[k], s.styles.float); err != nil {
			return err
		}
	}
	s.row += len(p.Times) + 3
	return nil
}

// lattice writes a titled grid with i=<state> row and t=<period> column
// headers, leaving one blank row between title and grid.
func (s *sheet) lattice(title string, times []int, values [][]int64) error {
	if err := s.section(s.row, len(times), title); err != nil {
		return err
	}

	top := s.row + 2
	for k, t := range times {
		if err := s.set(k+1, top, fmt.Sprintf("t=%d", t), s.styles.header); err != nil {
			return err
		}
	}
	for i, row := range values {
		if err := s.set(0, top+1+i, fmt.Sprintf("i=%d", times[i]), s.styles.header); err != nil {
			return err
		}
		for j, v := range row {
			if err := s.set(j+1, top+1+i, v, s.styles.integer); err != nil {
				return err
			}
		}
	}

	s.row += len(values) + 4
	return nil
}
