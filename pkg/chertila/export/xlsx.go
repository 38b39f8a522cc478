// Package export writes plot requests to spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/chertila/chertila-go/pkg/chertila/fit"
	"github.com/chertila/chertila-go/pkg/chertila/models"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in exported workbooks.
const (
	DataSheet = "Data"
	FitSheet  = "Fit"
)

// chartAnchor is the top-left cell of the embedded chart.
const chartAnchor = "H2"

// Workbook builds an XLSX workbook with the points, the fitted values and a
// scatter chart mirroring the rendered image.
func Workbook(req *models.PlotRequest, f models.FitResult) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), DataSheet); err != nil {
		return nil, errors.Wrap(err, "failed to name data sheet")
	}
	if err := writeData(wb, req, f); err != nil {
		return nil, err
	}
	if err := writeSummary(wb, req, f); err != nil {
		return nil, err
	}
	chart, err := scatterChart(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build chart ranges")
	}
	if err := wb.AddChart(DataSheet, chartAnchor, chart); err != nil {
		return nil, errors.Wrap(err, "failed to add chart")
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

// writeData fills the data sheet: one header row, then one row per point.
func writeData(wb *excelize.File, req *models.PlotRequest, f models.FitResult) error {
	header := []interface{}{"X", "Y", "Fit Y"}
	if req.Margin != nil {
		header = append(header, "XD", "YD")
	}
	if err := wb.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	for i, p := range req.Points {
		row := []interface{}{p.X, p.Y, f.At(p.X)}
		if m := req.Margin; m != nil {
			row = append(row, m.XD, m.YD)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(DataSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write point %d", i+1)
		}
	}
	return nil
}

// writeSummary fills the fit sheet with label/value pairs.
func writeSummary(wb *excelize.File, req *models.PlotRequest, f models.FitResult) error {
	if _, err := wb.NewSheet(FitSheet); err != nil {
		return errors.Wrap(err, "failed to create fit sheet")
	}

	rows := [][]interface{}{
		{"Title", req.Title},
		{"X label", req.XLabel},
		{"Y label", req.YLabel},
		{"Slope", f.Slope},
		{"Intercept", f.Intercept},
		{"Points", len(req.Points)},
		{"R²", fit.RSquared(f, req.Points)},
		{"Grid", req.Grid},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(FitSheet, cell, &rows[i]); err != nil {
			return errors.Wrapf(err, "failed to write summary row %d", i+1)
		}
	}
	return nil
}

// columnRange returns an absolute reference such as Data!$A$2:$A$4.
func columnRange(col, firstRow, lastRow int) (string, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", DataSheet, name, firstRow, name, lastRow), nil
}

func scatterChart(req *models.PlotRequest) (*excelize.Chart, error) {
	last := len(req.Points) + 1
	var ranges [3]string
	for i := range ranges {
		ref, err := columnRange(i+1, 2, last)
		if err != nil {
			return nil, err
		}
		ranges[i] = ref
	}
	xs := ranges[0]

	return &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{
			{
				Name:       DataSheet + "!$B$1",
				Categories: xs,
				Values:     ranges[1],
				Marker:     excelize.ChartMarker{Symbol: "circle", Size: 6},
				Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
			},
			{
				Name:       DataSheet + "!$C$1",
				Categories: xs,
				Values:     ranges[2],
				Marker:     excelize.ChartMarker{Symbol: "none"},
			},
		},
		Title:  richText(req.Title),
		Legend: excelize.ChartLegend{Position: "bottom"},
		XAxis: excelize.ChartAxis{
			MajorGridLines: req.Grid,
			Title:          richText(req.XLabel),
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: req.Grid,
			Title:          richText(req.YLabel),
		},
	}, nil
}

func richText(s string) []excelize.RichTextRun {
	if s == "" {
		return nil
	}
	return []excelize.RichTextRun{{Text: s}}
}
