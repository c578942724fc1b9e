package core

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/JonMunkholm/permute/internal/logging"
	"github.com/xuri/excelize/v2"
)

func init() {
	RegisterFormat(Format{
		Name:  "excel",
		Label: "Excel",
		Load:  loadExcel,
		Write: writeExcel,
	})
}

var errNoSheets = errors.New("workbook has no sheets")

// loadExcel reads the first sheet of a workbook.
//
// The first row is always taken as the header; opts.Header is not consulted
// for spreadsheets. Rows wider than the header extend it with "Unnamed: <i>"
// columns and shorter rows are padded.
func loadExcel(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	if !opts.Header {
		logging.FromContext(ctx).Warn("header flag is not consulted for excel input; the first row is used as the header",
			"path", path,
		)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoSheets
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return NewTable([]string{}, nil), nil
	}

	width := 0
	for _, row := range raw {
		width = max(width, len(row))
	}

	columns := uniqueColumns(padRow(raw[0], width))
	rows := make([][]string, 0, len(raw)-1)
	for _, row := range raw[1:] {
		rows = append(rows, padRow(row, width))
	}

	logging.FromContext(ctx).Debug("sheet parsed",
		"path", path,
		"sheet", sheets[0],
		"sheets", len(sheets),
	)

	return NewTable(columns, rows), nil
}

// writeExcel writes the table to the first sheet of a new workbook.
func writeExcel(_ context.Context, t *Table, path string, _ WriteOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if t.Width() > 0 {
		if err := setSheetRow(f, sheet, 1, t.Columns); err != nil {
			return err
		}
	}
	for i, row := range t.Rows {
		if err := setSheetRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func setSheetRow(f *excelize.File, sheet string, rowNum int, fields []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(fields))
	for i, field := range fields {
		values[i] = cellValue(field)
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// cellValue stores canonical decimal text as a number and everything else as
// a string, so "42" round-trips as 42 but "007" stays "007".
func cellValue(field string) interface{} {
	n, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return field
	}
	if strconv.FormatFloat(n, 'f', -1, 64) != field {
		return field
	}
	return n
}
