package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an ordered tabular payload ready for serialization. The header
// order is taken from the first record the builder saw.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ExportService serializes dashboard tables to CSV and XLSX.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ProjectTable flattens monitoring rows for export.
func (s *ExportService) ProjectTable(rows []ProjectRow) Table {
	t := Table{Headers: []string{"Name", "Location", "Status", "Progress", "Start", "End"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Name,
			r.Location,
			string(r.Status),
			formatFloat(r.Progress),
			r.StartDate,
			r.EndDate,
		})
	}
	return t
}

// AdminTable flattens per-operator administrative rows for export.
func (s *ExportService) AdminTable(rows []AdminRow) Table {
	t := Table{Headers: []string{"Project", "Location", "Operator", "StatusPO", "StatusDoc", "SubmitDate", "Remarks"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ProjectName,
			r.Location,
			r.OperatorName,
			string(r.POStatus),
			string(r.DocStatus),
			r.SubmitDate,
			r.Remarks,
		})
	}
	return t
}

// CSV renders the table with every field double-quoted and embedded quotes
// doubled, the dialect the portal's spreadsheet consumers expect.
func (s *ExportService) CSV(t Table) string {
	var b strings.Builder
	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	writeLine(t.Headers)
	for _, row := range t.Rows {
		writeLine(row)
	}
	return b.String()
}

// XLSX renders the table as a single-sheet workbook.
func (s *ExportService) XLSX(t Table, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if sheetName == "" {
		sheetName = "Export"
	}
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	write := func(rowIdx int, fields []string) error {
		cells := make([]interface{}, len(fields))
		for i, v := range fields {
			cells[i] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheetName, addr, &cells)
	}

	if err := write(1, t.Headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := write(i+2, row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return f, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
