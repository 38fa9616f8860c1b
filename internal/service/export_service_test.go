package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apjatelpmo/internal/model"
)

func TestCSVQuotesEveryField(t *testing.T) {
	s := NewExportService()
	got := s.CSV(Table{
		Headers: []string{"Name", "Location"},
		Rows: [][]string{
			{"Relokasi Tol Jakarta", "Jakarta"},
		},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Name","Location"`, lines[0])
	assert.Equal(t, `"Relokasi Tol Jakarta","Jakarta"`, lines[1])
}

func TestCSVEscapesEmbeddedQuotes(t *testing.T) {
	s := NewExportService()
	got := s.CSV(Table{
		Headers: []string{"Remarks"},
		Rows:    [][]string{{`tunggu approval "fase 2"`}},
	})
	assert.Contains(t, got, `"tunggu approval ""fase 2"""`)
}

func TestCSVPreservesCommasAndNewlinesInsideQuotes(t *testing.T) {
	s := NewExportService()
	got := s.CSV(Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"x,y", "z"}},
	})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"x,y","z"`, lines[1])
}

func TestProjectTable(t *testing.T) {
	s := NewExportService()
	table := s.ProjectTable([]ProjectRow{
		{
			Name:      "Relokasi Tol Jakarta",
			Location:  "Jakarta",
			Status:    model.StatusInProgress,
			Progress:  42.5,
			StartDate: "2026-01-01",
			EndDate:   "2026-06-30",
		},
	})

	assert.Equal(t, []string{"Name", "Location", "Status", "Progress", "Start", "End"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Relokasi Tol Jakarta", "Jakarta", "In Progress", "42.5", "2026-01-01", "2026-06-30"}, table.Rows[0])
}

func TestAdminTable(t *testing.T) {
	s := NewExportService()
	table := s.AdminTable([]AdminRow{
		{
			ProjectName:  "Relokasi Tol Jakarta",
			Location:     "Jakarta",
			OperatorName: "Telkom",
			POStatus:     model.POIssued,
			DocStatus:    model.DocApproved,
			SubmitDate:   "2026-02-10",
			Remarks:      "ok",
		},
	})

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Relokasi Tol Jakarta", "Jakarta", "Telkom", "Issued", "Approved", "2026-02-10", "ok"}, table.Rows[0])
}

func TestXLSXWritesHeaderAndRows(t *testing.T) {
	s := NewExportService()
	f, err := s.XLSX(Table{
		Headers: []string{"Name", "Progress"},
		Rows:    [][]string{{"Relokasi Tol Jakarta", "42.5"}},
	}, "Proyek")
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Proyek", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", got)

	got, err = f.GetCellValue("Proyek", "B2")
	require.NoError(t, err)
	assert.Equal(t, "42.5", got)

	rows, err := f.GetRows("Proyek")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
