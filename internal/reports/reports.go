// Package reports assembles administrative statistics and renders them as
// JSON, PDF or Excel exports.
package reports

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"depresscare-server/internal/models"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// Result is a rendered report ready to be sent to the client. Data is set for
// JSON exports, Bytes for file exports.
type Result struct {
	Filename    string
	ContentType string
	Bytes       []byte
	Data        interface{}
}

// Generator builds reports from the database.
type Generator struct {
	DB *gorm.DB
}

// New creates a Generator.
func New(db *gorm.DB) *Generator {
	return &Generator{DB: db}
}

// table is the intermediate shape every report reduces to before rendering.
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Generate builds the requested report and renders it in the requested format.
func (g *Generator) Generate(reportType models.ReportType, format Format, from, to *time.Time) (*Result, error) {
	var (
		t    table
		data interface{}
		err  error
	)

	switch reportType {
	case models.ReportUserStats:
		t, data, err = g.userStats()
	case models.ReportAppointmentStats:
		t, data, err = g.appointmentStats(from, to)
	case models.ReportAssessmentSummary:
		t, data, err = g.assessmentSummary(from, to)
	default:
		return nil, fmt.Errorf("unknown report type: %s", reportType)
	}
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102-150405")
	base := fmt.Sprintf("%s-%s", reportType, stamp)

	switch format {
	case FormatJSON:
		return &Result{
			Filename:    base + ".json",
			ContentType: "application/json",
			Data:        data,
		}, nil
	case FormatPDF:
		b, err := renderPDF(t)
		if err != nil {
			return nil, err
		}
		return &Result{
			Filename:    base + ".pdf",
			ContentType: "application/pdf",
			Bytes:       b,
		}, nil
	case FormatExcel:
		b, err := renderExcel(t)
		if err != nil {
			return nil, err
		}
		return &Result{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Bytes:       b,
		}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

func (g *Generator) userStats() (table, interface{}, error) {
	roles := []models.Role{models.RolePatient, models.RolePsychiatrist, models.RoleAdmin, models.RoleInternal}

	counts := map[string]int64{}
	var total int64
	for _, role := range roles {
		var n int64
		if err := g.DB.Model(&models.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
			return table{}, nil, fmt.Errorf("count users by role: %w", err)
		}
		counts[string(role)] = n
		total += n
	}

	t := table{
		Title:   "User Statistics",
		Headers: []string{"Role", "Count"},
	}
	for _, role := range roles {
		t.Rows = append(t.Rows, []string{string(role), strconv.FormatInt(counts[string(role)], 10)})
	}
	t.Rows = append(t.Rows, []string{"Total", strconv.FormatInt(total, 10)})

	return t, map[string]interface{}{"byRole": counts, "total": total}, nil
}

func (g *Generator) appointmentStats(from, to *time.Time) (table, interface{}, error) {
	statuses := []models.AppointmentStatus{
		models.StatusPending, models.StatusScheduled, models.StatusCompleted, models.StatusCancelled,
	}

	counts := map[string]int64{}
	var total int64
	for _, status := range statuses {
		query := g.DB.Model(&models.Appointment{}).Where("status = ?", status)
		if from != nil {
			query = query.Where("scheduled_time >= ?", *from)
		}
		if to != nil {
			query = query.Where("scheduled_time <= ?", *to)
		}
		var n int64
		if err := query.Count(&n).Error; err != nil {
			return table{}, nil, fmt.Errorf("count appointments by status: %w", err)
		}
		counts[string(status)] = n
		total += n
	}

	t := table{
		Title:   "Appointment Statistics",
		Headers: []string{"Status", "Count"},
	}
	for _, status := range statuses {
		t.Rows = append(t.Rows, []string{string(status), strconv.FormatInt(counts[string(status)], 10)})
	}
	t.Rows = append(t.Rows, []string{"Total", strconv.FormatInt(total, 10)})

	return t, map[string]interface{}{"byStatus": counts, "total": total}, nil
}

func (g *Generator) assessmentSummary(from, to *time.Time) (table, interface{}, error) {
	query := g.DB.Model(&models.DepressionForm{})
	if from != nil {
		query = query.Where("filled_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("filled_at <= ?", *to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return table{}, nil, fmt.Errorf("count assessments: %w", err)
	}

	var avg, min, max float64
	if count > 0 {
		row := struct {
			Avg float64
			Min float64
			Max float64
		}{}
		err := query.Select("AVG(total_score) as avg, MIN(total_score) as min, MAX(total_score) as max").
			Scan(&row).Error
		if err != nil {
			return table{}, nil, fmt.Errorf("aggregate assessment scores: %w", err)
		}
		avg, min, max = row.Avg, row.Min, row.Max
	}

	t := table{
		Title:   "Assessment Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Submitted forms", strconv.FormatInt(count, 10)},
			{"Average score", fmt.Sprintf("%.2f", avg)},
			{"Lowest score", fmt.Sprintf("%.0f", min)},
			{"Highest score", fmt.Sprintf("%.0f", max)},
		},
	}

	return t, map[string]interface{}{
		"count":        count,
		"averageScore": avg,
		"lowestScore":  min,
		"highestScore": max,
	}, nil
}

func renderPDF(t table) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 12, t.Title)
	pdf.Ln(14)

	colWidth := 190.0 / float64(len(t.Headers))

	pdf.SetFont("Arial", "B", 11)
	for _, header := range t.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, row := range t.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderExcel(t table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if err := f.SetCellValue(sheet, "A1", t.Title); err != nil {
		return nil, fmt.Errorf("render excel: %w", err)
	}

	for i, header := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("render excel: %w", err)
		}
	}
	for r, row := range t.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+4)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("render excel: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render excel: %w", err)
	}
	return buf.Bytes(), nil
}
