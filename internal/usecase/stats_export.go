package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"portfolio-backend/internal/domain"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Export formats accepted by ExportStats
const (
	ExportXLSX = "xlsx"
	ExportCSV  = "csv"
)

func (uc *analyticsUsecase) ExportStats(ctx context.Context, format string) ([]byte, string, error) {
	stats, err := uc.GetStats(ctx)
	if err != nil {
		return nil, "", err
	}

	stamp := uc.now().UTC().Format("20060102_150405")
	switch format {
	case ExportXLSX, "":
		data, err := exportStatsExcel(stats)
		return data, fmt.Sprintf("visit_stats_%s.xlsx", stamp), err
	case ExportCSV:
		data, err := exportStatsCSV(stats)
		return data, fmt.Sprintf("visit_stats_%s.csv", stamp), err
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func summaryRows(stats *domain.VisitStats) [][2]any {
	return [][2]any{
		{"TOTAL VISITS", stats.TotalVisits},
		{"UNIQUE VISITORS", stats.UniqueVisitors},
		{"VISITS TODAY", stats.VisitsToday},
		{"VISITS THIS WEEK", stats.VisitsThisWeek},
	}
}

// exportStatsExcel writes a Summary sheet and a Top Paths sheet
func exportStatsExcel(stats *domain.VisitStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary, paths = "Summary", "Top Paths"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(paths); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	// Dark blue header with white text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	_ = f.SetSheetRow(summary, "A1", &[]any{"METRIC", "VALUE"})
	_ = f.SetCellStyle(summary, "A1", "B1", headerStyle)
	for i, row := range summaryRows(stats) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(summary, cell, &[]any{row[0], row[1]})
	}
	_ = f.SetColWidth(summary, "A", "B", 20)

	_ = f.SetSheetRow(paths, "A1", &[]any{"PATH", "VISITS"})
	_ = f.SetCellStyle(paths, "A1", "B1", headerStyle)
	for i, pc := range stats.TopPaths {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(paths, cell, &[]any{pc.Path, pc.Count})
	}
	_ = f.SetColWidth(paths, "A", "A", 40)
	_ = f.SetColWidth(paths, "B", "B", 12)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// exportStatsCSV writes the summary rows, a blank line, then the top paths
func exportStatsCSV(stats *domain.VisitStats) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"metric", "value"})
	for _, row := range summaryRows(stats) {
		_ = w.Write([]string{row[0].(string), strconv.FormatInt(row[1].(int64), 10)})
	}
	_ = w.Write(nil)
	_ = w.Write([]string{"path", "visits"})
	for _, pc := range stats.TopPaths {
		_ = w.Write([]string{pc.Path, strconv.FormatInt(pc.Count, 10)})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}
