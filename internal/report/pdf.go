package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

// GeneratePDF writes the weekly report into the user's documents
// directory and returns the absolute path of the file.
func GeneratePDF(rep Weekly) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Timesheet: %s", rep.User.Name))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Week %s to %s", rep.WeekStart, rep.WeekEnd))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "Entries")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if len(rep.Rows) == 0 {
		pdf.Cell(0, 6, "  No entries this week.")
		pdf.Ln(6)
	}
	for _, row := range rep.Rows {
		line := fmt.Sprintf("%s  %s-%s  %.1fh  %s (%s)",
			row.Date, row.StartTime, row.EndTime, row.Hours, row.TaskName, row.Category)
		if row.Overtime {
			line += "  [over budget]"
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
		if row.Description != "" {
			pdf.MultiCell(0, 5, "    "+row.Description, "", "", false)
		}
		if row.Comment != "" {
			pdf.MultiCell(0, 5, "    Manager: "+row.Comment, "", "", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "By category")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, slice := range rep.Categories {
		pdf.Cell(0, 6, fmt.Sprintf("  %s: %.1fh", slice.Category, slice.Hours))
		pdf.Ln(5)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.1fh", rep.TotalHours))

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("timesheet_%s_%s.pdf", rep.User.Username, rep.WeekStart))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filepath.Abs(path)
}
