// Package report renders a statistics summary PDF.
package report

import (
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/donikhodjaev/misbaha/internal/history"
)

// Data is everything the report needs, precomputed by the caller.
type Data struct {
	GeneratedOn  string // YYYY-MM-DD
	TodayTotal   int
	TotalAllTime int
	StreakDays   int
	DailyGoal    int
	Stats        *history.Stats
	Series       []history.Point
	ByType       map[string]int // type id -> lifetime total
	Unlocked     []string       // achievement ids
}

// Write renders the report to path. The core PDF fonts are Latin-1
// only, so type ids and numeric data stand in for Cyrillic and Arabic
// display text.
func Write(path string, data Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Misbaha Report: %s", data.GeneratedOn))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Today: %d / %d", data.TodayTotal, data.DailyGoal))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("All time: %d", data.TotalAllTime))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Streak: %d days", data.StreakDays))
	pdf.Ln(10)

	if data.Stats != nil {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "History")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Average per day: %d", data.Stats.Average))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Best day: %d (%s)", data.Stats.BestDay, data.Stats.BestDayDate))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Days recorded: %d", data.Stats.TotalDays))
		pdf.Ln(10)
	}

	if len(data.Series) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("Last %d days", len(data.Series)))
		pdf.Ln(8)
		pdf.SetFont("Courier", "", 10)

		max := 1
		for _, p := range data.Series {
			if p.Value > max {
				max = p.Value
			}
		}
		for _, p := range data.Series {
			bar := ""
			for i := 0; i < p.Value*40/max; i++ {
				bar += "#"
			}
			pdf.Cell(0, 5, fmt.Sprintf("%s %5d %s", p.Date, p.Value, bar))
			pdf.Ln(5)
		}
		pdf.Ln(5)
	}

	if len(data.ByType) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "By type")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)

		ids := make([]string, 0, len(data.ByType))
		for id := range data.ByType {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			pdf.Cell(0, 8, fmt.Sprintf("%s: %d", id, data.ByType[id]))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(data.Unlocked) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Achievements")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, id := range data.Unlocked {
			pdf.Cell(0, 8, "[x] "+id)
			pdf.Ln(6)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
