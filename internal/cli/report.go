package cli

import (
	"fmt"

	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/report"
)

type ReportCmd struct {
	Output string `short:"o" help:"Path for the generated PDF." default:"misbaha-report.pdf"`
	Period int    `short:"p" help:"Days covered by the activity chart." default:"7"`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	data := report.Data{
		GeneratedOn:  models.Day(eng.Now()),
		TodayTotal:   eng.TodayTotal(),
		DailyGoal:    eng.Settings().DailyGoal,
		TotalAllTime: eng.TotalAllTime(),
		StreakDays:   eng.Streak(),
		Stats:        eng.History().ComputeStats(),
		Series:       eng.History().ComputeTimeSeries(c.Period, eng.Now(), eng.TodayTotal()),
		ByType:       eng.History().ComputeByType(eng.Types(), eng.TodayCounts(), eng.Now()),
		Unlocked:     eng.Unlocked(),
	}

	if err := report.Write(c.Output, data); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", c.Output)
	return nil
}
