package cli

import (
	"fmt"
	"sort"

	"github.com/donikhodjaev/misbaha/internal/history"
)

type StatsCmd struct {
	Period int `short:"p" help:"Days covered by the activity chart." default:"7"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	fmt.Printf("Today:        %d / %d\n", eng.TodayTotal(), eng.Settings().DailyGoal)
	fmt.Printf("All time:     %d\n", eng.TotalAllTime())
	fmt.Printf("Streak:       %d day(s)\n", eng.Streak())
	if stats := eng.History().ComputeStats(); stats != nil {
		fmt.Printf("Daily avg:    %d over %d day(s)\n", stats.Average, stats.TotalDays)
		fmt.Printf("Best day:     %d on %s\n", stats.BestDay, stats.BestDayDate)
	}
	fmt.Printf("Goals met:    %d time(s)\n", eng.GoalAchievedCount())

	byType := eng.History().ComputeByType(eng.Types(), eng.TodayCounts(), eng.Now())
	if len(byType) > 0 {
		fmt.Println("\nBy type:")
		ids := make([]string, 0, len(byType))
		for id := range byType {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		names := make(map[string]string, len(ids))
		for _, zt := range eng.Types() {
			names[zt.ID] = zt.Name
		}
		for _, id := range ids {
			name := names[id]
			if name == "" {
				name = id
			}
			fmt.Printf("  %-20s %d\n", name, byType[id])
		}
	}

	series := eng.History().ComputeTimeSeries(c.Period, eng.Now(), eng.TodayTotal())
	if len(series) > 0 {
		fmt.Printf("\nLast %d day(s):\n", c.Period)
		printChart(series)
	}
	return nil
}

// printChart renders a horizontal bar per day, scaled to the busiest day.
func printChart(series []history.Point) {
	const width = 40

	max := 0
	for _, p := range series {
		if p.Value > max {
			max = p.Value
		}
	}
	for _, p := range series {
		bar := 0
		if max > 0 {
			bar = p.Value * width / max
		}
		if p.Value > 0 && bar == 0 {
			bar = 1
		}
		fmt.Printf("  %s %-*s %d\n", p.Label, width, repeat('#', bar), p.Value)
	}
}

func repeat(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
