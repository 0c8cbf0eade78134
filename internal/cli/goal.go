package cli

import "fmt"

type GoalCmd struct {
	Value int `arg:"" optional:"" help:"New daily goal (1-10000). Omit to show the current goal."`
}

func (c *GoalCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	if c.Value == 0 {
		fmt.Printf("Daily goal: %d (today: %d)\n", eng.Settings().DailyGoal, eng.TodayTotal())
		return nil
	}

	if err := eng.SetDailyGoal(c.Value); err != nil {
		return err
	}

	fmt.Printf("Daily goal set to %d\n", c.Value)
	return nil
}
