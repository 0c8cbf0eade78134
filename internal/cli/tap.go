package cli

import (
	"fmt"

	"github.com/donikhodjaev/misbaha/internal/engine"
)

type TapCmd struct {
	Times int    `short:"n" help:"Number of repetitions to count." default:"1"`
	Type  string `short:"t" help:"Zikr type id (defaults to the active type)."`
	Undo  bool   `short:"u" help:"Decrement instead of increment."`
}

func (c *TapCmd) Validate() error {
	if c.Times < 1 {
		return fmt.Errorf("times must be at least 1")
	}
	return nil
}

func (c *TapCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	if c.Type != "" {
		if err := eng.SelectType(c.Type); err != nil {
			return err
		}
	}

	active, ok := eng.Active()
	if !ok {
		return fmt.Errorf("no zikr types available, add one with 'misbaha zikr add'")
	}

	for i := 0; i < c.Times; i++ {
		if c.Undo {
			eng.Decrement()
			continue
		}

		result := eng.Increment()
		if result.Milestone {
			fmt.Printf("● %d: a full round of %d\n", result.Count, engine.MilestoneInterval)
		}
		if result.GoalReached {
			fmt.Printf("🎉 Daily goal reached: %d\n", eng.Settings().DailyGoal)
		}
		for _, a := range result.Unlocked {
			fmt.Printf("🏆 Achievement unlocked: %s (%s)\n", a.Title, a.Description)
		}
	}

	fmt.Printf("%s: %d (today: %d / %d)\n",
		active.Name, eng.Count(active.ID), eng.TodayTotal(), eng.Settings().DailyGoal)
	return nil
}
