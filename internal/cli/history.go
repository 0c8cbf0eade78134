package cli

import "fmt"

type HistoryCmd struct {
	Limit int `short:"l" help:"Maximum entries to show, newest first." default:"10"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	entries := ctx.Engine.History().Entries()
	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	shown := 0
	for i := len(entries) - 1; i >= 0 && shown < c.Limit; i-- {
		e := entries[i]
		fmt.Printf("%s  %d\n", e.Date, e.Total)
		shown++
	}
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	fmt.Printf("Current streak: %d day(s)\n", ctx.Engine.Streak())
	return nil
}
