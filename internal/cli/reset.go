package cli

import "fmt"

type ResetCmd struct {
	Session ResetSessionCmd `cmd:"" help:"Zero the session counters, keeping today's totals and history."`
	All     ResetAllCmd     `cmd:"" help:"Wipe everything and restore defaults."`
}

type ResetSessionCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetSessionCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm("Reset session counters?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.Engine.ResetSession()
	fmt.Println("Session counters reset.")
	return nil
}

type ResetAllCmd struct{}

// Run always asks twice; there is deliberately no --yes escape hatch.
func (c *ResetAllCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	ok, err := confirm("This deletes ALL data: counts, history, achievements, settings. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}
	ok, err = confirm("Are you absolutely sure?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx.Engine.ResetAll()
	fmt.Println("All data erased. Defaults restored.")
	return nil
}
