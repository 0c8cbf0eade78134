package cli

import (
	"fmt"
)

type ZikrAddCmd struct {
	Name   string `arg:"" help:"Display name for the new zikr type."`
	Arabic string `short:"a" help:"Arabic text (auto-suggested when omitted)."`
}

func (c *ZikrAddCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	zt, err := ctx.Engine.AddCustomType(c.Name, c.Arabic)
	if err != nil {
		return err
	}

	fmt.Printf("Added zikr type: %s (%s), id %s\n", zt.Name, zt.Arabic, zt.ID)
	return nil
}

type ZikrDeleteCmd struct {
	ID  string `arg:"" help:"Id of the custom type to delete."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ZikrDeleteCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	var target string
	for _, zt := range ctx.Engine.Types() {
		if zt.ID == c.ID {
			if !zt.Custom {
				fmt.Println("Builtin zikr types cannot be deleted.")
				return nil
			}
			target = zt.Name
		}
	}
	if target == "" {
		fmt.Printf("No zikr type with id %s\n", c.ID)
		return nil
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete zikr type %q?", target))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.Engine.DeleteCustomType(c.ID)
	fmt.Printf("Deleted zikr type: %s\n", target)
	return nil
}

type ZikrListCmd struct{}

func (c *ZikrListCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	active, _ := eng.Active()
	for _, zt := range eng.Types() {
		marker := " "
		if zt.ID == active.ID {
			marker = "*"
		}
		kind := ""
		if zt.Custom {
			kind = " (custom)"
		}
		fmt.Printf("%s %-20s %s  session %d, today %d%s\n",
			marker, zt.ID, zt.Name, eng.Count(zt.ID), eng.TodayCount(zt.ID), kind)
	}
	return nil
}

type ZikrSelectCmd struct {
	ID string `arg:"" help:"Id of the type to make active."`
}

func (c *ZikrSelectCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	if err := ctx.Engine.SelectType(c.ID); err != nil {
		return err
	}

	active, _ := ctx.Engine.Active()
	fmt.Printf("Active zikr: %s (%s)\n", active.Name, active.Arabic)
	return nil
}
