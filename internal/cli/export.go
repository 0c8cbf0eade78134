package cli

import (
	"fmt"
	"os"

	"github.com/donikhodjaev/misbaha/internal/syncer"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	payload := syncer.Build(ctx.Engine, ctx.Engine.Now())

	if c.Output == "" {
		return syncer.Export(os.Stdout, payload)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := syncer.Export(f, payload); err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Path to a previously exported JSON file."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm("Importing overwrites local counts and settings. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	if err := syncer.Import(f, ctx.Engine); err != nil {
		return err
	}

	fmt.Printf("Imported %s (all time: %d)\n", c.Input, ctx.Engine.TotalAllTime())
	return nil
}
