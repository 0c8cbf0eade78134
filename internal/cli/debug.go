package cli

import (
	"encoding/json"
	"fmt"

	"github.com/donikhodjaev/misbaha/internal/syncer"
)

type DebugCmd struct {
	StorePath   *DebugStorePathCmd   `cmd:"" help:"Show store path."`
	DumpPayload *DebugDumpPayloadCmd `cmd:"" help:"Dump the sync payload as JSON."`
	DumpHistory *DebugDumpHistoryCmd `cmd:"" help:"Dump the history log as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpPayloadCmd struct{}

func (cmd *DebugDumpPayloadCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	payload := syncer.Build(ctx.Engine, ctx.Engine.Now())

	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpHistoryCmd struct{}

func (cmd *DebugDumpHistoryCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(ctx.Engine.History().Entries(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
