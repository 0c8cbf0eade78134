package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/donikhodjaev/misbaha/internal/syncer"
)

type SyncCmd struct {
	Timeout time.Duration `help:"Network timeout for the relay request." default:"15s"`
}

func (c *SyncCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	cfg, ok := syncer.LoadRelayConfig(ctx.Store.Path())
	if !ok {
		return fmt.Errorf("relay not configured: set MISBAHA_BOT_TOKEN and MISBAHA_CHAT_ID (env or .env next to the store)")
	}

	relay := syncer.NewRelay(cfg)
	payload := syncer.Build(ctx.Engine, ctx.Engine.Now())

	reqCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	if err := relay.Send(reqCtx, payload); err != nil {
		return err
	}

	fmt.Printf("Synced: today %d, all time %d, streak %d\n",
		payload.TodayCount, payload.TotalAllTime, payload.StreakDays)
	return nil
}
