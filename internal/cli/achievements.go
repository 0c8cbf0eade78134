package cli

import (
	"fmt"

	"github.com/donikhodjaev/misbaha/internal/achievements"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	unlocked := make(map[string]bool)
	for _, id := range ctx.Engine.Unlocked() {
		unlocked[id] = true
	}

	for _, a := range achievements.All() {
		mark := " "
		if unlocked[a.ID] {
			mark = "x"
		}
		fmt.Printf("[%s] %s: %s\n", mark, a.Title, a.Description)
	}
	return nil
}
