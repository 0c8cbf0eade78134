package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/donikhodjaev/misbaha/internal/engine"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

// Context is shared by every command.
type Context struct {
	Store  storage.Adapter
	Engine *engine.Engine
}

// loadEngine loads the store and hydrates the engine. Every command
// that touches counter state goes through it.
func (ctx *Context) loadEngine() error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if ctx.Engine == nil {
		ctx.Engine = engine.New(ctx.Store)
		ctx.Engine.Hydrate()
	}
	return nil
}

// confirm prompts on stdin and accepts y/yes.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
