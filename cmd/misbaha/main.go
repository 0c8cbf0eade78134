package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/donikhodjaev/misbaha/internal/cli"
	"github.com/donikhodjaev/misbaha/internal/constants"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store file path." type:"path" default:"~/.config/misbaha/misbaha.db"`

	Init cli.InitCmd `cmd:"" help:"Initialize misbaha storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive counter." default:"1"`
	Tap  cli.TapCmd  `cmd:"" help:"Count repetitions of the active zikr."`
	Zikr struct {
		Add    cli.ZikrAddCmd    `cmd:"" help:"Add a custom zikr type."`
		Delete cli.ZikrDeleteCmd `cmd:"" help:"Delete a custom zikr type."`
		List   cli.ZikrListCmd   `cmd:"" help:"List zikr types."`
		Select cli.ZikrSelectCmd `cmd:"" help:"Select the active zikr type."`
	} `cmd:"" help:"Manage zikr types."`
	Goal         cli.GoalCmd         `cmd:"" help:"Show or set the daily goal."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show statistics."`
	History      cli.HistoryCmd      `cmd:"" help:"Show daily history."`
	Streak       cli.StreakCmd       `cmd:"" help:"Show the current streak."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievements."`
	Export       cli.ExportCmd       `cmd:"" help:"Export data as JSON."`
	Import       cli.ImportCmd       `cmd:"" help:"Import data from a JSON export."`
	Sync         cli.SyncCmd         `cmd:"" help:"Send a snapshot to the companion Telegram bot."`
	Report       cli.ReportCmd       `cmd:"" help:"Generate a PDF statistics report."`
	Reset        cli.ResetCmd        `cmd:"" help:"Reset counters or all data."`
	Backup       cli.BackupCmd       `cmd:"" help:"Manage store backups."`
	Settings     cli.SettingsCmd     `cmd:"" help:"Show or change settings."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Run health checks."`
	Debug        cli.DebugCmd        `cmd:"" help:"Inspect internal state."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Digital misbaha: a zikr counter with goals, streaks and achievements"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	// Storage backend follows the file extension
	var store storage.Adapter
	if strings.HasSuffix(CLI.Store, ".json") {
		store = storage.NewJSONStore(CLI.Store)
	} else {
		store = storage.NewSQLiteStore(CLI.Store)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
