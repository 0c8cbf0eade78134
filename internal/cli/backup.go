package cli

import (
	"fmt"

	"github.com/donikhodjaev/misbaha/internal/backup"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" default:"1" help:"Create a backup of the store."`
	List    BackupListCmd    `cmd:"" help:"List available backups, newest first."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())

	path, err := mgr.Create()
	if err != nil {
		return err
	}

	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())

	infos, err := mgr.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, info := range infos {
		fmt.Printf("%s  %s\n", info.Timestamp.Format("2006-01-02 15:04:05"), info.Path)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if !c.Yes {
		ok, err := confirm("Restoring overwrites the current store. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	mgr := backup.NewManager(ctx.Store.Path())
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}

	fmt.Println("Store restored. A snapshot of the previous state was kept alongside the backups.")
	return nil
}
