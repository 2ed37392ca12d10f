package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/task"
)

func init() {
	Register(&AllCmd{})
	Register(&NoneCmd{})
}

// AllCmd marks every task completed.
type AllCmd struct{}

func (c *AllCmd) Name() string      { return "all" }
func (c *AllCmd) Aliases() []string { return nil }
func (c *AllCmd) Synopsis() string  { return "Mark every task completed" }
func (c *AllCmd) Usage() string     { return "tido all" }
func (c *AllCmd) NeedsStore() bool  { return true }

func (c *AllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AllCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	return runSetAll(cfg, store, true, out, errOut)
}

// NoneCmd marks every task incomplete.
type NoneCmd struct{}

func (c *NoneCmd) Name() string      { return "none" }
func (c *NoneCmd) Aliases() []string { return nil }
func (c *NoneCmd) Synopsis() string  { return "Mark every task incomplete" }
func (c *NoneCmd) Usage() string     { return "tido none" }
func (c *NoneCmd) NeedsStore() bool  { return true }

func (c *NoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NoneCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	return runSetAll(cfg, store, false, out, errOut)
}

// runSetAll is the shared implementation for all and none.
func runSetAll(cfg *config.Config, store *task.Store, completed bool, out, errOut io.Writer) int {
	if _, err := store.SetAllCompleted(completed); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
