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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tido help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tido                                             Open the interactive task list
  tido list [common flags] [--filter all|active|completed]
  tido add [common flags] <title...>
  tido done [common flags] <n>
  tido edit [common flags] <n> <title...>
  tido rm [common flags] <n>
  tido clear [common flags]                        Remove all completed tasks
  tido all [common flags]                          Mark every task completed
  tido none [common flags]                         Mark every task incomplete
  tido help
  tido version

Common flags:
  --data <dir>     Override data directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
