package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/mdtodo/internal/importer"
	"github.com/idilsaglam/mdtodo/internal/logging"
	"github.com/idilsaglam/mdtodo/internal/todolist"
	"github.com/idilsaglam/mdtodo/internal/tui"
)

// Keywords accepted by "todo remove" in place of a number.
const (
	removeCompleted = "completed"
	removeAll       = "all"
)

func exactArg(what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) == 0:
			return usageErrorf("no %s provided", what)
		case len(args) > 1:
			return usageErrorf("expected one %s, got %d arguments", what, len(args))
		}
		return nil
	}
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageErrorf("not a number: %q", s)
	}
	return n, nil
}

// reportInvalid prints the non-fatal out-of-range message.
func (a *app) reportInvalid(err error) {
	a.out.Fail(err.Error())
	a.out.Hint("Hint: run `todo list` to see valid numbers")
}

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item to the list",
		Long: `Add a new, not yet done item at the end of the list.

Several arguments are joined with single spaces. Line breaks in the text
are replaced with spaces so the item stays on one line of the file.`,
		Example: `  todo add "Buy milk"
  todo add Call the plumber`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("no item provided")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)

			var n int
			err := a.update(cmd.Context(), func(l *todolist.List) {
				l.Add(text)
				n = l.Len()
			})
			if err != nil {
				return err
			}
			a.out.OK(fmt.Sprintf("added %d: %s", n, text))
			return nil
		},
	}
}

func newDoneCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "done <number>",
		Aliases: []string{"mark", "complete"},
		Short:   "Mark an item as done",
		Args:    exactArg("item number"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var opErr error
			err = a.update(ctx, func(l *todolist.List) {
				opErr = l.MarkDone(n)
			})
			if err != nil {
				return err
			}
			if opErr != nil {
				logging.FromContext(ctx).Debug("mark done rejected", logging.FieldNumber, n, logging.FieldError, opErr)
				a.reportInvalid(opErr)
				return nil
			}
			a.out.OK(fmt.Sprintf("marked %d as done", n))
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var pretty, group bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items",
		Long: `List all items as "n: - [ ] text" lines.

With --pretty the list is drawn in a frame with done/pending counts and a
progress bar; --group then splits it into pending and done sections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := todolist.Load(cmd.Context(), a.cfg.File)
			if err != nil {
				return failure(err)
			}
			if pretty {
				a.out.Panel(prettyLines(a.out.Theme, l.Items(), group))
				return nil
			}
			for _, line := range l.Lines() {
				a.out.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "draw a framed summary with progress")
	cmd.Flags().BoolVar(&group, "group", false, "with --pretty, group items by pending/done")
	return cmd
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <number|completed|all>",
		Aliases: []string{"rm"},
		Short:   "Remove one item, all completed items, or everything",
		Long: `Remove items from the list.

  todo remove 3          remove item 3; later items move up by one
  todo remove completed  remove every item marked done
  todo remove all        empty the list`,
		Args: exactArg("item number"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			switch arg := args[0]; arg {
			case removeCompleted, removeAll:
				var removed int
				err := a.update(ctx, func(l *todolist.List) {
					if arg == removeAll {
						removed = l.RemoveAll()
					} else {
						removed = l.RemoveCompleted()
					}
				})
				if err != nil {
					return err
				}
				logger.Debug("removed items", logging.FieldCommand, arg, logging.FieldRemoved, removed)
				a.out.OK(fmt.Sprintf("removed %d item(s)", removed))
				return nil
			}

			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			var opErr error
			err = a.update(ctx, func(l *todolist.List) {
				_, opErr = l.Remove(n)
			})
			if err != nil {
				return err
			}
			if opErr != nil {
				a.reportInvalid(opErr)
				return nil
			}
			a.out.OK(fmt.Sprintf("removed %d", n))
			return nil
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <markdown-file>",
		Short: "Append the task-list items of another Markdown file",
		Long: `Append every GitHub-style task-list item ("- [ ] ..." or "- [x] ...")
found anywhere in a Markdown document, in document order, keeping its
done state. Inline formatting is reduced to plain text.`,
		Args: exactArg("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := importer.ExtractFile(args[0])
			if err != nil {
				return failure(err)
			}
			err = a.update(cmd.Context(), func(l *todolist.List) {
				for _, it := range items {
					l.Insert(l.Len()+1, it)
				}
			})
			if err != nil {
				return err
			}
			a.out.OK(fmt.Sprintf("imported %d item(s) from %s", len(items), args[0]))
			return nil
		},
	}
}

func newEditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the list interactively",
		Long: `Open the list in a full-screen editor.

Keys: space toggles done, a adds after the cursor, e edits, d deletes,
u undoes the last delete, / filters, q quits. Changes are saved on quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			l, err := todolist.Load(ctx, a.cfg.File)
			if err != nil {
				return failure(err)
			}
			err = tui.Run(l, a.out.Theme,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return failure(err)
			}
			if !l.Dirty() {
				return nil
			}
			if err := l.Save(ctx, a.cfg.File); err != nil {
				return failure(err)
			}
			a.out.OK("saved")
			return nil
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s (commit %s, built %s)\n", a.info.Version, a.info.Commit, a.info.Date)
		},
	}
}
