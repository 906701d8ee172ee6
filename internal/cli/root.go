// Package cli provides the cobra command tree for the todo binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/mdtodo/internal/config"
	"github.com/idilsaglam/mdtodo/internal/logging"
	"github.com/idilsaglam/mdtodo/internal/todolist"
	"github.com/idilsaglam/mdtodo/internal/ui"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by the commands of one invocation.
type app struct {
	info BuildInfo

	configPath string
	debug      bool
	overrides  config.Config

	workDir string
	getenv  func(string) string

	cfg config.Config
	out *ui.Printer
}

// NewRootCommand creates the root todo command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(&app{info: info})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A todo list kept as a Markdown checklist",
		Long: `todo manages a todo list stored as a Markdown checklist.

Items live in a plain file (TODO.md by default) as "- [ ] text" and
"- [X] text" lines under a "# TODO" header, so the list stays readable
and editable without the tool. Items are addressed by their 1-based
position as shown by "todo list".`,
		Example: `  todo add "Buy milk"
  todo list
  todo done 1
  todo remove completed`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.overrides.File, "file", "f", "", "todo file (default \"TODO.md\")")
	flags.StringVar(&a.configPath, "config", "", "path to config file (default .mdtodo.yaml if present)")
	flags.StringVar(&a.overrides.Theme, "theme", "", "output theme: classic, neon, mono")
	flags.StringVar(&a.overrides.Color, "color", "", "colorize output: auto, always, never")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newAddCommand(a),
		newDoneCommand(a),
		newListCommand(a),
		newRemoveCommand(a),
		newImportCommand(a),
		newEditCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// setup resolves configuration and attaches the logger to the command
// context.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := a.overrides
	if a.debug {
		overrides.LogLevel = "debug"
	}

	res, err := config.Load(config.Options{
		WorkingDir:   a.workDir,
		ExplicitPath: a.configPath,
		Getenv:       a.getenv,
		Overrides:    overrides,
	})
	if err != nil {
		return failure(err)
	}
	a.cfg = res.Config
	a.out = ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.cfg.Theme, a.cfg.Color)

	logger := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
	logger.Debug("starting", logging.FieldCommand, cmd.Name(), logging.FieldVersion, a.info.Version)
	if res.LoadedFrom != "" {
		logger.Debug("loaded config", logging.FieldSource, res.LoadedFrom)
	}
	logger.Debug("using todo file", logging.FieldPath, a.cfg.File, logging.FieldTheme, a.cfg.Theme)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

// update loads the list, applies fn and saves the result. The list is
// saved even when fn reports a non-fatal problem.
func (a *app) update(ctx context.Context, fn func(l *todolist.List)) error {
	l, err := todolist.Load(ctx, a.cfg.File)
	if err != nil {
		return failure(err)
	}
	fn(l)
	return failure(l.Save(ctx, a.cfg.File))
}

// Run executes the command tree with args and returns the exit code.
func Run(ctx context.Context, info BuildInfo, args []string, stdout, stderr io.Writer) int {
	return run(ctx, &app{info: info}, args, stdout, stderr)
}

func run(ctx context.Context, a *app, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand(a)
	rootCmd.SetArgs(positionalNegatives(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	code := exitCode(err)
	if code == ExitSuccess {
		return code
	}

	out := a.out
	if out == nil {
		out = ui.NewPrinter(stdout, stderr, "classic", config.ColorAuto)
	}
	out.Fail(err.Error())
	if code == ExitUsage {
		if cmd == nil {
			cmd = rootCmd
		}
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return code
}

// positionalNegatives inserts "--" before the first negative number that
// follows the subcommand name, so "todo done -1" reaches the command as an
// item number instead of failing as an unknown shorthand flag.
func positionalNegatives(root *cobra.Command, args []string) []string {
	seenCommand := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case isNegativeNumber(arg):
			if !seenCommand {
				return args
			}
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "-"):
			if takesValue(root, arg) {
				i++
			}
		default:
			seenCommand = true
		}
	}
	return args
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}

// takesValue reports whether arg is a persistent flag that consumes the
// next argument as its value.
func takesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	flags := root.PersistentFlags()
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f := flags.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}
	if len(arg) == 2 {
		f := flags.ShorthandLookup(arg[1:])
		return f != nil && f.NoOptDefVal == ""
	}
	return false
}
