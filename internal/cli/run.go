// Package cli implements the farmdash command line: global flag handling,
// one command per dashboard page, settings, export and the interactive
// shell.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/farmflow/farmdash/internal/config"
	"github.com/farmflow/farmdash/internal/logging"
)

type globalFlags struct {
	set      *flag.FlagSet
	help     *bool
	cwd      *string
	config   *string
	data     *string
	logLevel *string
	theme    *string
}

func newGlobalFlags() *globalFlags {
	fs := flag.NewFlagSet("farmdash", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(&strings.Builder{}) // discard pflag output

	return &globalFlags{
		set:      fs,
		help:     fs.BoolP("help", "h", false, "Show help"),
		cwd:      fs.StringP("cwd", "C", "", "Run as if started in `dir`"),
		config:   fs.StringP("config", "c", "", "Use specified config `file`"),
		data:     fs.String("data", "", "Load the dataset from a YAML `file` instead of the sample data"),
		logLevel: fs.String("log-level", "", "Log `level` (debug|info|warn|error)"),
		theme:    fs.String("theme", "", "Color `theme` (auto|light|dark)"),
	}
}

// overrides returns the flags that were given on the command line.
func (g *globalFlags) overrides() config.Overrides {
	var ov config.Overrides

	if g.set.Changed("data") {
		ov.DataFile = g.data
	}

	if g.set.Changed("log-level") {
		ov.LogLevel = g.logLevel
	}

	if g.set.Changed("theme") {
		ov.Theme = g.theme
	}

	return ov
}

// commands returns every command in help order.
func commands(a *app) []*Command {
	var cmds []*Command

	for _, p := range dashboardPages() {
		cmds = append(cmds, pageCmd(a, p))
	}

	return append(cmds, settingsCmd(a), exportCmd(a), shellCmd(a))
}

// Run is the main entry point. Returns exit code.
//
// A signal on sigCh cancels the command's context; sigCh may be nil.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globals := newGlobalFlags()

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.set.Parse(args)
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printGlobalFlags(errOut, globals.set)

		return 1
	}

	// Help needs no config and must work in a broken project.
	if *globals.help {
		printUsage(out, globals.set, commands(&app{}))

		return 0
	}

	rest := globals.set.Args()

	if len(args) == 0 {
		printUsage(out, globals.set, commands(&app{}))

		return 0
	}

	if len(rest) == 0 {
		fprintln(errOut, "error:", errNoCommand)
		fprintln(errOut)
		printUsage(errOut, globals.set, commands(&app{}))

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: *globals.cwd,
		ConfigPath:      *globals.config,
		Overrides:       globals.overrides(),
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printGlobalFlags(errOut, globals.set)

		return 1
	}

	log, err := logging.New(errOut, cfg.LogLevel)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	defer func() { _ = log.Sync() }()

	a := &app{cfg: &cfg, env: env, log: log, in: in}

	var cmd *Command

	for _, c := range commands(a) {
		if c.Name() == rest[0] {
			cmd = c

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, rest[0]))
		fprintln(errOut)
		printUsage(errOut, globals.set, commands(a))

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	o := NewIO(out, errOut)

	code := cmd.Run(ctx, o, rest[1:])
	if code != 0 {
		return code
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		log.Debug("interrupted")
	}

	return o.Finish()
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printGlobalFlags(w io.Writer, fs *flag.FlagSet) {
	fprintln(w, "Global flags:")
	_, _ = fmt.Fprint(w, fs.FlagUsages())
}

func printUsage(w io.Writer, fs *flag.FlagSet, cmds []*Command) {
	fprintln(w, `farmdash - farm management dashboard

Usage: farmdash [global flags] <command> [flags]`)
	fprintln(w)
	printGlobalFlags(w, fs)
	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range cmds {
		fprintln(w, c.HelpLine())
	}

	fprintln(w)
	fprintln(w, `Run "farmdash <command> --help" for command flags.`)
}
