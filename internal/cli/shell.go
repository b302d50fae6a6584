package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/farmflow/farmdash/internal/render"
)

const shellPrompt = "farmdash> "

// lineReader is the shell's input: liner on a terminal, a plain line reader
// otherwise.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// plainReader reads lines from a non-terminal input without echoing a
// prompt.
type plainReader struct {
	sc *bufio.Scanner
}

func (r *plainReader) Prompt(string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}

	if err := r.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (r *plainReader) AppendHistory(string) {}

func (r *plainReader) Close() error { return nil }

// linerReader adapts liner and persists history on Close.
type linerReader struct {
	*liner.State

	historyPath string
}

func (r *linerReader) Close() error {
	if r.historyPath != "" {
		if f, err := os.Create(r.historyPath); err == nil {
			_, _ = r.WriteHistory(f)
			_ = f.Close()
		}
	}

	return r.State.Close()
}

func historyPath(env map[string]string) string {
	if state := env["XDG_STATE_HOME"]; state != "" {
		return filepath.Join(state, "farmdash", "history")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".farmdash_history")
	}

	return ""
}

func (a *app) newLineReader(complete func(string) []string) lineReader {
	f, ok := a.in.(*os.File)
	if ok && f == os.Stdin {
		if _, tty := render.TerminalWidth(f.Fd()); tty {
			st := liner.NewLiner()
			st.SetCtrlCAborts(true)
			st.SetCompleter(complete)

			path := historyPath(a.env)
			if hf, err := os.Open(path); err == nil {
				_, _ = st.ReadHistory(hf)
				_ = hf.Close()
			}

			if path != "" {
				_ = os.MkdirAll(filepath.Dir(path), 0o750)
			}

			return &linerReader{State: st, historyPath: path}
		}
	}

	in := a.in
	if in == nil {
		in = strings.NewReader("")
	}

	return &plainReader{sc: bufio.NewScanner(in)}
}

// shell is the interactive page browser. It keeps the current page and its
// filters, and re-renders after every change.
type shell struct {
	app     *app
	pages   []page
	current page
	query   query
}

func shellCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Browse pages interactively",
		Long: "Browse pages interactively. Type 'help' for shell commands. " +
			"Search text, the selector and options apply to the current page and reset when the page changes.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := noArgs(args)
			if err != nil {
				return err
			}

			pages := dashboardPages()
			sh := &shell{app: a, pages: pages, current: pages[0]}

			return sh.run(ctx, o)
		},
	}
}

func (s *shell) run(ctx context.Context, o *IO) error {
	r := s.app.newLineReader(s.complete)
	defer func() { _ = r.Close() }()

	s.exec(o, "show")

	for ctx.Err() == nil {
		line, err := r.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.AppendHistory(line)

		if !s.exec(o, line) {
			return nil
		}
	}

	return nil
}

// exec runs one shell line. It returns false when the shell should exit.
// Each line renders through its own IO, so warnings are reported with the
// page that raised them and never change the shell's exit code.
func (s *shell) exec(parent *IO, line string) bool {
	o := NewIO(parent.out, parent.errOut)
	defer o.FlushWarnings()

	cmd, rest, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	var err error

	switch cmd {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		s.printHelp(o)
	case "show", "ls":
		err = s.show(o)
	case "page":
		err = s.open(o, rest)
	case "search":
		err = s.setSearch(o, rest)
	case "select":
		err = s.setSelector(o, rest)
	case "set":
		name, value, _ := strings.Cut(rest, " ")
		err = s.setOption(o, name, strings.TrimSpace(value))
	case "clear":
		err = s.apply(o, query{})
	default:
		if p, ok := s.page(cmd); ok && rest == "" {
			err = s.open(o, p.name)
		} else {
			err = fmt.Errorf("%w: %s (type 'help' for commands)", errUnknownShellCmd, cmd)
		}
	}

	if err != nil {
		o.ErrPrintln("error:", err)
	}

	return true
}

func (s *shell) page(name string) (page, bool) {
	i := slices.IndexFunc(s.pages, func(p page) bool { return p.name == name })
	if i < 0 {
		return page{}, false
	}

	return s.pages[i], true
}

func (s *shell) show(o *IO) error {
	return s.current.show(s.app, o, s.query)
}

func (s *shell) open(o *IO, name string) error {
	p, ok := s.page(name)
	if !ok {
		return fmt.Errorf("%w: page <%s>", errShellArgs, strings.Join(s.pageNames(), "|"))
	}

	s.current, s.query = p, query{}

	return s.show(o)
}

func (s *shell) setSearch(o *IO, search string) error {
	if search != "" && s.current.search == "" {
		return fmt.Errorf("%s has no search", s.current.name)
	}

	next := s.query.clone()
	next.search = search

	return s.apply(o, next)
}

func (s *shell) setSelector(o *IO, selector string) error {
	if selector != "" && s.current.selector == "" {
		return fmt.Errorf("%s has no selector", s.current.name)
	}

	next := s.query.clone()
	next.selector = selector

	return s.apply(o, next)
}

// setOption sets one option of the current page. An empty value clears it.
func (s *shell) setOption(o *IO, name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: set <option> [value]", errShellArgs)
	}

	if _, ok := s.current.option(name); !ok {
		return fmt.Errorf("%s has no option %s%s", s.current.name, name, s.optionHint())
	}

	next := s.query.clone()
	if value == "" {
		delete(next.options, name)
	} else {
		next.options[name] = value
	}

	return s.apply(o, next)
}

// apply renders with next as the current filters. On error the previous
// filters are kept.
func (s *shell) apply(o *IO, next query) error {
	prev := s.query
	s.query = next

	err := s.show(o)
	if err != nil {
		s.query = prev
	}

	return err
}

func (s *shell) optionHint() string {
	if len(s.current.options) == 0 {
		return ""
	}

	return " (options: " + strings.Join(s.optionNames(), ", ") + ")"
}

func (s *shell) optionNames() []string {
	out := make([]string, len(s.current.options))
	for i, opt := range s.current.options {
		out[i] = opt.name
	}

	return out
}

func (s *shell) pageNames() []string {
	out := make([]string, len(s.pages))
	for i, p := range s.pages {
		out[i] = p.name
	}

	return out
}

func (s *shell) complete(line string) []string {
	words := append(s.pageNames(), "help", "quit", "show", "search ", "select ", "set ", "clear", "page ")
	for _, c := range s.current.choices {
		words = append(words, "select "+c)
	}

	for _, opt := range s.current.options {
		words = append(words, "set "+opt.name+" ")
	}

	var out []string

	for _, w := range words {
		if strings.HasPrefix(w, line) {
			out = append(out, w)
		}
	}

	return out
}

func (s *shell) printHelp(o *IO) {
	o.Println("Shell commands:")
	o.Println("  <page> | page <page>   Open a page:", strings.Join(s.pageNames(), ", "))
	o.Println("  search [text]          Filter the current page by text; no text clears it")
	o.Println("  select [value]         Filter the current page by its selector; no value clears it")
	o.Println("  set <option> [value]   Set an option of the current page; no value clears it")
	o.Println("  clear                  Clear search, selector and options")
	o.Println("  show                   Render the current page again")
	o.Println("  help                   Show this help")
	o.Println("  quit                   Leave the shell")

	if s.current.selector != "" {
		o.Println()
		o.Printf("Selector for %s is %s: %s\n", s.current.name, s.current.selector, strings.Join(s.current.choices, "|"))
	}

	for _, opt := range s.current.options {
		o.Printf("Option %s: %s\n", opt.name, strings.ReplaceAll(opt.usage, "`", ""))
	}
}
