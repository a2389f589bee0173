// Package maincmd implements the bramble CLI's command dispatch: flag
// parsing and subcommand routing live here so cmd/bramble/main.go stays a
// thin wrapper around Cmd.Main.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "bramble"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> <path> [-- <arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the %[1]s scripting language.

The <command> can be one of:
       run                       Scan, parse, resolve, and evaluate the
                                 script, printing whatever it prints.
       tokenize                  Run the scanner phase only and print the
                                 resulting tokens.
       parse                     Run the scanner and parser phases and
                                 print the resulting syntax tree.
       resolve                   Run the scanner, parser, and resolver
                                 phases and print the syntax tree annotated
                                 with each variable reference's resolved
                                 scope depth.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Arguments following a literal -- are passed to the script as get_args().

More information on the %[1]s repository:
       https://github.com/bramblelang/bramble
`, binName)
)

// Cmd is the top-level CLI command, populated by mainer.Parser from the
// process argument vector.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

// SetArgs implements mainer's positional-argument collection.
func (c *Cmd) SetArgs(args []string) { c.args = args }

// SetFlags implements mainer's flag-presence tracking.
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

// Validate checks that a known command with the arguments it needs was
// given, before Main commits to running anything.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: a script path must be provided", cmdName)
	}

	return nil
}

// Main parses args, dispatches to the selected subcommand, and reports an
// exit code in the convention of a standard Unix CLI tool.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each subcommand prints its own errors; just report the exit code
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds reflects over v's methods to find the subcommand handlers: any
// method taking (context.Context, mainer.Stdio, []string) and returning
// error is registered under its lowercased name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
