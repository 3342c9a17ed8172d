// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/atotto/clipboard"
)

type command struct {
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

func commands() map[string]command {
	return map[string]command{
		"generate":   {summary: "generate a random password", run: (*App).runGenerate},
		"passphrase": {summary: "generate a diceware passphrase", run: (*App).runPassphrase},
		"save":       {summary: "store records from a CSV file in a vault", run: (*App).runSave},
		"load":       {summary: "print the records of a vault as CSV", run: (*App).runLoad},
		"view":       {summary: "browse the records of a vault", run: (*App).runView},
		"download":   {summary: "download the stored vault file", run: (*App).runDownload},
		"forget":     {summary: "remove a vault passphrase from the OS keyring", run: (*App).runForget},
		"version":    {summary: "print client and server versions", run: (*App).runVersion},
	}
}

var _ Client = (*App)(nil)

// App is the passvault command line.
type App struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	prompt promptFunc
	copy   tui.CopyFunc
	view   viewFunc

	logger *logger.Logger
}

// NewApp wires the CLI to the process streams, the system clipboard and
// the terminal.
func NewApp(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		getenv:    os.Getenv,
		prompt:    terminalPrompt(os.Stdin, os.Stderr),
		copy:      clipboard.WriteAll,
		view: func(ctx context.Context, title string, records []models.Record) error {
			return tui.NewViewer(title, records, clipboard.WriteAll).Run(ctx)
		},
		logger: logger,
	}
}

// Run executes the subcommand in args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage(a.stderr)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name := args[0]
	switch name {
	case "help", "-h", "-help", "--help":
		a.usage(a.stdout)
		return nil
	}

	cmd, ok := commands()[name]
	if !ok {
		a.usage(a.stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	err := cmd.run(a, ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		a.logger.Err(err).Str("command", name).Msg("command failed")
	}
	return err
}

func (a *App) usage(w io.Writer) {
	table := commands()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: passvault <command> [flags]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-11s %s\n", name, table[name].summary)
	}
	b.WriteString("\nrun 'passvault <command> -h' for the flags of a command\n")
	fmt.Fprint(w, b.String())
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: passvault %s [flags]\n\n%s\n\nflags:\n", name, commands()[name].summary)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args and rejects positional arguments. It returns the set of
// flags given explicitly.
func parse(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, nil
}
