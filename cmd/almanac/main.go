package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/almanac/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "almanac: %v\n", err)
		return 1
	}
	return 0
}

var errNoTerminal = errors.New("stdout is not a terminal")

func newRootCommand() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Terminal harness for the calendar date coordinator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errNoTerminal
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.toml (optional)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "path to prefs.toml (optional)")
	flags.StringVar(&opts.Date, "date", "", "pin the owner date, YYYY-MM-DD")
	flags.StringVar(&opts.ThemeName, "theme", "", "theme name, overrides saved prefs")
	flags.BoolVar(&opts.NoTodayButton, "no-today-button", false, "hide the today button")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
