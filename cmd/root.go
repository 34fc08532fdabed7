package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/robbyt/go-polyshell/engines"
	"github.com/robbyt/go-polyshell/internal/helpers"
	"github.com/robbyt/go-polyshell/internal/version"
	"github.com/robbyt/go-polyshell/loader"
	"github.com/robbyt/go-polyshell/shell"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	engine      string
	logLevel    string
	prompt      string
	historyFile string
	noColor     bool
	load        []string
}

// NewRootCmd creates the polyshell command. With no flags it starts a Starlark
// session on stdin and stdout.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "polyshell",
		Short: "Interactive shell for embedded script engines",
		Long: `polyshell reads one line at a time, evaluates it with an embedded script
engine and prints either the value it produced or the reason it failed.

Supported engines: ` + strings.Join(engines.Names(), ", ") + `.
The session ends at end of input (Ctrl-D) or on interrupt (Ctrl-C).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("polyshell %s\n", version.String()))

	flags := cmd.Flags()
	flags.StringVarP(&opts.engine, "engine", "e", engines.Default,
		"script engine ("+strings.Join(engines.Names(), ", ")+")")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.prompt, "prompt", shell.DefaultPrompt, "prompt shown before each line")
	flags.StringVar(&opts.historyFile, "history-file", "", "file that keeps line history on terminals")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable prompt styling")
	flags.StringArrayVarP(&opts.load, "load", "l", nil, "script file evaluated before the first prompt (repeatable)")

	return cmd
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	level, err := helpers.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	logger := slog.New(handler.WithGroup("cmd"))

	eng, err := engines.New(opts.engine, handler, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	session, err := shell.New(eng,
		shell.WithInput(cmd.InOrStdin()),
		shell.WithOutput(cmd.OutOrStdout()),
		shell.WithPrompt(opts.prompt),
		shell.WithHistoryFile(opts.historyFile),
		shell.WithStyledPrompt(!opts.noColor),
		shell.WithLogHandler(handler),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("failed to close session", "error", err)
		}
	}()

	ctx := cmd.Context()
	for _, path := range opts.load {
		l, err := loader.NewFromDisk(path)
		if err != nil {
			return err
		}
		logger.Debug("loading script", "loader", l)
		if err := session.Load(ctx, l); err != nil {
			return err
		}
	}

	logger.Debug("session starting", "engine", opts.engine)
	return session.Run(ctx)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
