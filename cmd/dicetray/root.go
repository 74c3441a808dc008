package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DaanHessen/dicetray/internal/config"
	"github.com/DaanHessen/dicetray/internal/dice"
	"github.com/DaanHessen/dicetray/internal/session"
	"github.com/DaanHessen/dicetray/internal/store"
	"github.com/DaanHessen/dicetray/internal/ui"
)

// app carries what every subcommand needs after flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	cmd := &cobra.Command{
		Use:   "dicetray",
		Short: "Build a dice equation and roll it",
		Long: `dicetray queues dice into an additive equation such as "1d4 + 5d6",
rolls it with a uniform random source and shows every face, the per-die
subtotals and the grand total. Without a subcommand it opens the terminal UI.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.dicetray.yaml)")
	flags.String("dsn", "", "PostgreSQL DSN for roll history")
	flags.String("seed", "", "seed string for repeatable rolls (random if omitted)")
	flags.String("theme", "", "TUI theme: catppuccin|dracula|gruvbox|solarized_dark")
	flags.Bool("history", false, "store finished rolls in the database")
	flags.String("log-file", "", "write logs to this file while the TUI runs")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	for _, name := range []string{"dsn", "seed", "theme", "history", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	_ = a.v.BindPFlag("log_file", flags.Lookup("log-file"))

	cmd.AddCommand(newRollCmd(a), newHistoryCmd(a), newMigrateCmd(a), newVersionCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	var out io.Writer = os.Stderr
	if cmd.Name() == "dicetray" {
		// the TUI owns the terminal
		out = io.Discard
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return err
			}
			a.logFile = f
			out = f
		}
	}
	a.log = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)
	return nil
}

// source returns a seeded stream when a seed is configured, random otherwise.
func (a *app) source() (dice.Source, error) {
	text := strings.TrimSpace(a.cfg.Seed)
	if text == "" {
		src, err := dice.NewRandomSource()
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	seed, err := dice.NewSessionSeed(text)
	if err != nil {
		return nil, err
	}
	return seed.Stream("tray"), nil
}

// openHistory returns nil when history is disabled.
func (a *app) openHistory(ctx context.Context) (*store.DB, *store.HistoryRepo, error) {
	if !a.cfg.HistoryEnabled() {
		return nil, nil, nil
	}
	db, err := store.Open(ctx, a.cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return db, store.NewHistoryRepo(db, a.cfg.Seed), nil
}

func (a *app) newSession(ctx context.Context) (*session.Session, *store.DB, *store.HistoryRepo, error) {
	src, err := a.source()
	if err != nil {
		return nil, nil, nil, err
	}
	db, repo, err := a.openHistory(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []session.Option{
		session.WithLogger(a.log),
		session.WithClearAfterRoll(a.cfg.ClearAfterRoll),
	}
	if repo != nil {
		opts = append(opts, session.WithRecorder(repo))
	}
	return session.New(src, opts...), db, repo, nil
}

func (a *app) runTUI(ctx context.Context) error {
	sess, db, repo, err := a.newSession(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	return ui.Run(ctx, sess, repo, a.cfg, version)
}
