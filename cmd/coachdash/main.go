package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"coachdash/internal/bootstrap"
	"coachdash/internal/platform/config"
	"coachdash/internal/platform/logging"
	"coachdash/internal/ui/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataPath string
	demo     bool
	store    string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "coachdash",
		Short:         "Coaching client dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataPath, "data", ".", "data directory")
	root.PersistentFlags().BoolVar(&flags.demo, "demo", false, "show demo data when no session is stored")
	root.PersistentFlags().StringVar(&flags.store, "store", "", "entry store: sqlite|file (overrides config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newShowCmd(flags))
	root.AddCommand(newInsightsCmd(flags))
	root.AddCommand(newTaskCmd(flags))
	root.AddCommand(newSessionCmd(flags))
	root.AddCommand(newReportCmd(flags))
	return root
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.dataPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.demo {
		cfg.DemoMode = true
	}
	if flags.store != "" {
		cfg.Storage.Driver = flags.store
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	return cfg, cfg.Validate()
}

func loadApp(flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.NewConsole(os.Stderr, cfg.Log.Level))
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(flags *rootFlags, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the dashboard terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, closer, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			logger.Info().Str("store", cfg.Storage.Driver).Bool("demo", cfg.DemoMode).Msg("starting tui")
			return bootstrap.RunTUI(app)
		},
	}
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	var format string
	var width int
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.DashboardCLI.Load(context.Background())
				if err != nil {
					return err
				}
				rendered, err := report.Render(out, app.Layout, format, app.Clock.Now(), width)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			})
		},
	}
	show.Flags().StringVar(&format, "format", report.FormatText, "output format: text|markdown|pretty")
	show.Flags().IntVar(&width, "width", 80, "wrap width for pretty output")
	return show
}

func newInsightsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Print coaching insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.DashboardCLI.Load(context.Background())
				if err != nil {
					return err
				}
				if len(out.Insights) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no insights")
					return nil
				}
				for _, in := range out.Insights {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", in.Kind, in.Title, in.Message)
				}
				return nil
			})
		},
	}
}

func newTaskCmd(flags *rootFlags) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Action plan commands"}

	task.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List action items with completion flags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.DashboardCLI.Load(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), report.Tasks(out))
				return nil
			})
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "toggle <index>",
		Short: "Toggle completion of an action item (use -- before negative indices)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer: %q", args[0])
			}
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.DashboardCLI.ToggleTask(context.Background(), index)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "toggled %d · completed %v · %d%% complete\n", index, out.Completed, out.CompletionRate)
				return nil
			})
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear all completed tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if _, err := app.DashboardCLI.ResetTasks(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "completed tasks cleared")
				return nil
			})
		},
	})
	return task
}

func newSessionCmd(flags *rootFlags) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Session entry commands"}
	session.AddCommand(&cobra.Command{
		Use:   "import <file.json>",
		Short: "Store a session record from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read session file: %w", err)
			}
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.DashboardCLI.ImportSession(context.Background(), payload); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session imported from %s\n", args[0])
				return nil
			})
		},
	})
	return session
}

func newReportCmd(flags *rootFlags) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write or refresh the Markdown report, keeping notes outside the generated block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.DashboardCLI.Load(context.Background())
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, report.FileName(out.ClientName))
				existing, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("read report: %w", err)
				}
				doc, err := report.Merge(string(existing), out, app.Layout, app.Clock.Now())
				if err != nil {
					return err
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create report dir: %w", err)
				}
				if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
