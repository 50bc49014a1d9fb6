package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	dashboardinadapter "coachdash/internal/modules/dashboard/adapter/in"
	dashboardoutadapter "coachdash/internal/modules/dashboard/adapter/out"
	dashboardout "coachdash/internal/modules/dashboard/port/out"
	dashboardservice "coachdash/internal/modules/dashboard/service"
	dashboardusecase "coachdash/internal/modules/dashboard/usecase"
	"coachdash/internal/platform/clock"
	"coachdash/internal/platform/config"
	uiapp "coachdash/internal/ui/app"
	"coachdash/internal/ui/theme"
)

type App struct {
	DashboardCLI dashboardinadapter.CLIHandler
	Layout       theme.Layout
	Clock        clock.Clock

	logger zerolog.Logger
	closer io.Closer
}

func New(cfg config.Config, logger zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := clock.SystemClock{}

	store, closer, err := newEntryStore(cfg, clk)
	if err != nil {
		return nil, err
	}
	dashboardSvc := dashboardservice.NewDashboardService(store, logger, dashboardservice.Options{
		DemoMode:          cfg.DemoMode,
		DefaultClientName: cfg.DefaultClientName,
	})
	dashboardUC := dashboardusecase.NewInteractor(dashboardSvc)

	return &App{
		DashboardCLI: dashboardinadapter.NewCLIHandler(dashboardUC),
		Layout: theme.Layout{
			Emoji:        cfg.UI.Emoji,
			ShowInsights: cfg.UI.ShowInsights,
			ShowQuote:    cfg.UI.ShowQuote,
		},
		Clock:  clk,
		logger: logger,
		closer: closer,
	}, nil
}

func newEntryStore(cfg config.Config, clk clock.Clock) (dashboardout.EntryStore, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.StoreFile:
		return dashboardoutadapter.NewFileEntryStore(cfg.EntriesPath), nil, nil
	default:
		store, err := dashboardoutadapter.NewSQLiteEntryStore(cfg.DBPath, clk)
		if err != nil {
			return nil, nil, fmt.Errorf("new entry store: %w", err)
		}
		return store, store, nil
	}
}

// Close releases the entry store. Safe to call on a file-backed app.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.DashboardCLI, app.Layout, app.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
