// Package app wires configuration, storage, stores and use cases into one
// process-wide container shared by the HTTP server and the admin CLI.
package app

import (
	"context"
	"fmt"

	"contract_tracker/internal/adapter/http/handlers"
	"contract_tracker/internal/adapter/http/routes"
	"contract_tracker/internal/adapter/persistence/repository"
	"contract_tracker/internal/adapter/render"
	"contract_tracker/internal/infrastructure/config"
	"contract_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Blueprints *usecase.BlueprintStore
	Contracts  *usecase.ContractStore
	Form       *usecase.ContractFormUseCase
	Printer    *usecase.PrintUseCase

	// FilePrinter renders pages meant to be saved: no print script, no
	// terminal colors.
	FilePrinter *usecase.PrintUseCase

	closeStorage func()
}

// New opens the configured storage and loads both collections. Unreadable
// or missing snapshots are replaced by the seed data; backend errors abort.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...usecase.StoreOption) (*App, error) {
	kv, closeStorage, err := repository.OpenKeyValueStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	blueprints, err := usecase.NewBlueprintStore(ctx, kv, logger, opts...)
	if err != nil {
		closeStorage()
		return nil, err
	}
	contracts, err := usecase.NewContractStore(ctx, kv, logger, opts...)
	if err != nil {
		closeStorage()
		return nil, err
	}

	form := usecase.NewContractFormUseCase(blueprints, contracts, logger, opts...)
	html := render.NewHTMLRenderer(cfg.Print.Delay)
	printer := usecase.NewPrintUseCase(contracts, form,
		html,
		render.NewTerminalRenderer(render.DefaultTerminalStyles()),
	)
	filePrinter := usecase.NewPrintUseCase(contracts, form,
		html.WithoutAutoPrint(),
		render.NewTerminalRenderer(render.PlainTerminalStyles()),
	)

	return &App{
		Config:       cfg,
		Logger:       logger,
		Blueprints:   blueprints,
		Contracts:    contracts,
		Form:         form,
		Printer:      printer,
		FilePrinter:  filePrinter,
		closeStorage: closeStorage,
	}, nil
}

func (a *App) Router() *gin.Engine {
	gin.SetMode(a.Config.HTTP.GinMode)
	return routes.NewRouter(routes.Handlers{
		Blueprints: handlers.NewBlueprintHandler(a.Blueprints),
		Contracts:  handlers.NewContractHandler(a.Contracts, a.Form, a.Printer),
	}, a.Logger)
}

// Serve runs the HTTP API until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	return routes.Run(ctx, a.Config.HTTP, a.Router(), a.Logger)
}

func (a *App) Close() {
	if a.closeStorage != nil {
		a.closeStorage()
	}
}
