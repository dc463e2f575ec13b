package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/recommender/config"
	"github.com/niksmo/recommender/internal/adapter/httphandler"
	"github.com/niksmo/recommender/internal/adapter/loader"
	"github.com/niksmo/recommender/internal/core/domain"
	"github.com/niksmo/recommender/internal/core/port"
	"github.com/niksmo/recommender/internal/core/service"
)

type coreService struct {
	demographic port.DemographicRecommender
	category    port.CategoryRecommender
	keyword     port.KeywordRecommender
	suggester   port.ProductSuggester
	lister      port.ProductLister
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    domain.Catalog
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initCatalog loads the configured source. A missing source is
// recoverable only when the sample fallback is switched on.
func (app *App) initCatalog() {
	const op = "App.initCatalog"
	log := slog.With("op", op)

	catalog, err := loader.NewFileLoader(app.cfg.Catalog.File).Load()
	if err != nil {
		if !errors.Is(err, domain.ErrNoData) || !app.cfg.Catalog.FallbackSample {
			app.fallDown(op, err)
		}
		log.Warn("catalog source unavailable, using built-in sample",
			"file", app.cfg.Catalog.File,
		)
		catalog = loader.Sample()
	}

	app.catalog = catalog
}

func (app *App) initCoreService() {
	s := service.New(app.catalog, app.cfg.Recommend.MaxSuggestions)
	app.service.demographic = s
	app.service.category = s
	app.service.keyword = s
	app.service.suggester = s
	app.service.lister = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterRecommendations(mux, app.service.demographic)
	httphandler.RegisterCategories(mux, app.service.category)
	httphandler.RegisterSearch(mux, app.service.keyword, app.service.suggester)
	httphandler.RegisterProducts(mux, app.service.lister)

	handler := httphandler.LogRequests(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "products", app.catalog.Len())
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
