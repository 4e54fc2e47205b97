package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	adminin "fitfusion/internal/modules/admin/adapter/in"
	adminout "fitfusion/internal/modules/admin/adapter/out"
	adminservice "fitfusion/internal/modules/admin/service"
	adminusecase "fitfusion/internal/modules/admin/usecase"
	authin "fitfusion/internal/modules/auth/adapter/in"
	authout "fitfusion/internal/modules/auth/adapter/out"
	authservice "fitfusion/internal/modules/auth/service"
	authusecase "fitfusion/internal/modules/auth/usecase"
	catalogin "fitfusion/internal/modules/catalog/adapter/in"
	catalogout "fitfusion/internal/modules/catalog/adapter/out"
	catalogservice "fitfusion/internal/modules/catalog/service"
	catalogusecase "fitfusion/internal/modules/catalog/usecase"
	planin "fitfusion/internal/modules/plan/adapter/in"
	planout "fitfusion/internal/modules/plan/adapter/out"
	planservice "fitfusion/internal/modules/plan/service"
	planusecase "fitfusion/internal/modules/plan/usecase"
	prefsin "fitfusion/internal/modules/prefs/adapter/in"
	prefsout "fitfusion/internal/modules/prefs/adapter/out"
	prefsservice "fitfusion/internal/modules/prefs/service"
	prefsusecase "fitfusion/internal/modules/prefs/usecase"
	"fitfusion/internal/platform/clock"
	"fitfusion/internal/platform/config"
	"fitfusion/internal/platform/httpx"
	"fitfusion/internal/platform/id"
	"fitfusion/internal/platform/logging"
	uiapp "fitfusion/internal/ui/app"
)

// App holds the assembled inbound handlers plus the resources that need
// closing on shutdown.
type App struct {
	Config config.Config
	Log    *zap.Logger

	Auth    authin.CLIHandler
	Plans   planin.CLIHandler
	Prefs   prefsin.CLIHandler
	Catalog catalogin.CLIHandler
	Admin   adminin.CLIHandler

	program *tea.Program
	closers []func() error
}

// New wires every module against a shared HTTP client and the local sqlite
// cache, session-first so the token source exists before any adapter.
func New(cfg config.Config) (*App, error) {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	a := &App{Config: cfg, Log: log}

	creds := authout.NewFileCredentialStore(cfg.StateDir)
	session := authservice.NewSessionStore(creds)
	session.RefreshFromStorage(context.Background())

	policy := httpx.AuthErrorPolicy{
		ClearSession: cfg.ClearSessionOnAuthError,
		Notify: func(apiErr *httpx.APIError) {
			if a.program != nil {
				a.program.Send(uiapp.AuthErrorMsg{Status: apiErr.Status, Message: apiErr.Message})
			}
		},
		Clear: func(ctx context.Context) error {
			session.Clear()
			return creds.Clear(ctx)
		},
	}
	client := httpx.New(cfg.APIURL, cfg.RequestTimeout, creds, policy, id.UUID{}, log)

	a.Auth = authin.NewCLIHandler(authusecase.NewInteractor(
		authout.NewHTTPAuthAPI(client), creds, session))

	bundles, err := planout.NewSQLiteBundleProjector(cfg.DBPath, clock.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("open plan cache: %w", err)
	}
	a.closers = append(a.closers, bundles.Close)
	planAPI := planout.NewHTTPPlanAPI(client)
	a.Plans = planin.NewCLIHandler(planusecase.NewInteractor(
		planservice.NewPlanService(planAPI, bundles, log),
		planout.NewHTTPCompletionAPI(planAPI)))

	prefsAPI := prefsout.NewHTTPPreferenceAPI(client)
	a.Prefs = prefsin.NewCLIHandler(prefsusecase.NewInteractor(
		prefsservice.NewPrefsService(prefsAPI), prefsAPI, prefsAPI))

	catalog, err := catalogout.NewSQLiteCatalogProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog cache: %w", err)
	}
	a.closers = append(a.closers, catalog.Close)
	a.Catalog = catalogin.NewCLIHandler(catalogusecase.NewInteractor(
		catalogservice.NewCatalogService(catalogout.NewHTTPExerciseAPI(client), catalog, log)))

	// Admin content writes land in the same catalog projection so the
	// user-facing views pick up new entries without a refetch.
	adminAPI := adminout.NewHTTPAdminAPI(client)
	a.Admin = adminin.NewCLIHandler(adminusecase.NewInteractor(
		adminAPI, adminAPI,
		adminservice.NewContentService(adminAPI, catalog, log),
		adminAPI))

	return a, nil
}

// RunTUI starts the terminal app and blocks until it exits.
func (a *App) RunTUI() error {
	model := uiapp.NewModel(a.Auth, a.Plans, a.Prefs, a.Catalog, a.Admin)
	a.program = tea.NewProgram(model, tea.WithAltScreen())
	_, err := a.program.Run()
	a.program = nil
	return err
}

// Close releases the local caches and flushes the logger.
func (a *App) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	_ = a.Log.Sync()
	return firstErr
}
