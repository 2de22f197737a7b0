package app

import (
	"context"

	"log/slog"

	"github.com/kyctrust/kyctrust-manager/config"
	httpapi "github.com/kyctrust/kyctrust-manager/internal/api/http"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/admin"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/frontend"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/gate"
	"github.com/kyctrust/kyctrust-manager/internal/broadcast"
	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/revalidation"
	"github.com/kyctrust/kyctrust-manager/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting site manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", "error", err)
		return err
	}

	gateS, err := gate.New(&a.c.Gate, a.db.Settings(), a.db.RateLimit())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create gate server", "error", err)
		return err
	}

	events := broadcast.New()
	revalidator := revalidation.New(&a.c.Revalidation)

	adminS := admin.New(&a.c.Admin, a.db, events, revalidator)
	frontendS := frontend.New(&a.c.Frontend, a.db.Content(), a.db.Reviews(), events)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, gateS, frontendS, adminS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", "error", err)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.db.Close()
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
