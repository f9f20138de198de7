package client

import (
	"context"
	"fmt"

	"github.com/cloudvault/cloudvault/internal/gateway"
	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/server"
	"github.com/cloudvault/cloudvault/internal/service"
	"github.com/cloudvault/cloudvault/internal/workers"
)

type App struct {
	services *service.ClientServices
	gateway  *gateway.Gateway
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	gw *gateway.Gateway,
	srv server.Server,
	ws *workers.Workers,
	log *logger.Logger,
) (*App, error) {
	if services == nil || gw == nil || srv == nil || ws == nil {
		return nil, fmt.Errorf("client app wiring incomplete")
	}

	return &App{
		services: services,
		gateway:  gw,
		server:   srv,
		workers:  ws,
		logger:   log,
	}, nil
}

// Run brings the client up and blocks until shutdown. Activation must
// complete before any request is served, so stale cache generations never
// reach the UI. The initial load is best effort: a cold start with no
// connectivity still serves the local snapshot.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if err := a.gateway.Activate(ctx); err != nil {
		return fmt.Errorf("activate gateway: %w", err)
	}

	if _, err := a.services.Notes.LoadNotes(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial note load failed")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.server.RunServer()

	return nil
}
