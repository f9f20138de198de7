package main

import (
	"fmt"

	"github.com/cloudvault/cloudvault/internal/adapter"
	"github.com/cloudvault/cloudvault/internal/client"
	"github.com/cloudvault/cloudvault/internal/config"
	"github.com/cloudvault/cloudvault/internal/gateway"
	"github.com/cloudvault/cloudvault/internal/identity"
	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/netwatch"
	"github.com/cloudvault/cloudvault/internal/server"
	"github.com/cloudvault/cloudvault/internal/service"
	"github.com/cloudvault/cloudvault/internal/store"
	"github.com/cloudvault/cloudvault/internal/utils"
	"github.com/cloudvault/cloudvault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cloudvault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(cfg.Adapter.Token)

	scoper, err := identity.NewScoper(cfg.Adapter.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("derive identity from credential")
	}

	// NewClientStorages degrades to an in-memory database on its own when
	// the on-disk store is unavailable; an error here means even that failed
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	watcher := netwatch.NewWatcher(serverAdapter, cfg.Workers.ProbeInterval, log)

	services := service.NewClientServices(storages, serverAdapter, scoper, watcher, nil, log)
	watcher.Subscribe(services.Sync.OnConnectivityChange)

	gatewayClient := utils.NewHTTPClient()
	gatewayClient.SetTimeout(cfg.Adapter.RequestTimeout)
	gw := gateway.NewGateway(
		storages.ResponseCacheRepository,
		gatewayClient,
		cfg.Adapter.HTTPAddress,
		cfg.App.CacheVersion,
		log,
	)

	srv, err := server.NewServer(gw.Init(), cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway server")
	}

	app, err := client.NewApp(services, gw, srv, workers.NewWorkers(watcher, services.Sync), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
