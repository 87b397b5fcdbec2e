package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/morlord/builders-service/internal/api"
	"github.com/morlord/builders-service/internal/clients/duneclient"
	"github.com/morlord/builders-service/internal/clients/subgraphclient"
	"github.com/morlord/builders-service/internal/config"
	"github.com/morlord/builders-service/internal/db"
	dbmodel "github.com/morlord/builders-service/internal/db/model"
	"github.com/morlord/builders-service/internal/observability/metrics"
	"github.com/morlord/builders-service/internal/observability/tracing"
	"github.com/morlord/builders-service/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the builders dashboard API server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up analytics db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var subgraphClient subgraphclient.SubgraphInterface
	subgraphClient = subgraphclient.NewClient(&cfg.Subgraph)
	subgraphClient = subgraphclient.NewSubgraphClientWithMetrics(subgraphClient)

	var duneClient duneclient.DuneInterface
	duneClient = duneclient.NewClient(&cfg.Dune)
	duneClient = duneclient.NewDuneClientWithMetrics(duneClient)

	service := services.NewService(cfg, dbClient, subgraphClient, duneClient)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartAnalyticsRefresher(ctx)

	server := api.New(ctx, cfg, service)
	return server.Start()
}
