package services

import (
	"context"

	"github.com/morlord/builders-service/internal/clients/duneclient"
	"github.com/morlord/builders-service/internal/clients/subgraphclient"
	"github.com/morlord/builders-service/internal/config"
	"github.com/morlord/builders-service/internal/db"
)

type Service struct {
	cfg      *config.Config
	db       db.DbInterface
	subgraph subgraphclient.SubgraphInterface
	dune     duneclient.DuneInterface
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	subgraph subgraphclient.SubgraphInterface,
	dune duneclient.DuneInterface,
) *Service {
	return &Service{
		cfg:      cfg,
		db:       db,
		subgraph: subgraph,
		dune:     dune,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
