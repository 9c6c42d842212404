//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/ecolife/ecolife-api/internal/bootstrap"
	"github.com/ecolife/ecolife-api/internal/domain/aqi"
	"github.com/ecolife/ecolife-api/internal/domain/brand"
	"github.com/ecolife/ecolife-api/internal/domain/garden"
	"github.com/ecolife/ecolife-api/internal/domain/plant"
	"github.com/ecolife/ecolife-api/internal/domain/solar"
	"github.com/ecolife/ecolife-api/internal/infra/config"
	httpiface "github.com/ecolife/ecolife-api/internal/interface/http"
	"github.com/ecolife/ecolife-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		plant.DefaultCatalog,
		provideBrandConfig,
		provideGardenConfig,
		provideGardenStore,
		provideLookupRepository,
		provideTrendStore,
		aqi.NewService,
		plant.NewService,
		solar.NewService,
		brand.NewService,
		garden.NewService,
		wire.Bind(new(garden.PlantCatalog), new(*plant.Catalog)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
