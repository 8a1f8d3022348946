package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"crimpqc/internal/bootstrap/config"
	"crimpqc/internal/bootstrap/database"
	"crimpqc/internal/bootstrap/logging"
	"crimpqc/internal/httpapi"
	sqliterepo "crimpqc/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "crimpqc/internal/infrastructure/persistence/sqlite/uow"
	"crimpqc/internal/ports"
	"crimpqc/internal/usecase/auth"
	"crimpqc/internal/usecase/crimping"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewOrderRepository,
			fx.As(new(ports.OrderRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewUserRepository,
			fx.As(new(ports.UserRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewReferenceRepository,
			fx.As(new(ports.ReferenceRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(auth.NewService),
	fx.Provide(crimping.NewService),
	fx.Provide(httpapi.New),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))
	return database.Open(logCtx, cfg.Database)
}

func provideApp(lc fx.Lifecycle, cfg config.Config, db *gorm.DB) *App {
	app := &App{
		Config: cfg,
		DB:     db,
	}

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			return app.Close(stopCtx)
		},
	})

	return app
}
