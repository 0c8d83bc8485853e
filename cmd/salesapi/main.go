package main

import (
	"context"
	"log/slog"
	"os"

	"salesapi/config"
	"salesapi/internal/delivery"
	"salesapi/internal/delivery/http"
	"salesapi/internal/delivery/http/middleware"
	"salesapi/internal/delivery/http/router/handler"
	"salesapi/internal/infra/auth"
	logs "salesapi/internal/infra/log"
	"salesapi/internal/infra/persistence/postgres"
	"salesapi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewProductRepository,
			postgres.NewStateRepository,
			postgres.NewCityRepository,
			postgres.NewAddressRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewGeoService,
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewOrderService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewStateHandler,
			handler.NewUserHandler,
			handler.NewAuthHandler,
			handler.NewOrderHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
